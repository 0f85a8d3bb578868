package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	couponID := uuid.New()

	png, err := svc.GenerateRedemptionQR(couponID, "SAVE20")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	payload, err := json.Marshal(QRCodeData{
		CouponID: couponID.String(),
		Code:     "SAVE20",
		Type:     "redemption",
	})
	require.NoError(t, err)

	gotID, gotCode, err := svc.ParseRedemptionQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, couponID, gotID)
	assert.Equal(t, "SAVE20", gotCode)
}

func TestQRCodeService_ParseRejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		CouponID: uuid.NewString(),
		Code:     "SAVE20",
		Type:     "subscription",
	})
	require.NoError(t, err)

	_, _, err = svc.ParseRedemptionQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseRejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(256, "L")

	_, _, err := svc.ParseRedemptionQR("not-json")
	assert.Error(t, err)
}
