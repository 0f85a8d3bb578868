// Package qrcode renders coupon redemption codes as scannable QR images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"couponhub/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CouponID string `json:"coupon_id"`
	Code     string `json:"code"`
	Type     string `json:"type"`
}

const redemptionType = "redemption"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRedemptionQR renders a coupon's redemption code as a PNG image.
func (s *qrcodeService) GenerateRedemptionQR(couponID uuid.UUID, code string) ([]byte, error) {
	data := QRCodeData{
		CouponID: couponID.String(),
		Code:     code,
		Type:     redemptionType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRedemptionQR parses scanned QR data back into a coupon ID and code.
func (s *qrcodeService) ParseRedemptionQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != redemptionType {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	couponID, err := uuid.Parse(data.CouponID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse coupon ID: %w", err)
	}

	return couponID, data.Code, nil
}
