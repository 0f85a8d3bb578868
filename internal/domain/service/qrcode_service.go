package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for rendering and parsing coupon
// redemption QR codes.
type QRCodeService interface {
	// GenerateRedemptionQR renders a coupon's redemption code as a PNG.
	GenerateRedemptionQR(couponID uuid.UUID, code string) ([]byte, error)

	// ParseRedemptionQR parses scanned QR data back into a coupon ID and code.
	ParseRedemptionQR(qrData string) (uuid.UUID, string, error)
}
