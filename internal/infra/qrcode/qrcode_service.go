// Package qrcode renders order-confirmation QR codes.
package qrcode

import (
	"strings"

	"orchid/config"
	"orchid/internal/domain/service"
	"orchid/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New creates a QR code service instance. The generated code points at the
// public order-tracking page for the order.
func New(cfg *config.Config) service.QRCodeService {
	size := 256
	level := "M"
	baseURL := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateOrderQR generates a PNG QR code encoding the tracking URL for an
// order.
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}

	content := orderID
	if s.baseURL != "" {
		content = strings.TrimRight(s.baseURL, "/") + "/" + orderID
	}

	png, err := qrcode.Encode(content, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode order QR code")
	}

	return png, nil
}
