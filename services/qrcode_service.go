// services/qrcode_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can substitute the encoder.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// EventQRCode renders a PNG QR code pointing at the public registration page
// for the given event.
func EventQRCode(baseURL, eventID string, size int, encode QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if encode == nil {
		encode = qrcode.Encode
	}

	url := fmt.Sprintf("%s/events/%s/register", strings.TrimRight(baseURL, "/"), eventID)
	return encode(url, qrcode.Medium, size)
}
