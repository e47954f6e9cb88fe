package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/muurk/wifiqr/internal/logging"
)

// ErrEncodingFailed is the base error for encoder rejections, typically a
// payload too long for any supported symbol version.
var ErrEncodingFailed = errors.New("QR encoding failed")

// Code is an encoded QR symbol. The module matrix includes the quiet-zone
// border the library adds around the data area.
type Code struct {
	code *qrcode.QRCode
}

// Encode encodes payload into a QR symbol at medium error-correction level,
// which is the common choice for Wi-Fi configuration codes.
func Encode(payload string) (*Code, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	logging.Debug("encoded QR symbol",
		zap.Int("payload_bytes", len(payload)),
		zap.Int("version", code.VersionNumber),
	)

	return &Code{code: code}, nil
}

// Bitmap returns the module matrix, quiet zone included. true is a dark
// module. The matrix is square.
func (c *Code) Bitmap() [][]bool {
	return c.code.Bitmap()
}

// Size returns the side length of the matrix returned by Bitmap.
func (c *Code) Size() int {
	return len(c.code.Bitmap())
}

// Version returns the QR symbol version (1-40) chosen by the encoder.
func (c *Code) Version() int {
	return c.code.VersionNumber
}

// PNG renders the symbol as PNG bytes with scale pixels per module.
func (c *Code) PNG(scale int) ([]byte, error) {
	// Negative size selects a fixed per-module pixel scale.
	data, err := c.code.PNG(-scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return data, nil
}
