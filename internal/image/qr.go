package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// Generated QR codes are between MinQRSize and MaxQRSize pixels wide.
const (
	MinQRSize = 64
	MaxQRSize = 2048
)

// ClampQRSize bounds a requested QR code size.
func ClampQRSize(size int) int {
	return min(max(size, MinQRSize), MaxQRSize)
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
// Deck files are long, so the low recovery level keeps the symbol small.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Low, ClampQRSize(size))
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
