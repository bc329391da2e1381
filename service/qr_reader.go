package service

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// DecodeQRPayload attempts to read the QR code that modern credentials
// print on the card. The payload usually embeds the CURP and clave de
// elector verbatim, which makes it a clean-text source the identifier
// locator can consume ahead of the noisier OCR lines. No QR found is an
// error for the caller to ignore, not to surface.
func DecodeQRPayload(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}
