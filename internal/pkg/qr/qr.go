// Package qr generates the onboarding QR PNGs handed to employee devices.
package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// GeneratePNG encodes the payload as a QR code PNG. Medium error correction
// matches what the device app scans reliably.
func GeneratePNG(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, defaultSize)
}
