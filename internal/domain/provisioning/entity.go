package provisioning

import "time"

// QRCode is a device-enrollment code generated for a company. The
// encoded payload is the company name; the rendered PNG is kept in
// file storage so the dashboard can display and print it.
type QRCode struct {
	ID          string
	CompanyName string
	ImagePath   string
	CreatedAt   time.Time
}

// WifiConfig is an office network whose SSID the mobile clients use
// to gate on-premise check-ins.
type WifiConfig struct {
	ID        string
	SSID      string
	CreatedAt time.Time
}
