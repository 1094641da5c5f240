package provisioning

import "errors"

var (
	ErrQRCodeNotFound     = errors.New("qr code not found")
	ErrWifiConfigNotFound = errors.New("wifi config not found")
	ErrSSIDExists         = errors.New("wifi config already exists for this ssid")
)
