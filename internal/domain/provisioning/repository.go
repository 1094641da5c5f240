package provisioning

import "context"

type QRCodeRepository interface {
	Create(ctx context.Context, q QRCode) (QRCode, error)
	GetByID(ctx context.Context, id string) (QRCode, error)
	List(ctx context.Context) ([]QRCode, error)
	Delete(ctx context.Context, id string) error
}

type WifiConfigRepository interface {
	Create(ctx context.Context, w WifiConfig) (WifiConfig, error)
	GetByID(ctx context.Context, id string) (WifiConfig, error)
	GetBySSID(ctx context.Context, ssid string) (*WifiConfig, error)
	List(ctx context.Context) ([]WifiConfig, error)
	Delete(ctx context.Context, id string) error
}
