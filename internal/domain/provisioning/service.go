package provisioning

import "context"

type ProvisioningService interface {
	GetAllQRCodes(ctx context.Context) ([]QRCodeResponse, error)
	GenerateQRCode(ctx context.Context, req *GenerateQRRequest) (*QRCodeResponse, error)
	DeleteQRCode(ctx context.Context, id string) error

	GetAllWifiConfigs(ctx context.Context) ([]WifiConfigResponse, error)
	AddWifiConfig(ctx context.Context, req *AddWifiRequest) (*WifiConfigResponse, error)
	DeleteWifiConfig(ctx context.Context, id string) error
}
