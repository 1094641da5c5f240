package provisioning

import (
	"bytes"
	"context"
	"fmt"

	"github.com/attendo-app/attendo-backend-go/internal/domain/provisioning"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/qr"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type ProvisioningServiceImpl struct {
	qrCodes provisioning.QRCodeRepository
	wifi    provisioning.WifiConfigRepository
	storage storage.FileStorage
}

func NewProvisioningService(qrCodeRepository provisioning.QRCodeRepository, wifiConfigRepository provisioning.WifiConfigRepository, fileStorage storage.FileStorage) provisioning.ProvisioningService {
	return &ProvisioningServiceImpl{
		qrCodes: qrCodeRepository,
		wifi:    wifiConfigRepository,
		storage: fileStorage,
	}
}

// GetAllQRCodes implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) GetAllQRCodes(ctx context.Context) ([]provisioning.QRCodeResponse, error) {
	codes, err := s.qrCodes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %w", err)
	}

	responses := make([]provisioning.QRCodeResponse, 0, len(codes))
	for _, c := range codes {
		url, err := s.storage.GetURL(ctx, c.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve qr image url: %w", err)
		}
		responses = append(responses, provisioning.ToQRCodeResponse(c, url))
	}

	return responses, nil
}

// GenerateQRCode implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) GenerateQRCode(ctx context.Context, req *provisioning.GenerateQRRequest) (*provisioning.QRCodeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	png, err := qr.GeneratePNG(req.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}

	path := fmt.Sprintf("qr-codes/%s.png", uuid.NewString())
	stored, err := s.storage.Upload(ctx, bytes.NewReader(png), path, "image/png")
	if err != nil {
		return nil, fmt.Errorf("failed to store qr image: %w", err)
	}

	created, err := s.qrCodes.Create(ctx, provisioning.QRCode{
		CompanyName: req.CompanyName,
		ImagePath:   stored,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qr code: %w", err)
	}

	url, err := s.storage.GetURL(ctx, created.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve qr image url: %w", err)
	}

	resp := provisioning.ToQRCodeResponse(created, url)
	return &resp, nil
}

// DeleteQRCode implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) DeleteQRCode(ctx context.Context, id string) error {
	code, err := s.qrCodes.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.qrCodes.Delete(ctx, id); err != nil {
		return err
	}

	// The row is authoritative; a leftover file is harmless.
	_ = s.storage.Delete(ctx, code.ImagePath)

	return nil
}

// GetAllWifiConfigs implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) GetAllWifiConfigs(ctx context.Context) ([]provisioning.WifiConfigResponse, error) {
	configs, err := s.wifi.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wifi configs: %w", err)
	}
	return provisioning.ToWifiConfigResponses(configs), nil
}

// AddWifiConfig implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) AddWifiConfig(ctx context.Context, req *provisioning.AddWifiRequest) (*provisioning.WifiConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.wifi.GetBySSID(ctx, req.SSID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ssid: %w", err)
	}
	if existing != nil {
		return nil, provisioning.ErrSSIDExists
	}

	created, err := s.wifi.Create(ctx, provisioning.WifiConfig{SSID: req.SSID})
	if err != nil {
		return nil, fmt.Errorf("failed to create wifi config: %w", err)
	}

	resp := provisioning.ToWifiConfigResponse(created)
	return &resp, nil
}

// DeleteWifiConfig implements provisioning.ProvisioningService.
func (s *ProvisioningServiceImpl) DeleteWifiConfig(ctx context.Context, id string) error {
	return s.wifi.Delete(ctx, id)
}
