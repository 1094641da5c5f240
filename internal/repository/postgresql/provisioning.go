package postgresql

import (
	"context"
	"errors"

	"github.com/attendo-app/attendo-backend-go/internal/domain/provisioning"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type qrCodeRepositoryImpl struct {
	db *database.DB
}

func NewQRCodeRepository(db *database.DB) provisioning.QRCodeRepository {
	return &qrCodeRepositoryImpl{db: db}
}

// Create implements provisioning.QRCodeRepository.
func (r *qrCodeRepositoryImpl) Create(ctx context.Context, q provisioning.QRCode) (provisioning.QRCode, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO qr_codes (company_name, image_path)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := querier.QueryRow(ctx, query, q.CompanyName, q.ImagePath).
		Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return provisioning.QRCode{}, err
	}

	return q, nil
}

// GetByID implements provisioning.QRCodeRepository.
func (r *qrCodeRepositoryImpl) GetByID(ctx context.Context, id string) (provisioning.QRCode, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, image_path, created_at
		FROM qr_codes
		WHERE id = $1
	`

	var q provisioning.QRCode
	err := querier.QueryRow(ctx, query, id).
		Scan(&q.ID, &q.CompanyName, &q.ImagePath, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provisioning.QRCode{}, provisioning.ErrQRCodeNotFound
		}
		return provisioning.QRCode{}, err
	}

	return q, nil
}

// List implements provisioning.QRCodeRepository.
func (r *qrCodeRepositoryImpl) List(ctx context.Context) ([]provisioning.QRCode, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, image_path, created_at
		FROM qr_codes
		ORDER BY created_at DESC
	`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []provisioning.QRCode
	for rows.Next() {
		var q provisioning.QRCode
		if err := rows.Scan(&q.ID, &q.CompanyName, &q.ImagePath, &q.CreatedAt); err != nil {
			return nil, err
		}
		codes = append(codes, q)
	}

	return codes, rows.Err()
}

// Delete implements provisioning.QRCodeRepository.
func (r *qrCodeRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM qr_codes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return provisioning.ErrQRCodeNotFound
	}

	return nil
}

type wifiConfigRepositoryImpl struct {
	db *database.DB
}

func NewWifiConfigRepository(db *database.DB) provisioning.WifiConfigRepository {
	return &wifiConfigRepositoryImpl{db: db}
}

// Create implements provisioning.WifiConfigRepository.
func (r *wifiConfigRepositoryImpl) Create(ctx context.Context, w provisioning.WifiConfig) (provisioning.WifiConfig, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wifi_configs (ssid)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := querier.QueryRow(ctx, query, w.SSID).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return provisioning.WifiConfig{}, err
	}

	return w, nil
}

// GetByID implements provisioning.WifiConfigRepository.
func (r *wifiConfigRepositoryImpl) GetByID(ctx context.Context, id string) (provisioning.WifiConfig, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ssid, created_at
		FROM wifi_configs
		WHERE id = $1
	`

	var w provisioning.WifiConfig
	err := querier.QueryRow(ctx, query, id).Scan(&w.ID, &w.SSID, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return provisioning.WifiConfig{}, provisioning.ErrWifiConfigNotFound
		}
		return provisioning.WifiConfig{}, err
	}

	return w, nil
}

// GetBySSID implements provisioning.WifiConfigRepository.
func (r *wifiConfigRepositoryImpl) GetBySSID(ctx context.Context, ssid string) (*provisioning.WifiConfig, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ssid, created_at
		FROM wifi_configs
		WHERE ssid = $1
	`

	var w provisioning.WifiConfig
	err := querier.QueryRow(ctx, query, ssid).Scan(&w.ID, &w.SSID, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &w, nil
}

// List implements provisioning.WifiConfigRepository.
func (r *wifiConfigRepositoryImpl) List(ctx context.Context) ([]provisioning.WifiConfig, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ssid, created_at
		FROM wifi_configs
		ORDER BY created_at DESC
	`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []provisioning.WifiConfig
	for rows.Next() {
		var w provisioning.WifiConfig
		if err := rows.Scan(&w.ID, &w.SSID, &w.CreatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, w)
	}

	return configs, rows.Err()
}

// Delete implements provisioning.WifiConfigRepository.
func (r *wifiConfigRepositoryImpl) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM wifi_configs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return provisioning.ErrWifiConfigNotFound
	}

	return nil
}
