package postgresql

import (
	"context"
	"errors"

	"github.com/attendo-app/attendo-backend-go/internal/domain/user"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) user.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// Create implements user.AdminRepository.
func (r *adminRepositoryImpl) Create(ctx context.Context, admin user.Admin) (user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admins (username, email, password_hash, role, image, theme)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, email, password_hash, role, image, theme, created_at, updated_at
	`

	var created user.Admin
	err := q.QueryRow(ctx, query,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Image,
		admin.Theme,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.Image,
		&created.Theme,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.Admin{}, err
	}

	return created, nil
}

// GetByID implements user.AdminRepository.
func (r *adminRepositoryImpl) GetByID(ctx context.Context, id string) (user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, email, password_hash, role, image, theme, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var admin user.Admin
	err := q.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Image,
		&admin.Theme,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Admin{}, user.ErrAdminNotFound
		}
		return user.Admin{}, err
	}

	return admin, nil
}

// GetByEmail implements user.AdminRepository.
func (r *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, email, password_hash, role, image, theme, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var admin user.Admin
	err := q.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Image,
		&admin.Theme,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Admin{}, user.ErrAdminNotFound
		}
		return user.Admin{}, err
	}

	return admin, nil
}

// UpdateTheme implements user.AdminRepository.
func (r *adminRepositoryImpl) UpdateTheme(ctx context.Context, id string, theme string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE admins
		SET theme = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, theme, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrAdminNotFound
	}

	return nil
}
