package user

import "context"

type AdminRepository interface {
	Create(ctx context.Context, admin Admin) (Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)

	// UpdateTheme persists the dashboard theme preference. The preference
	// service is the only caller; nothing else touches the stored value.
	UpdateTheme(ctx context.Context, id string, theme string) error
}
