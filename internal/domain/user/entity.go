package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Admin is a dashboard login account. Employees never log in here; they only
// exist as records managed through the dashboard.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Image        *string
	Theme        string // "light" or "dark", the persisted dashboard preference
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
