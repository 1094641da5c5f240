package user

import "errors"

var (
	ErrAdminNotFound          = errors.New("admin account not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
