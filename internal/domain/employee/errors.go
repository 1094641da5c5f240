package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee ID already exists")
	ErrDeviceIDExists     = errors.New("device ID already registered")
)
