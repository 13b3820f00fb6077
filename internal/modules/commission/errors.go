package commission

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("commission not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrServiceNotFound = errors.New("service not found")
)
