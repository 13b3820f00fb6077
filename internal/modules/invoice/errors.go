package invoice

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("invoice not found")
	ErrNotEligible     = errors.New("appointment cannot be converted to an invoice")
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff not found")
)
