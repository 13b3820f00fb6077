package appointment

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("appointment not found")
	ErrPastDate        = errors.New("appointment date is in the past")
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrSlotNotFound    = errors.New("service is not attached to this appointment")
	ErrAlreadyInvoiced = errors.New("appointment has been invoiced")
)
