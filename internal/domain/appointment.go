package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentApproved  AppointmentStatus = "Approved"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentNoShow    AppointmentStatus = "No-Show"
)

func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentCompleted,
		AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID int64 `json:"id"`
	// Public bookings get a reference code the customer can quote back.
	Reference     string    `json:"reference" gorm:"size:36;index"`
	CustomerName  string    `json:"customer_name" gorm:"not null"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Date          time.Time `json:"appointment_date" gorm:"column:appointment_date;type:date;not null"`
	// Start time in HH:MM.
	Time      string            `json:"appointment_time" gorm:"column:appointment_time;size:5;not null"`
	Status    AppointmentStatus `json:"status" gorm:"size:20;not null;default:'Pending'"`
	Notes     string            `json:"notes" gorm:"type:text"`
	InvoiceID *int64            `json:"invoice_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	Services []AppointmentService `json:"services,omitempty" gorm:"foreignKey:AppointmentID"`
}

// AppointmentService is one service slot on an appointment. Staff assignment
// is optional until the slot is invoiced.
type AppointmentService struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointment_id" gorm:"uniqueIndex:idx_appointment_service;not null"`
	ServiceID     int64  `json:"service_id" gorm:"uniqueIndex:idx_appointment_service;not null"`
	StaffID       *int64 `json:"staff_id"`
	Notes         string `json:"notes" gorm:"type:text"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Staff   *Staff   `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
}

// CanConvertToInvoice reports whether the appointment is eligible for invoice
// conversion: not converted yet, Approved or Completed, and at least one
// service slot with staff assigned. Slots must be loaded.
func (a *Appointment) CanConvertToInvoice() bool {
	if a.InvoiceID != nil {
		return false
	}
	if a.Status != AppointmentApproved && a.Status != AppointmentCompleted {
		return false
	}
	for _, s := range a.Services {
		if s.StaffID != nil {
			return true
		}
	}
	return false
}

// TotalDuration sums the time estimates of all loaded service slots, in minutes.
func (a *Appointment) TotalDuration() int {
	total := 0
	for _, s := range a.Services {
		if s.Service != nil {
			total += s.Service.TimeEstimate
		}
	}
	return total
}
