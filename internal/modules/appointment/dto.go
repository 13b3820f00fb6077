package appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"salondesk/internal/domain"
)

// PublicBookingRequest is the customer-facing booking form payload.
type PublicBookingRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Date      string `json:"booking_date" validate:"required"`
	Time      string `json:"booking_time" validate:"required"`
	ServiceID int64  `json:"service_id" validate:"required"`
	Message   string `json:"message"`
}

type ServiceAssignment struct {
	ID      int64  `json:"id" validate:"required"`
	StaffID *int64 `json:"staff_id"`
	Notes   string `json:"notes"`
}

// AdminAppointmentRequest carries the full field set used by back-office
// create and update.
type AdminAppointmentRequest struct {
	CustomerName  string              `json:"customer_name" validate:"required,max=255"`
	CustomerEmail string              `json:"customer_email" validate:"omitempty,email,max=255"`
	CustomerPhone string              `json:"customer_phone" validate:"max=20"`
	Date          string              `json:"appointment_date" validate:"required"`
	Time          string              `json:"appointment_time" validate:"required"`
	Status        string              `json:"status" validate:"required"`
	Notes         string              `json:"notes"`
	Services      []ServiceAssignment `json:"services" validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignStaffRequest struct {
	ServiceID int64 `json:"service_id" validate:"required"`
	StaffID   int64 `json:"staff_id" validate:"required"`
}

// ServiceSlotView is one service line in an appointment payload, with the
// assigned staff name resolved for display.
type ServiceSlotView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	StaffID   *int64          `json:"staff_id"`
	StaffName *string         `json:"staff_name"`
	Notes     string          `json:"notes,omitempty"`
}

type AppointmentView struct {
	ID                  int64             `json:"id"`
	Reference           string            `json:"reference,omitempty"`
	CustomerName        string            `json:"customer_name"`
	CustomerEmail       string            `json:"customer_email"`
	CustomerPhone       string            `json:"customer_phone"`
	Date                string            `json:"appointment_date"`
	Time                string            `json:"appointment_time"`
	Status              string            `json:"status"`
	Notes               string            `json:"notes"`
	InvoiceID           *int64            `json:"invoice_id"`
	Services            []ServiceSlotView `json:"services"`
	CanConvertToInvoice bool              `json:"can_convert_to_invoice"`
}

func NewAppointmentView(a *domain.Appointment) AppointmentView {
	services := make([]ServiceSlotView, 0, len(a.Services))
	for _, slot := range a.Services {
		v := ServiceSlotView{
			StaffID: slot.StaffID,
			Notes:   slot.Notes,
		}
		if slot.Service != nil {
			v.ID = slot.Service.ID
			v.Name = slot.Service.Name
			v.Price = slot.Service.Price
		} else {
			v.ID = slot.ServiceID
		}
		if slot.Staff != nil {
			name := slot.Staff.FullName()
			v.StaffName = &name
		}
		services = append(services, v)
	}

	return AppointmentView{
		ID:                  a.ID,
		Reference:           a.Reference,
		CustomerName:        a.CustomerName,
		CustomerEmail:       a.CustomerEmail,
		CustomerPhone:       a.CustomerPhone,
		Date:                a.Date.Format("2006-01-02"),
		Time:                a.Time,
		Status:              string(a.Status),
		Notes:               a.Notes,
		InvoiceID:           a.InvoiceID,
		Services:            services,
		CanConvertToInvoice: a.CanConvertToInvoice(),
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseClock(s string) error {
	_, err := time.Parse("15:04", s)
	return err
}
