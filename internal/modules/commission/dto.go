package commission

import (
	"time"

	"github.com/shopspring/decimal"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

// ManualCommissionRequest records a commission that is not tied to an
// invoice, for example a correction or a cash-job payout.
type ManualCommissionRequest struct {
	StaffID   int64   `json:"staff_id" validate:"required"`
	ServiceID int64   `json:"service_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gte=0"`
	Date      string  `json:"date" validate:"required"`
	Status    string  `json:"status" validate:"required"`
	Notes     string  `json:"notes" validate:"max=255"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BatchUpdateRequest struct {
	CommissionIDs []int64 `json:"commission_ids" validate:"required,min=1"`
	Status        string  `json:"status" validate:"required"`
}

// CommissionView flattens the related staff, service, and invoice records
// into the fields the back-office tables display.
type CommissionView struct {
	ID           int64           `json:"id"`
	InvoiceID    *int64          `json:"invoice_id"`
	StaffID      int64           `json:"staff_id"`
	StaffName    string          `json:"staff_name"`
	ServiceID    int64           `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	CustomerName string          `json:"customer_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
}

func NewCommissionView(c *domain.Commission) CommissionView {
	v := CommissionView{
		ID:        c.ID,
		InvoiceID: c.InvoiceID,
		StaffID:   c.StaffID,
		ServiceID: c.ServiceID,
		Amount:    c.Amount,
		Date:      c.Date.Format("2006-01-02"),
		Status:    string(c.Status),
		Notes:     c.Notes,
	}
	if c.Staff != nil {
		v.StaffName = c.Staff.FullName()
	}
	if c.Service != nil {
		v.ServiceName = c.Service.Name
	}
	if c.Invoice != nil {
		v.CustomerName = c.Invoice.CustomerName
	}
	return v
}

func NewCommissionViews(commissions []domain.Commission) []CommissionView {
	out := make([]CommissionView, 0, len(commissions))
	for i := range commissions {
		out = append(out, NewCommissionView(&commissions[i]))
	}
	return out
}

// StaffSummaryView is the per-staff earnings report for a date range.
type StaffSummaryView struct {
	StaffID        int64                     `json:"staff_id"`
	StaffName      string                    `json:"staff_name"`
	CommissionRate decimal.Decimal           `json:"commission_rate"`
	DateFrom       string                    `json:"date_from"`
	DateTo         string                    `json:"date_to"`
	PaidAmount     decimal.Decimal           `json:"paid_amount"`
	PendingAmount  decimal.Decimal           `json:"pending_amount"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	InvoiceCount   int64                     `json:"invoice_count"`
	ByService      []repository.ServiceTotal `json:"by_service"`
	Recent         []CommissionView          `json:"recent"`
}

type DailyTotalView struct {
	Day         string          `json:"day"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

// StatisticsView is the salon-wide commission dashboard payload.
type StatisticsView struct {
	DateFrom      string                    `json:"date_from"`
	DateTo        string                    `json:"date_to"`
	PaidAmount    decimal.Decimal           `json:"paid_amount"`
	PendingAmount decimal.Decimal           `json:"pending_amount"`
	TotalAmount   decimal.Decimal           `json:"total_amount"`
	ByStaff       []repository.StaffTotal   `json:"by_staff"`
	ByDay         []DailyTotalView          `json:"by_day"`
	TopServices   []repository.ServiceTotal `json:"top_services"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
