package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionPending CommissionStatus = "Pending"
	CommissionPaid    CommissionStatus = "Paid"
)

func ValidCommissionStatus(s CommissionStatus) bool {
	return s == CommissionPending || s == CommissionPaid
}

// Commission is an amount owed to a staff member for one invoiced service
// line. InvoiceID is nil for manually recorded entries.
type Commission struct {
	ID        int64            `json:"id"`
	InvoiceID *int64           `json:"invoice_id" gorm:"index"`
	StaffID   int64            `json:"staff_id" gorm:"index;not null"`
	ServiceID int64            `json:"service_id" gorm:"not null"`
	Amount    decimal.Decimal  `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date      time.Time        `json:"date" gorm:"type:date;not null"`
	Status    CommissionStatus `json:"status" gorm:"size:20;not null;default:'Pending'"`
	Notes     string           `json:"notes" gorm:"type:text"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Staff   *Staff   `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Invoice *Invoice `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
}
