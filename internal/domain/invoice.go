package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice carries a point-in-time copy of the customer fields; later edits to
// the customer or catalog never change a stored invoice.
type Invoice struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name" gorm:"not null"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	InvoiceDate   time.Time       `json:"invoice_date" gorm:"type:date;not null"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50;not null"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Tax           decimal.Decimal `json:"tax" gorm:"type:decimal(10,2);not null"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Notes         string          `json:"notes" gorm:"type:text"`
	Status        InvoiceStatus   `json:"status" gorm:"size:20;not null;default:'Pending'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Items       []InvoiceItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID"`
	Commissions []Commission  `json:"commissions,omitempty" gorm:"foreignKey:InvoiceID"`
}

// InvoiceItem snapshots the service and staff names at creation time. Items
// are never edited in place, only replaced wholesale with their invoice.
type InvoiceItem struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id" gorm:"index;not null"`
	ServiceID   int64           `json:"service_id" gorm:"not null"`
	ServiceName string          `json:"service_name" gorm:"not null"`
	StaffID     int64           `json:"staff_id" gorm:"not null"`
	StaffName   string          `json:"staff_name" gorm:"not null"`
	Quantity    int             `json:"quantity" gorm:"not null;default:1"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	// Percentage off the line subtotal, 0-100.
	Discount   decimal.Decimal `json:"discount" gorm:"type:decimal(5,2);not null;default:0"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Commission decimal.Decimal `json:"commission" gorm:"type:decimal(10,2);not null;default:0"`
}
