package invoice

import (
	"github.com/shopspring/decimal"

	"salondesk/internal/config"
)

type ItemInput struct {
	ServiceID int64   `json:"service_id" validate:"required"`
	StaffID   int64   `json:"staff_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"gte=0"`
	// Percentage off the line subtotal, 0-100.
	Discount float64 `json:"discount" validate:"gte=0,lte=100"`
}

// InvoiceRequest is the manual invoice payload, shared by create and update.
// Status is only honored on update; created invoices always start Pending.
type InvoiceRequest struct {
	CustomerName  string      `json:"customer_name" validate:"required,max=255"`
	CustomerEmail string      `json:"customer_email" validate:"omitempty,email,max=255"`
	CustomerPhone string      `json:"customer_phone" validate:"max=20"`
	InvoiceDate   string      `json:"invoice_date" validate:"required"`
	PaymentMethod string      `json:"payment_method" validate:"required,max=50"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes"`
	Items         []ItemInput `json:"invoice_items" validate:"required,min=1,dive"`
}

// Policy carries the money rules that differ between the two invoice
// creation paths. The conversion and manual tax rates are intentionally
// separate knobs; the production configuration runs 0% and 7%.
type Policy struct {
	ConversionTaxPercent decimal.Decimal
	ManualTaxPercent     decimal.Decimal
	DefaultPaymentMethod string
}

func PolicyFromConfig(cfg *config.Config) Policy {
	return Policy{
		ConversionTaxPercent: cfg.ConversionTaxPercent,
		ManualTaxPercent:     cfg.ManualTaxPercent,
		DefaultPaymentMethod: cfg.DefaultPaymentMethod,
	}
}
