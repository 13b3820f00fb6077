package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type InvoiceFilters struct {
	// Matches customer name, phone or the invoice id itself.
	Search string
	Status string
	Limit  int
	Offset int
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Commissions").
		First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, f InvoiceFilters) ([]domain.Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Invoice{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("customer_name LIKE ? OR customer_phone LIKE ? OR CAST(id AS TEXT) LIKE ?", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []domain.Invoice
	err := q.Preload("Items").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// MarkOverdue flags Pending invoices dated strictly before the cutoff as
// Overdue and reports how many rows changed.
func (r *InvoiceRepository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("status = ? AND invoice_date < ?", domain.InvoicePending,
			time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)).
		Update("status", domain.InvoiceOverdue)
	return res.RowsAffected, res.Error
}
