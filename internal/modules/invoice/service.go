package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

// Service is the invoicing engine. Multi-row mutations run inside a single
// database transaction; a failure anywhere rolls back every write.
type Service struct {
	db       *gorm.DB
	invoices *repository.InvoiceRepository
	policy   Policy
}

func NewService(db *gorm.DB, invoices *repository.InvoiceRepository, policy Policy) *Service {
	return &Service{
		db:       db,
		invoices: invoices,
		policy:   policy,
	}
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return inv, err
}

func (s *Service) List(ctx context.Context, f repository.InvoiceFilters) ([]domain.Invoice, int64, error) {
	return s.invoices.List(ctx, f)
}

// ConvertAppointment materializes an invoice from an eligible appointment.
// Each staffed service slot becomes one invoice item and one Pending
// commission; slots without staff are skipped and their revenue is not
// invoiced. The appointment is linked to the invoice and forced Completed.
func (s *Service) ConvertAppointment(ctx context.Context, appointmentID int64) (*domain.Invoice, error) {
	var invoiceID int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a domain.Appointment
		err := tx.Preload("Services").
			Preload("Services.Service").
			Preload("Services.Staff").
			First(&a, appointmentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !a.CanConvertToInvoice() {
			return ErrNotEligible
		}

		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		inv := domain.Invoice{
			CustomerName:  a.CustomerName,
			CustomerEmail: a.CustomerEmail,
			CustomerPhone: a.CustomerPhone,
			InvoiceDate:   today,
			PaymentMethod: s.policy.DefaultPaymentMethod,
			Subtotal:      decimal.Zero,
			Tax:           decimal.Zero,
			Total:         decimal.Zero,
			Notes: fmt.Sprintf("Created from appointment #%d on %s at %s",
				a.ID, a.Date.Format("2006-01-02"), a.Time),
			Status: domain.InvoicePending,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		subtotal := decimal.Zero
		for _, slot := range a.Services {
			if slot.StaffID == nil {
				continue
			}
			svc := slot.Service
			staff := slot.Staff
			if svc == nil || staff == nil {
				return fmt.Errorf("appointment %d: slot %d missing service or staff row", a.ID, slot.ID)
			}

			// Quantity is implicitly 1 and no discount applies on this path.
			lineTotal := domain.LineTotal(svc.Price, 1, decimal.Zero)
			commission := domain.CommissionAmount(lineTotal, staff.CommissionRate)
			subtotal = subtotal.Add(lineTotal)

			item := domain.InvoiceItem{
				InvoiceID:   inv.ID,
				ServiceID:   svc.ID,
				ServiceName: svc.Name,
				StaffID:     staff.ID,
				StaffName:   staff.FullName(),
				Quantity:    1,
				Price:       svc.Price,
				Discount:    decimal.Zero,
				Total:       lineTotal,
				Commission:  commission,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			comm := domain.Commission{
				InvoiceID: &inv.ID,
				StaffID:   staff.ID,
				ServiceID: svc.ID,
				Amount:    commission,
				Date:      today,
				Status:    domain.CommissionPending,
			}
			if err := tx.Create(&comm).Error; err != nil {
				return err
			}
		}

		tax := domain.TaxAmount(subtotal, s.policy.ConversionTaxPercent)
		total := subtotal.Add(tax)
		err = tx.Model(&domain.Invoice{}).Where("id = ?", inv.ID).
			Updates(map[string]interface{}{
				"subtotal": subtotal,
				"tax":      tax,
				"total":    total,
			}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&domain.Appointment{}).Where("id = ?", a.ID).
			Updates(map[string]interface{}{
				"invoice_id": inv.ID,
				"status":     domain.AppointmentCompleted,
			}).Error
		if err != nil {
			return err
		}

		invoiceID = inv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, invoiceID)
}

// Create builds an invoice from a manually entered line-item list. Every
// line must carry a staff member; commissions with a positive amount are
// recorded as Pending.
func (s *Service) Create(ctx context.Context, req InvoiceRequest) (*domain.Invoice, error) {
	date, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, ErrValidation
	}

	var invoiceID int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, subtotal, err := s.buildLines(tx, req.Items)
		if err != nil {
			return err
		}
		tax := domain.TaxAmount(subtotal, s.policy.ManualTaxPercent)

		inv := domain.Invoice{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			InvoiceDate:   date,
			PaymentMethod: req.PaymentMethod,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         subtotal.Add(tax),
			Notes:         req.Notes,
			Status:        domain.InvoicePending,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		if err := s.insertLines(tx, inv.ID, date, lines, domain.CommissionPending); err != nil {
			return err
		}
		invoiceID = inv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, invoiceID)
}

// Update rewrites the invoice wholesale: all existing items and commissions
// are deleted and recreated from the new item list. When the new status is
// Paid the recreated commissions are forced to Paid as well.
func (s *Service) Update(ctx context.Context, id int64, req InvoiceRequest) (*domain.Invoice, error) {
	date, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, ErrValidation
	}
	status := domain.InvoiceStatus(req.Status)
	if !domain.ValidInvoiceStatus(status) {
		return nil, ErrValidation
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv domain.Invoice
		if err := tx.First(&inv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		lines, subtotal, err := s.buildLines(tx, req.Items)
		if err != nil {
			return err
		}
		tax := domain.TaxAmount(subtotal, s.policy.ManualTaxPercent)

		err = tx.Model(&domain.Invoice{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"customer_name":  req.CustomerName,
				"customer_email": req.CustomerEmail,
				"customer_phone": req.CustomerPhone,
				"invoice_date":   date,
				"payment_method": req.PaymentMethod,
				"subtotal":       subtotal,
				"tax":            tax,
				"total":          subtotal.Add(tax),
				"notes":          req.Notes,
				"status":         status,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("invoice_id = ?", id).Delete(&domain.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&domain.Commission{}).Error; err != nil {
			return err
		}

		commissionStatus := domain.CommissionPending
		if status == domain.InvoicePaid {
			commissionStatus = domain.CommissionPaid
		}
		return s.insertLines(tx, id, date, lines, commissionStatus)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// MarkAsPaid sets the invoice status to Paid. When the invoice has no
// commission rows yet, one Pending commission is backfilled per item with a
// positive commission; staff payout still needs separate approval, so the
// backfilled rows are explicitly not Paid. Existing commissions are left
// untouched, which makes a repeated call a no-op for commissions.
func (s *Service) MarkAsPaid(ctx context.Context, id int64) (*domain.Invoice, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv domain.Invoice
		err := tx.Preload("Items").First(&inv, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		err = tx.Model(&domain.Invoice{}).Where("id = ?", id).
			Update("status", domain.InvoicePaid).Error
		if err != nil {
			return err
		}

		var existing int64
		err = tx.Model(&domain.Commission{}).Where("invoice_id = ?", id).Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		for _, item := range inv.Items {
			if !item.Commission.IsPositive() {
				continue
			}
			comm := domain.Commission{
				InvoiceID: &inv.ID,
				StaffID:   item.StaffID,
				ServiceID: item.ServiceID,
				Amount:    item.Commission,
				Date:      inv.InvoiceDate,
				Status:    domain.CommissionPending,
			}
			if err := tx.Create(&comm).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the invoice with its items and commissions atomically.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv domain.Invoice
		err := tx.First(&inv, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("invoice_id = ?", id).Delete(&domain.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&domain.Commission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Invoice{}, id).Error
	})
}

type line struct {
	item       domain.InvoiceItem
	commission decimal.Decimal
}

// buildLines resolves catalog rows, snapshots names and computes line totals
// and commissions for manual invoice items.
func (s *Service) buildLines(tx *gorm.DB, items []ItemInput) ([]line, decimal.Decimal, error) {
	lines := make([]line, 0, len(items))
	subtotal := decimal.Zero

	for _, in := range items {
		var svc domain.Service
		if err := tx.First(&svc, in.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, ErrServiceNotFound
			}
			return nil, decimal.Zero, err
		}
		var staff domain.Staff
		if err := tx.First(&staff, in.StaffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, ErrStaffNotFound
			}
			return nil, decimal.Zero, err
		}

		price := decimal.NewFromFloat(in.Price).Round(2)
		discount := decimal.NewFromFloat(in.Discount)
		lineTotal := domain.LineTotal(price, in.Quantity, discount)
		commission := domain.CommissionAmount(lineTotal, staff.CommissionRate)
		subtotal = subtotal.Add(lineTotal)

		lines = append(lines, line{
			item: domain.InvoiceItem{
				ServiceID:   svc.ID,
				ServiceName: svc.Name,
				StaffID:     staff.ID,
				StaffName:   staff.FullName(),
				Quantity:    in.Quantity,
				Price:       price,
				Discount:    discount,
				Total:       lineTotal,
				Commission:  commission,
			},
			commission: commission,
		})
	}
	return lines, subtotal, nil
}

func (s *Service) insertLines(tx *gorm.DB, invoiceID int64, date time.Time, lines []line, commissionStatus domain.CommissionStatus) error {
	for _, l := range lines {
		item := l.item
		item.InvoiceID = invoiceID
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if !l.commission.IsPositive() {
			continue
		}
		comm := domain.Commission{
			InvoiceID: &invoiceID,
			StaffID:   item.StaffID,
			ServiceID: item.ServiceID,
			Amount:    l.commission,
			Date:      date,
			Status:    commissionStatus,
		}
		if err := tx.Create(&comm).Error; err != nil {
			return err
		}
	}
	return nil
}
