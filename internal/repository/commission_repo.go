package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type CommissionRepository struct {
	db *gorm.DB
}

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// dayRange widens a calendar date pair into a half-open timestamp range so
// the same comparison works on both database drivers.
func dayRange(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

type CommissionFilters struct {
	StaffID  int64
	Status   string
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
	Offset   int
}

// StaffSummary aggregates one staff member's commissions over a date range.
type StaffSummary struct {
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	InvoiceCount  int64           `json:"invoice_count"`
}

type ServiceTotal struct {
	ServiceID   int64           `json:"service_id"`
	ServiceName string          `json:"service_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

type StaffTotal struct {
	StaffID       int64           `json:"staff_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	InvoiceCount  int64           `json:"invoice_count"`
}

type DailyTotal struct {
	Day         time.Time       `json:"day"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

func (r *CommissionRepository) Create(ctx context.Context, c *domain.Commission) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommissionRepository) GetByID(ctx context.Context, id int64) (*domain.Commission, error) {
	var c domain.Commission
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Service").
		Preload("Invoice").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommissionRepository) List(ctx context.Context, f CommissionFilters) ([]domain.Commission, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Commission{})

	if f.StaffID != 0 {
		q = q.Where("staff_id = ?", f.StaffID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.DateFrom.IsZero() {
		start, _ := dayRange(f.DateFrom, f.DateFrom)
		q = q.Where("date >= ?", start)
	}
	if !f.DateTo.IsZero() {
		_, end := dayRange(f.DateTo, f.DateTo)
		q = q.Where("date < ?", end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var commissions []domain.Commission
	err := q.Preload("Staff").
		Preload("Service").
		Preload("Invoice").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&commissions).Error
	if err != nil {
		return nil, 0, err
	}
	return commissions, total, nil
}

func (r *CommissionRepository) UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BatchUpdateStatus sets the status for exactly the given ids.
func (r *CommissionRepository) BatchUpdateStatus(ctx context.Context, ids []int64, status domain.CommissionStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Where("id IN ?", ids).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *CommissionRepository) CountByInvoice(ctx context.Context, invoiceID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Where("invoice_id = ?", invoiceID).
		Count(&n).Error
	return n, err
}

func (r *CommissionRepository) Summary(ctx context.Context, staffID int64, from, to time.Time) (*StaffSummary, error) {
	start, end := dayRange(from, to)
	var s StaffSummary
	err := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Select(
			"COALESCE(SUM(CASE WHEN status = 'Paid' THEN amount ELSE 0 END), 0) AS paid_amount, "+
				"COALESCE(SUM(CASE WHEN status = 'Pending' THEN amount ELSE 0 END), 0) AS pending_amount, "+
				"COUNT(DISTINCT invoice_id) AS invoice_count").
		Where("staff_id = ? AND date >= ? AND date < ?", staffID, start, end).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CommissionRepository) ServiceBreakdown(ctx context.Context, staffID int64, from, to time.Time) ([]ServiceTotal, error) {
	start, end := dayRange(from, to)
	var out []ServiceTotal
	err := r.db.WithContext(ctx).
		Table("commissions").
		Select("services.id AS service_id, services.name AS service_name, "+
			"SUM(commissions.amount) AS total_amount, COUNT(*) AS count").
		Joins("JOIN services ON services.id = commissions.service_id").
		Where("commissions.staff_id = ? AND commissions.date >= ? AND commissions.date < ?",
			staffID, start, end).
		Group("services.id, services.name").
		Order("total_amount DESC").
		Scan(&out).Error
	return out, err
}

func (r *CommissionRepository) Recent(ctx context.Context, staffID int64, from, to time.Time, limit int) ([]domain.Commission, error) {
	start, end := dayRange(from, to)
	var out []domain.Commission
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Invoice").
		Where("staff_id = ? AND date >= ? AND date < ?", staffID, start, end).
		Order("date DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *CommissionRepository) StaffTotals(ctx context.Context, from, to time.Time) ([]StaffTotal, error) {
	start, end := dayRange(from, to)
	var out []StaffTotal
	err := r.db.WithContext(ctx).
		Table("commissions").
		Select("staff.id AS staff_id, staff.first_name, staff.last_name, "+
			"COALESCE(SUM(CASE WHEN commissions.status = 'Paid' THEN commissions.amount ELSE 0 END), 0) AS paid_amount, "+
			"COALESCE(SUM(CASE WHEN commissions.status = 'Pending' THEN commissions.amount ELSE 0 END), 0) AS pending_amount, "+
			"COUNT(DISTINCT commissions.invoice_id) AS invoice_count").
		Joins("JOIN staff ON staff.id = commissions.staff_id").
		Where("commissions.date >= ? AND commissions.date < ?", start, end).
		Group("staff.id, staff.first_name, staff.last_name").
		Order("paid_amount DESC").
		Scan(&out).Error
	return out, err
}

func (r *CommissionRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]DailyTotal, error) {
	start, end := dayRange(from, to)
	var out []DailyTotal
	err := r.db.WithContext(ctx).
		Table("commissions").
		Select("date AS day, SUM(amount) AS total_amount, COUNT(*) AS count").
		Where("date >= ? AND date < ?", start, end).
		Group("date").
		Order("date").
		Scan(&out).Error
	return out, err
}

func (r *CommissionRepository) ServiceTotals(ctx context.Context, from, to time.Time, limit int) ([]ServiceTotal, error) {
	start, end := dayRange(from, to)
	var out []ServiceTotal
	err := r.db.WithContext(ctx).
		Table("commissions").
		Select("services.id AS service_id, services.name AS service_name, "+
			"SUM(commissions.amount) AS total_amount, COUNT(*) AS count").
		Joins("JOIN services ON services.id = commissions.service_id").
		Where("commissions.date >= ? AND commissions.date < ?", start, end).
		Group("services.id, services.name").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
