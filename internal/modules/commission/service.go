package commission

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type Service struct {
	commissions CommissionRepository
	staff       StaffFinder
	services    ServiceFinder
}

func NewService(commissions CommissionRepository, staff StaffFinder, services ServiceFinder) *Service {
	return &Service{commissions: commissions, staff: staff, services: services}
}

func (s *Service) List(ctx context.Context, f repository.CommissionFilters) ([]CommissionView, int64, error) {
	commissions, total, err := s.commissions.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return NewCommissionViews(commissions), total, nil
}

// StaffSummary reports one staff member's earnings over a date range,
// broken down by service and with their most recent entries.
func (s *Service) StaffSummary(ctx context.Context, staffID int64, from, to time.Time) (*StaffSummaryView, error) {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	summary, err := s.commissions.Summary(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}
	byService, err := s.commissions.ServiceBreakdown(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}
	recent, err := s.commissions.Recent(ctx, staffID, from, to, 10)
	if err != nil {
		return nil, err
	}

	return &StaffSummaryView{
		StaffID:        staff.ID,
		StaffName:      staff.FullName(),
		CommissionRate: staff.CommissionRate,
		DateFrom:       from.Format("2006-01-02"),
		DateTo:         to.Format("2006-01-02"),
		PaidAmount:     summary.PaidAmount,
		PendingAmount:  summary.PendingAmount,
		TotalAmount:    summary.PaidAmount.Add(summary.PendingAmount),
		InvoiceCount:   summary.InvoiceCount,
		ByService:      byService,
		Recent:         NewCommissionViews(recent),
	}, nil
}

// Statistics builds the salon-wide commission dashboard for a date range.
func (s *Service) Statistics(ctx context.Context, from, to time.Time) (*StatisticsView, error) {
	byStaff, err := s.commissions.StaffTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.commissions.DailyTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	topServices, err := s.commissions.ServiceTotals(ctx, from, to, 10)
	if err != nil {
		return nil, err
	}

	paid := decimal.Zero
	pending := decimal.Zero
	for _, st := range byStaff {
		paid = paid.Add(st.PaidAmount)
		pending = pending.Add(st.PendingAmount)
	}

	byDay := make([]DailyTotalView, 0, len(daily))
	for _, d := range daily {
		byDay = append(byDay, DailyTotalView{
			Day:         d.Day.Format("2006-01-02"),
			TotalAmount: d.TotalAmount,
			Count:       d.Count,
		})
	}

	return &StatisticsView{
		DateFrom:      from.Format("2006-01-02"),
		DateTo:        to.Format("2006-01-02"),
		PaidAmount:    paid,
		PendingAmount: pending,
		TotalAmount:   paid.Add(pending),
		ByStaff:       byStaff,
		ByDay:         byDay,
		TopServices:   topServices,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) (*CommissionView, error) {
	if !domain.ValidCommissionStatus(status) {
		return nil, ErrValidation
	}
	if err := s.commissions.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c, err := s.commissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewCommissionView(c)
	return &view, nil
}

// BatchUpdateStatus sets the status on every listed commission and returns
// how many rows were changed.
func (s *Service) BatchUpdateStatus(ctx context.Context, ids []int64, status domain.CommissionStatus) (int64, error) {
	if !domain.ValidCommissionStatus(status) {
		return 0, ErrValidation
	}
	return s.commissions.BatchUpdateStatus(ctx, ids, status)
}

// RecordManual creates a commission entry with no backing invoice.
func (s *Service) RecordManual(ctx context.Context, req ManualCommissionRequest) (*CommissionView, error) {
	status := domain.CommissionStatus(req.Status)
	if !domain.ValidCommissionStatus(status) {
		return nil, ErrValidation
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	if _, err := s.staff.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	c := &domain.Commission{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Amount:    decimal.NewFromFloat(req.Amount).Round(2),
		Date:      date,
		Status:    status,
		Notes:     req.Notes,
	}
	if err := s.commissions.Create(ctx, c); err != nil {
		return nil, err
	}

	created, err := s.commissions.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	view := NewCommissionView(created)
	return &view, nil
}
