package commission

import (
	"context"
	"time"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type CommissionRepository interface {
	Create(ctx context.Context, c *domain.Commission) error
	GetByID(ctx context.Context, id int64) (*domain.Commission, error)
	List(ctx context.Context, f repository.CommissionFilters) ([]domain.Commission, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) error
	BatchUpdateStatus(ctx context.Context, ids []int64, status domain.CommissionStatus) (int64, error)
	Summary(ctx context.Context, staffID int64, from, to time.Time) (*repository.StaffSummary, error)
	ServiceBreakdown(ctx context.Context, staffID int64, from, to time.Time) ([]repository.ServiceTotal, error)
	Recent(ctx context.Context, staffID int64, from, to time.Time, limit int) ([]domain.Commission, error)
	StaffTotals(ctx context.Context, from, to time.Time) ([]repository.StaffTotal, error)
	DailyTotals(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error)
	ServiceTotals(ctx context.Context, from, to time.Time, limit int) ([]repository.ServiceTotal, error)
}

type StaffFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

type ServiceFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
