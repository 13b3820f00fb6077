package commission

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Create(ctx context.Context, c *domain.Commission) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCommissionRepository) GetByID(ctx context.Context, id int64) (*domain.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) List(ctx context.Context, f repository.CommissionFilters) ([]domain.Commission, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Commission), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommissionRepository) UpdateStatus(ctx context.Context, id int64, status domain.CommissionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCommissionRepository) BatchUpdateStatus(ctx context.Context, ids []int64, status domain.CommissionStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommissionRepository) Summary(ctx context.Context, staffID int64, from, to time.Time) (*repository.StaffSummary, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StaffSummary), args.Error(1)
}

func (m *MockCommissionRepository) ServiceBreakdown(ctx context.Context, staffID int64, from, to time.Time) ([]repository.ServiceTotal, error) {
	args := m.Called(ctx, staffID, from, to)
	return args.Get(0).([]repository.ServiceTotal), args.Error(1)
}

func (m *MockCommissionRepository) Recent(ctx context.Context, staffID int64, from, to time.Time, limit int) ([]domain.Commission, error) {
	args := m.Called(ctx, staffID, from, to, limit)
	return args.Get(0).([]domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) StaffTotals(ctx context.Context, from, to time.Time) ([]repository.StaffTotal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]repository.StaffTotal), args.Error(1)
}

func (m *MockCommissionRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]repository.DailyTotal), args.Error(1)
}

func (m *MockCommissionRepository) ServiceTotals(ctx context.Context, from, to time.Time, limit int) ([]repository.ServiceTotal, error) {
	args := m.Called(ctx, from, to, limit)
	return args.Get(0).([]repository.ServiceTotal), args.Error(1)
}

type MockStaffFinder struct {
	mock.Mock
}

func (m *MockStaffFinder) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

type MockServiceFinder struct {
	mock.Mock
}

func (m *MockServiceFinder) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func newTestService() (*Service, *MockCommissionRepository, *MockStaffFinder, *MockServiceFinder) {
	commissions := new(MockCommissionRepository)
	staff := new(MockStaffFinder)
	services := new(MockServiceFinder)
	return NewService(commissions, staff, services), commissions, staff, services
}

func TestStaffSummary(t *testing.T) {
	svc, commissions, staff, _ := newTestService()
	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	staff.On("GetByID", ctx, int64(7)).Return(&domain.Staff{
		ID:             7,
		FirstName:      "Maria",
		LastName:       "Lopez",
		CommissionRate: d("20"),
	}, nil)
	commissions.On("Summary", ctx, int64(7), from, to).Return(&repository.StaffSummary{
		PaidAmount:    d("120.50"),
		PendingAmount: d("36"),
		InvoiceCount:  4,
	}, nil)
	commissions.On("ServiceBreakdown", ctx, int64(7), from, to).Return([]repository.ServiceTotal{
		{ServiceID: 1, ServiceName: "Haircut", TotalAmount: d("156.50"), Count: 5},
	}, nil)
	commissions.On("Recent", ctx, int64(7), from, to, 10).Return([]domain.Commission{
		{ID: 1, StaffID: 7, ServiceID: 1, Amount: d("36"), Date: to, Status: domain.CommissionPending},
	}, nil)

	view, err := svc.StaffSummary(ctx, 7, from, to)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Lopez", view.StaffName)
	assert.True(t, view.TotalAmount.Equal(d("156.50")), "total %s", view.TotalAmount)
	assert.Equal(t, int64(4), view.InvoiceCount)
	assert.Equal(t, "2026-08-01", view.DateFrom)
	assert.Equal(t, "2026-08-30", view.DateTo)
	assert.Len(t, view.Recent, 1)
}

func TestStaffSummary_UnknownStaff(t *testing.T) {
	svc, commissions, staff, _ := newTestService()
	ctx := context.Background()

	staff.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.StaffSummary(ctx, 99, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrStaffNotFound)
	commissions.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatistics_GrandTotals(t *testing.T) {
	svc, commissions, _, _ := newTestService()
	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	commissions.On("StaffTotals", ctx, from, to).Return([]repository.StaffTotal{
		{StaffID: 1, PaidAmount: d("40"), PendingAmount: d("10")},
		{StaffID: 2, PaidAmount: d("25"), PendingAmount: d("5.50")},
	}, nil)
	commissions.On("DailyTotals", ctx, from, to).Return([]repository.DailyTotal{
		{Day: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), TotalAmount: d("80.50"), Count: 4},
	}, nil)
	commissions.On("ServiceTotals", ctx, from, to, 10).Return([]repository.ServiceTotal{
		{ServiceID: 1, ServiceName: "Haircut", TotalAmount: d("80.50"), Count: 4},
	}, nil)

	stats, err := svc.Statistics(ctx, from, to)
	assert.NoError(t, err)
	assert.True(t, stats.PaidAmount.Equal(d("65")), "paid %s", stats.PaidAmount)
	assert.True(t, stats.PendingAmount.Equal(d("15.50")), "pending %s", stats.PendingAmount)
	assert.True(t, stats.TotalAmount.Equal(d("80.50")), "total %s", stats.TotalAmount)
	if assert.Len(t, stats.ByDay, 1) {
		assert.Equal(t, "2026-08-15", stats.ByDay[0].Day)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, commissions, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, "Approved")
	assert.ErrorIs(t, err, ErrValidation)
	commissions.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	commissions.On("UpdateStatus", ctx, int64(2), domain.CommissionPaid).Return(gorm.ErrRecordNotFound)
	_, err = svc.UpdateStatus(ctx, 2, domain.CommissionPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBatchUpdateStatus(t *testing.T) {
	svc, commissions, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.BatchUpdateStatus(ctx, []int64{1, 2}, "Done")
	assert.ErrorIs(t, err, ErrValidation)

	commissions.On("BatchUpdateStatus", ctx, []int64{1, 2, 3}, domain.CommissionPaid).Return(int64(3), nil)
	n, err := svc.BatchUpdateStatus(ctx, []int64{1, 2, 3}, domain.CommissionPaid)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	commissions.AssertExpectations(t)
}

func TestRecordManual(t *testing.T) {
	svc, commissions, staff, services := newTestService()
	ctx := context.Background()

	req := ManualCommissionRequest{
		StaffID:   7,
		ServiceID: 1,
		Amount:    45.5,
		Date:      "2026-08-20",
		Status:    "Pending",
		Notes:     "cash job payout",
	}

	staff.On("GetByID", ctx, int64(7)).Return(&domain.Staff{ID: 7, FirstName: "Maria", LastName: "Lopez"}, nil)
	services.On("GetByID", ctx, int64(1)).Return(&domain.Service{ID: 1, Name: "Haircut"}, nil)
	commissions.On("Create", ctx, mock.AnythingOfType("*domain.Commission")).Return(nil)
	commissions.On("GetByID", ctx, int64(101)).Return(&domain.Commission{
		ID:        101,
		StaffID:   7,
		ServiceID: 1,
		Amount:    d("45.50"),
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Status:    domain.CommissionPending,
		Staff:     &domain.Staff{ID: 7, FirstName: "Maria", LastName: "Lopez"},
		Service:   &domain.Service{ID: 1, Name: "Haircut"},
	}, nil)

	view, err := svc.RecordManual(ctx, req)
	assert.NoError(t, err)
	assert.Nil(t, view.InvoiceID)
	assert.Equal(t, "Maria Lopez", view.StaffName)
	assert.Equal(t, "Haircut", view.ServiceName)
	assert.True(t, view.Amount.Equal(d("45.50")))

	created := commissions.Calls[0].Arguments.Get(1).(*domain.Commission)
	assert.Nil(t, created.InvoiceID)
	assert.True(t, created.Amount.Equal(d("45.50")))
	commissions.AssertExpectations(t)
}

func TestRecordManual_Invalid(t *testing.T) {
	svc, commissions, staff, services := newTestService()
	ctx := context.Background()

	_, err := svc.RecordManual(ctx, ManualCommissionRequest{
		StaffID: 7, ServiceID: 1, Date: "2026-08-20", Status: "Approved",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordManual(ctx, ManualCommissionRequest{
		StaffID: 7, ServiceID: 1, Date: "20/08/2026", Status: "Pending",
	})
	assert.ErrorIs(t, err, ErrValidation)

	staff.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.RecordManual(ctx, ManualCommissionRequest{
		StaffID: 99, ServiceID: 1, Date: "2026-08-20", Status: "Pending",
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	staff.On("GetByID", ctx, int64(7)).Return(&domain.Staff{ID: 7}, nil)
	services.On("GetByID", ctx, int64(88)).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.RecordManual(ctx, ManualCommissionRequest{
		StaffID: 7, ServiceID: 88, Date: "2026-08-20", Status: "Pending",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	commissions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
