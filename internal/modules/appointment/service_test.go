package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) List(ctx context.Context, f repository.AppointmentFilters) ([]domain.Appointment, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Appointment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *domain.Appointment, slots []domain.AppointmentService) error {
	args := m.Called(ctx, a, slots)
	return args.Error(0)
}

func (m *MockAppointmentRepository) AssignStaff(ctx context.Context, appointmentID, serviceID, staffID int64) error {
	args := m.Called(ctx, appointmentID, serviceID, staffID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestService() (*Service, *MockAppointmentRepository, *MockServiceFinder, *MockStaffFinder) {
	appointments := new(MockAppointmentRepository)
	services := new(MockServiceFinder)
	staff := new(MockStaffFinder)
	return NewService(appointments, services, staff), appointments, services, staff
}

func TestCreatePublic_Success(t *testing.T) {
	svc, appointments, services, _ := newTestService()
	ctx := context.Background()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	req := PublicBookingRequest{
		Name:      "Emma Wilson",
		Phone:     "+1 555 020 3001",
		Date:      tomorrow,
		Time:      "10:00",
		ServiceID: 5,
	}

	services.On("GetByID", ctx, int64(5)).Return(&domain.Service{ID: 5, Name: "Haircut"}, nil)
	appointments.On("Create", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil)
	appointments.On("GetByID", ctx, int64(42)).Return(&domain.Appointment{
		ID:        42,
		Reference: "ref",
		Status:    domain.AppointmentPending,
	}, nil)

	a, err := svc.CreatePublic(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), a.ID)

	created := appointments.Calls[0].Arguments.Get(1).(*domain.Appointment)
	assert.Equal(t, domain.AppointmentPending, created.Status)
	assert.NotEmpty(t, created.Reference)
	assert.Len(t, created.Services, 1)
	assert.Nil(t, created.Services[0].StaffID)
	appointments.AssertExpectations(t)
}

func TestCreatePublic_PastDate(t *testing.T) {
	svc, appointments, _, _ := newTestService()

	req := PublicBookingRequest{
		Name:      "Emma Wilson",
		Phone:     "+1 555 020 3001",
		Date:      "2020-01-15",
		Time:      "10:00",
		ServiceID: 5,
	}

	_, err := svc.CreatePublic(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
	appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePublic_UnknownService(t *testing.T) {
	svc, appointments, services, _ := newTestService()
	ctx := context.Background()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	req := PublicBookingRequest{
		Name:      "Emma Wilson",
		Phone:     "+1 555 020 3001",
		Date:      tomorrow,
		Time:      "10:00",
		ServiceID: 999,
	}

	services.On("GetByID", ctx, int64(999)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreatePublic(ctx, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdmin_PastDateAllowed(t *testing.T) {
	svc, appointments, services, _ := newTestService()
	ctx := context.Background()

	req := AdminAppointmentRequest{
		CustomerName: "Walk-in",
		Date:         "2020-01-15",
		Time:         "09:00",
		Status:       "Completed",
		Services:     []ServiceAssignment{{ID: 5}},
	}

	services.On("GetByID", ctx, int64(5)).Return(&domain.Service{ID: 5}, nil)
	appointments.On("Create", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil)
	appointments.On("GetByID", ctx, int64(42)).Return(&domain.Appointment{ID: 42}, nil)

	_, err := svc.CreateAdmin(ctx, req)
	assert.NoError(t, err)
	appointments.AssertExpectations(t)
}

func TestCreateAdmin_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := AdminAppointmentRequest{
		CustomerName: "Walk-in",
		Date:         "2026-09-01",
		Time:         "09:00",
		Status:       "Confirmed",
		Services:     []ServiceAssignment{{ID: 5}},
	}

	_, err := svc.CreateAdmin(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAdmin_DuplicateServiceCollapses(t *testing.T) {
	svc, appointments, services, staff := newTestService()
	ctx := context.Background()

	staffID := int64(7)
	req := AdminAppointmentRequest{
		CustomerName: "Walk-in",
		Date:         "2026-09-01",
		Time:         "09:00",
		Status:       "Approved",
		Services: []ServiceAssignment{
			{ID: 5, Notes: "first"},
			{ID: 5, StaffID: &staffID, Notes: "second"},
		},
	}

	services.On("GetByID", ctx, int64(5)).Return(&domain.Service{ID: 5}, nil)
	staff.On("GetByID", ctx, staffID).Return(&domain.Staff{ID: staffID}, nil)
	appointments.On("Create", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil)
	appointments.On("GetByID", ctx, int64(42)).Return(&domain.Appointment{ID: 42}, nil)

	_, err := svc.CreateAdmin(ctx, req)
	assert.NoError(t, err)

	created := appointments.Calls[0].Arguments.Get(1).(*domain.Appointment)
	assert.Len(t, created.Services, 1)
	assert.Equal(t, &staffID, created.Services[0].StaffID)
	assert.Equal(t, "second", created.Services[0].Notes)
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	svc, appointments, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, "Done")
	assert.ErrorIs(t, err, ErrValidation)
	appointments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignStaff_SlotNotFound(t *testing.T) {
	svc, appointments, _, staff := newTestService()
	ctx := context.Background()

	appointments.On("GetByID", ctx, int64(1)).Return(&domain.Appointment{ID: 1}, nil)
	staff.On("GetByID", ctx, int64(7)).Return(&domain.Staff{ID: 7}, nil)
	appointments.On("AssignStaff", ctx, int64(1), int64(5), int64(7)).Return(gorm.ErrRecordNotFound)

	_, err := svc.AssignStaff(ctx, 1, 5, 7)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete_RefusesInvoicedAppointment(t *testing.T) {
	svc, appointments, _, _ := newTestService()
	ctx := context.Background()

	invoiceID := int64(9)
	appointments.On("GetByID", ctx, int64(1)).Return(&domain.Appointment{
		ID:        1,
		InvoiceID: &invoiceID,
	}, nil)

	err := svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrAlreadyInvoiced)
	appointments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	svc, appointments, _, _ := newTestService()
	ctx := context.Background()

	appointments.On("GetByID", ctx, int64(1)).Return(&domain.Appointment{ID: 1}, nil)
	appointments.On("Delete", ctx, int64(1)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 1))
	appointments.AssertExpectations(t)
}
