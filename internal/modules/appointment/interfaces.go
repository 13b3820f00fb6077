package appointment

import (
	"context"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, f repository.AppointmentFilters) ([]domain.Appointment, int64, error)
	Update(ctx context.Context, a *domain.Appointment, slots []domain.AppointmentService) error
	AssignStaff(ctx context.Context, appointmentID, serviceID, staffID int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

type ServiceFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type StaffFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}
