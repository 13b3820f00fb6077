package catalog

import (
	"context"

	"salondesk/internal/domain"
)

// ServiceRepository is the persistence surface needed for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Service, int64, error)
}

// StaffRepository is the persistence surface needed for staff administration.
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Staff, int64, error)
	SyncSpecializations(ctx context.Context, staffID int64, serviceIDs []int64) error
}
