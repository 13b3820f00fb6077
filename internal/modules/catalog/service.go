package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type Service struct {
	services ServiceRepository
	staff    StaffRepository
}

func NewService(services ServiceRepository, staff StaffRepository) *Service {
	return &Service{
		services: services,
		staff:    staff,
	}
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, req ServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:         req.Name,
		Description:  req.Description,
		Price:        decimal.NewFromFloat(req.Price).Round(2),
		TimeEstimate: req.TimeEstimate,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return svc, err
}

func (s *Service) UpdateService(ctx context.Context, id int64, req ServiceRequest) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = decimal.NewFromFloat(req.Price).Round(2)
	svc.TimeEstimate = req.TimeEstimate

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, search string, limit, offset int) ([]domain.Service, int64, error) {
	return s.services.List(ctx, search, limit, offset)
}

/* ---------- STAFF ---------- */

func (s *Service) CreateStaff(ctx context.Context, req StaffRequest) (*domain.Staff, error) {
	st := &domain.Staff{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		CommissionRate:   decimal.NewFromFloat(req.CommissionRate).Round(2),
	}
	if err := s.staff.Create(ctx, st); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if req.SpecializationIDs != nil {
		if err := s.staff.SyncSpecializations(ctx, st.ID, *req.SpecializationIDs); err != nil {
			return nil, err
		}
	}
	return s.GetStaff(ctx, st.ID)
}

func (s *Service) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	st, err := s.staff.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return st, err
}

func (s *Service) UpdateStaff(ctx context.Context, id int64, req StaffRequest) (*domain.Staff, error) {
	st, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	st.FirstName = req.FirstName
	st.LastName = req.LastName
	st.Email = req.Email
	st.Phone = req.Phone
	st.Address = req.Address
	st.EmergencyContact = req.EmergencyContact
	st.CommissionRate = decimal.NewFromFloat(req.CommissionRate).Round(2)

	if err := s.staff.Update(ctx, st); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if req.SpecializationIDs != nil {
		if err := s.staff.SyncSpecializations(ctx, st.ID, *req.SpecializationIDs); err != nil {
			return nil, err
		}
	}
	return s.GetStaff(ctx, st.ID)
}

func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}
	return s.staff.Delete(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context, search string, limit, offset int) ([]domain.Staff, int64, error) {
	return s.staff.List(ctx, search, limit, offset)
}

func (s *Service) SyncSpecializations(ctx context.Context, staffID int64, serviceIDs []int64) (*domain.Staff, error) {
	if _, err := s.GetStaff(ctx, staffID); err != nil {
		return nil, err
	}
	if err := s.staff.SyncSpecializations(ctx, staffID, serviceIDs); err != nil {
		return nil, err
	}
	return s.GetStaff(ctx, staffID)
}

// isUniqueViolation recognizes unique-constraint failures from both drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
