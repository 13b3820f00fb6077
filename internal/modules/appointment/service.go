package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salondesk/internal/domain"
	"salondesk/internal/repository"
)

type Service struct {
	appointments AppointmentRepository
	services     ServiceFinder
	staff        StaffFinder
}

func NewService(appointments AppointmentRepository, services ServiceFinder, staff StaffFinder) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		staff:        staff,
	}
}

// CreatePublic books an appointment from the customer-facing form: Pending
// status, one service, no staff assigned. The booking date must not be in
// the past.
func (s *Service) CreatePublic(ctx context.Context, req PublicBookingRequest) (*domain.Appointment, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	if err := parseClock(req.Time); err != nil {
		return nil, ErrValidation
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	a := &domain.Appointment{
		Reference:     uuid.NewString(),
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Date:          date,
		Time:          req.Time,
		Status:        domain.AppointmentPending,
		Notes:         req.Message,
		Services: []domain.AppointmentService{
			{ServiceID: req.ServiceID},
		},
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, a.ID)
}

// CreateAdmin books an appointment from the back office with explicit status
// and per-service staff assignments. Past dates are allowed here.
func (s *Service) CreateAdmin(ctx context.Context, req AdminAppointmentRequest) (*domain.Appointment, error) {
	a, slots, err := s.buildFromAdminRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	a.Services = slots

	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, a.ID)
}

// Update overwrites the appointment fields and replaces the service slot set
// with sync semantics.
func (s *Service) Update(ctx context.Context, id int64, req AdminAppointmentRequest) (*domain.Appointment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	a, slots, err := s.buildFromAdminRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := s.appointments.Update(ctx, a, slots); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) buildFromAdminRequest(ctx context.Context, req AdminAppointmentRequest) (*domain.Appointment, []domain.AppointmentService, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, nil, ErrValidation
	}
	if err := parseClock(req.Time); err != nil {
		return nil, nil, ErrValidation
	}
	status := domain.AppointmentStatus(req.Status)
	if !domain.ValidAppointmentStatus(status) {
		return nil, nil, ErrValidation
	}

	slots := make([]domain.AppointmentService, 0, len(req.Services))
	seen := make(map[int64]int, len(req.Services))
	for _, svc := range req.Services {
		if _, err := s.services.GetByID(ctx, svc.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrServiceNotFound
			}
			return nil, nil, err
		}
		if svc.StaffID != nil {
			if _, err := s.staff.GetByID(ctx, *svc.StaffID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil, ErrStaffNotFound
				}
				return nil, nil, err
			}
		}
		slot := domain.AppointmentService{
			ServiceID: svc.ID,
			StaffID:   svc.StaffID,
			Notes:     svc.Notes,
		}
		// A service can appear only once per appointment; the last entry
		// in the payload wins.
		if i, ok := seen[svc.ID]; ok {
			slots[i] = slot
			continue
		}
		seen[svc.ID] = len(slots)
		slots = append(slots, slot)
	}

	a := &domain.Appointment{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		Time:          req.Time,
		Status:        status,
		Notes:         req.Notes,
	}
	return a, slots, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *Service) List(ctx context.Context, f repository.AppointmentFilters) ([]domain.Appointment, int64, error) {
	return s.appointments.List(ctx, f)
}

// AssignStaff updates the staff member on exactly one existing service slot.
func (s *Service) AssignStaff(ctx context.Context, appointmentID, serviceID, staffID int64) (*domain.Appointment, error) {
	if _, err := s.Get(ctx, appointmentID); err != nil {
		return nil, err
	}
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if err := s.appointments.AssignStaff(ctx, appointmentID, serviceID, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s.appointments.GetByID(ctx, appointmentID)
}

// UpdateStatus overwrites the status unconditionally; any enumerated value
// may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidAppointmentStatus(status) {
		return nil, ErrValidation
	}
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.appointments.GetByID(ctx, id)
}

// Delete removes the appointment and its slots. Invoiced appointments are
// kept as the financial record's source and cannot be deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.InvoiceID != nil {
		return ErrAlreadyInvoiced
	}
	return s.appointments.Delete(ctx, id)
}
