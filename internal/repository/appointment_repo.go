package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type AppointmentFilters struct {
	Status string
	// Exact calendar date, zero value means no filter.
	Date time.Time
	// Matches customer name, email or phone.
	Search string
	Limit  int
	Offset int
}

// Create inserts the appointment together with its service slots.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Services.Service").
		Preload("Services.Staff").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context, f AppointmentFilters) ([]domain.Appointment, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Appointment{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.Date.IsZero() {
		start, end := dayRange(f.Date, f.Date)
		q = q.Where("appointment_date >= ? AND appointment_date < ?", start, end)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("customer_name LIKE ? OR customer_email LIKE ? OR customer_phone LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []domain.Appointment
	err := q.Preload("Services").
		Preload("Services.Service").
		Preload("Services.Staff").
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// Update overwrites the appointment's own columns and syncs its service
// slots in one transaction: slots for services missing from the new set are
// detached, slots for present services get their staff/notes overwritten.
func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment, slots []domain.AppointmentService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Appointment{ID: a.ID}).Updates(map[string]interface{}{
			"customer_name":    a.CustomerName,
			"customer_email":   a.CustomerEmail,
			"customer_phone":   a.CustomerPhone,
			"appointment_date": a.Date,
			"appointment_time": a.Time,
			"status":           a.Status,
			"notes":            a.Notes,
		}).Error
		if err != nil {
			return err
		}
		return syncSlots(tx, a.ID, slots)
	})
}

func syncSlots(tx *gorm.DB, appointmentID int64, slots []domain.AppointmentService) error {
	keep := make([]int64, 0, len(slots))
	for _, s := range slots {
		keep = append(keep, s.ServiceID)
	}

	del := tx.Where("appointment_id = ?", appointmentID)
	if len(keep) > 0 {
		del = del.Where("service_id NOT IN ?", keep)
	}
	if err := del.Delete(&domain.AppointmentService{}).Error; err != nil {
		return err
	}

	for _, s := range slots {
		var existing domain.AppointmentService
		err := tx.Where("appointment_id = ? AND service_id = ?", appointmentID, s.ServiceID).
			First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{"staff_id": s.StaffID, "notes": s.Notes}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			slot := domain.AppointmentService{
				AppointmentID: appointmentID,
				ServiceID:     s.ServiceID,
				StaffID:       s.StaffID,
				Notes:         s.Notes,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// AssignStaff sets the staff member on one existing service slot. Returns
// gorm.ErrRecordNotFound when the (appointment, service) pair does not exist.
func (r *AppointmentRepository) AssignStaff(ctx context.Context, appointmentID, serviceID, staffID int64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.AppointmentService{}).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		Update("staff_id", staffID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
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

// Delete removes the appointment and its service slots. The caller is
// responsible for refusing invoiced appointments.
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", id).
			Delete(&domain.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Appointment{}, id).Error
	})
}
