package repository

import (
	"context"

	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	return r.db.WithContext(ctx).Omit("Specializations").Create(s).Error
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	var s domain.Staff
	if err := r.db.WithContext(ctx).Preload("Specializations").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) Update(ctx context.Context, s *domain.Staff) error {
	return r.db.WithContext(ctx).Omit("Specializations").Save(s).Error
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := domain.Staff{ID: id}
		if err := tx.Model(&s).Association("Specializations").Clear(); err != nil {
			return err
		}
		return tx.Delete(&s).Error
	})
}

func (r *StaffRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Staff, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Staff{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var staff []domain.Staff
	if err := q.Preload("Specializations").
		Order("first_name").
		Limit(limit).Offset(offset).
		Find(&staff).Error; err != nil {
		return nil, 0, err
	}
	return staff, total, nil
}

// SyncSpecializations replaces the staff member's specialization set with
// exactly the given service ids.
func (r *StaffRepository) SyncSpecializations(ctx context.Context, staffID int64, serviceIDs []int64) error {
	services := make([]domain.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		services = append(services, domain.Service{ID: id})
	}
	s := domain.Staff{ID: staffID}
	return r.db.WithContext(ctx).Model(&s).Association("Specializations").Replace(services)
}
