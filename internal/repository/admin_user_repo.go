package repository

import (
	"context"

	"gorm.io/gorm"

	"salondesk/internal/domain"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}
