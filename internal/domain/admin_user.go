package domain

import "time"

// AdminUser is a back-office login. The admin surface is deliberately small:
// one role, email + password, nothing customer-facing.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
