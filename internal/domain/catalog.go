package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	// Estimated duration in minutes.
	TimeEstimate int       `json:"time_estimate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Staff struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"first_name" gorm:"not null"`
	LastName         string `json:"last_name" gorm:"not null"`
	Email            string `json:"email" gorm:"uniqueIndex;not null"`
	Phone            string `json:"phone"`
	Address          string `json:"address" gorm:"type:text"`
	EmergencyContact string `json:"emergency_contact"`
	// Percentage of the line total paid out per invoiced service, 0-100.
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Specializations []Service `json:"specializations,omitempty" gorm:"many2many:staff_services"`
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (Staff) TableName() string { return "staff" }
