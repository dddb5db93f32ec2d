package college

import (
	"time"

	"github.com/google/uuid"
)

type College struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(120)"`
	State        string    `gorm:"type:varchar(120)"`
	Website      string    `gorm:"type:varchar(255)"`
	ContactPhone string    `gorm:"type:varchar(30)"`
	Approved     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (College) TableName() string { return "colleges" }

type CollegeWithOwner struct {
	College
	OwnerEmail string `gorm:"column:owner_email"`
}
