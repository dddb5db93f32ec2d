package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Industry     string    `gorm:"type:varchar(120)"`
	Website      string    `gorm:"type:varchar(255)"`
	Description  string    `gorm:"type:text"`
	ContactPhone string    `gorm:"type:varchar(30)"`
	Approved     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyWithOwner company plus email akun pemiliknya.
type CompanyWithOwner struct {
	Company
	OwnerEmail string `gorm:"column:owner_email"`
}
