package auth

import (
	"time"

	"freshbit/internal/domain"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email        string      `gorm:"type:varchar(255);not null"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Role         domain.Role `gorm:"type:varchar(20);not null"`
	OrgID        *uuid.UUID  `gorm:"type:uuid"` // company/college id, nil untuk admin
	Status       UserStatus  `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Verified     bool        `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

func (u *User) IsActive() bool { return u.Status == UserStatusActive }

func (u *User) OrgIDString() string {
	if u.OrgID == nil {
		return ""
	}
	return u.OrgID.String()
}

// Organization baris companies atau colleges yang dibuat bersama akun.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
