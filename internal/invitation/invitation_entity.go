package invitation

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "PENDING"
	StatusAccepted InvitationStatus = "ACCEPTED"
	StatusRejected InvitationStatus = "REJECTED"
)

type ManagedBy string

const (
	ManagedByCollege ManagedBy = "COLLEGE"
	ManagedByAdmin   ManagedBy = "ADMIN"
)

// Binding satu baris drive_colleges. ID dipakai sebagai invitation id.
type Binding struct {
	ID               uuid.UUID        `gorm:"type:uuid;not null;unique"`
	DriveID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CollegeID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	InvitationStatus InvitationStatus `gorm:"type:varchar(20);not null;default:PENDING"`
	ManagedBy        ManagedBy        `gorm:"type:varchar(20);not null;default:COLLEGE"`
	CurrentStage     *string          `gorm:"type:varchar(20)"`
	RejectionReason  string           `gorm:"type:text"`
	InvitedAt        time.Time        `gorm:"not null;default:now()"`
	RespondedAt      *time.Time
	UpdatedAt        time.Time `gorm:"not null;default:now()"`
}

func (Binding) TableName() string {
	return "drive_colleges"
}

// PipelineScope scope pipeline yang berlaku untuk binding: pipeline college
// sendiri hanya kalau managedBy COLLEGE, selain itu pipeline drive (uuid.Nil).
func (b Binding) PipelineScope() uuid.UUID {
	if b.ManagedBy == ManagedByCollege {
		return b.CollegeID
	}
	return uuid.Nil
}

// BindingView binding plus data drive, company dan college untuk list.
type BindingView struct {
	Binding
	DriveTitle  string    `gorm:"column:drive_title"`
	DriveCode   string    `gorm:"column:drive_code"`
	DriveStatus string    `gorm:"column:drive_status"`
	CompanyID   uuid.UUID `gorm:"column:company_id"`
	CompanyName string    `gorm:"column:company_name"`
	CollegeName string    `gorm:"column:college_name"`
}
