package drive

import (
	"time"

	"github.com/google/uuid"
)

type Drive struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID   `gorm:"type:uuid;not null"`
	Code         string      `gorm:"type:varchar(30);not null"`
	Title        string      `gorm:"type:varchar(255);not null"`
	Description  string      `gorm:"type:text"`
	JobRole      string      `gorm:"type:varchar(255);not null"`
	CTC          string      `gorm:"column:ctc;type:varchar(100)"`
	Location     string      `gorm:"type:varchar(255)"`
	Eligibility  string      `gorm:"type:text"`
	StartDate    *time.Time  `gorm:"type:date"`
	EndDate      *time.Time  `gorm:"type:date"`
	Status       DriveStatus `gorm:"type:varchar(20);not null;default:DRAFT"`
	CurrentStage *StageName  `gorm:"type:varchar(20)"`
	PublishedAt  *time.Time
	ClosedAt     *time.Time
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}

func (Drive) TableName() string {
	return "drives"
}

// DriveWithCompany baris list drive plus nama company.
type DriveWithCompany struct {
	Drive
	CompanyName string `gorm:"column:company_name"`
}

// Stage satu baris pipeline. ScopeCollegeID uuid.Nil = pipeline level drive.
type Stage struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	DriveID        uuid.UUID   `gorm:"type:uuid;not null"`
	ScopeCollegeID uuid.UUID   `gorm:"type:uuid;not null"`
	Name           StageName   `gorm:"type:varchar(20);not null"`
	Position       int         `gorm:"type:smallint;not null"`
	Status         StageStatus `gorm:"type:varchar(20);not null"`
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"not null;default:now()"`
	UpdatedAt      time.Time  `gorm:"not null;default:now()"`
}

func (Stage) TableName() string {
	return "drive_stages"
}
