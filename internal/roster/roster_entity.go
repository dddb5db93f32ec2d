package roster

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollegeID      uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(30)"`
	RollNo         string    `gorm:"column:roll_no;type:varchar(60)"`
	Branch         string    `gorm:"type:varchar(120)"`
	CGPA           *float64  `gorm:"column:cgpa;type:numeric(4,2)"`
	GraduationYear *int      `gorm:"type:smallint"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Student) TableName() string { return "students" }

// DriveStudent menandai student boleh dilamarkan ke drive.
type DriveStudent struct {
	DriveID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

func (DriveStudent) TableName() string { return "drive_students" }
