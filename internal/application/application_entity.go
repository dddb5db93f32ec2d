package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriveID   uuid.UUID `gorm:"type:uuid;not null"`
	StudentID uuid.UUID `gorm:"type:uuid;not null"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null"`
	Status    Status    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Application) TableName() string { return "applications" }

type ApplicationView struct {
	Application
	StudentName  string   `gorm:"column:student_name"`
	StudentEmail string   `gorm:"column:student_email"`
	RollNo       string   `gorm:"column:roll_no"`
	Branch       string   `gorm:"column:branch"`
	CGPA         *float64 `gorm:"column:cgpa"`
	CollegeName  string   `gorm:"column:college_name"`
}
