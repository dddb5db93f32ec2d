package roster

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutcomeInserted = "inserted"
	OutcomeLinked   = "linked"
	OutcomeSkipped  = "skipped"
	OutcomeInvalid  = "invalid"
)

type ConfirmRequest struct {
	Rows []Row `json:"rows" binding:"required,min=1,max=5000"`
}

type ConfirmRowResult struct {
	Line      int      `json:"line"`
	Email     string   `json:"email"`
	Outcome   string   `json:"outcome"`
	StudentID string   `json:"student_id,omitempty"`
	Reasons   []string `json:"reasons,omitempty"`
}

// ConfirmResponse Inserted = student baru, Linked = link drive baru (termasuk
// student baru), Skipped = sudah ter-link sebelumnya.
type ConfirmResponse struct {
	Inserted int                `json:"inserted"`
	Linked   int                `json:"linked"`
	Skipped  int                `json:"skipped"`
	Invalid  int                `json:"invalid"`
	Results  []ConfirmRowResult `json:"results"`
}

type StudentFilter struct {
	Query          string
	Branch         string
	GraduationYear int
	DriveID        uuid.UUID
	Page           int
	PageSize       int
}

type UpdateStudentRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Email          *string  `json:"email" binding:"omitempty,email,max=255"`
	Phone          *string  `json:"phone" binding:"omitempty,max=30"`
	RollNo         *string  `json:"rollNo" binding:"omitempty,max=60"`
	Branch         *string  `json:"branch" binding:"omitempty,max=120"`
	CGPA           *float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	GraduationYear *int     `json:"graduationYear" binding:"omitempty,gte=1950,lte=2100"`
}

type StudentResponse struct {
	ID             string    `json:"id"`
	CollegeID      string    `json:"college_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	RollNo         string    `json:"rollNo,omitempty"`
	Branch         string    `json:"branch,omitempty"`
	CGPA           *float64  `json:"cgpa,omitempty"`
	GraduationYear *int      `json:"graduationYear,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
