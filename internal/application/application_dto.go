package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutcomeCreated          = "created"
	OutcomeSkippedDuplicate = "skipped_duplicate"
	OutcomeNotEligible      = "not_eligible"

	OutcomeApplied           = "applied"
	OutcomeSkippedWrongState = "skipped_wrong_state"
	OutcomeNotFound          = "not_found"
)

// CreateRequest StudentIDs kosong = semua student yang sudah ter-link ke drive.
type CreateRequest struct {
	StudentIDs []string `json:"student_ids" binding:"omitempty,max=5000,dive,uuid"`
	CollegeID  string   `json:"college_id" binding:"omitempty,uuid"`
}

type CreateOutcome struct {
	StudentID     string `json:"student_id"`
	Outcome       string `json:"outcome"`
	ApplicationID string `json:"application_id,omitempty"`
}

type CreateResult struct {
	Created     int             `json:"created"`
	Skipped     int             `json:"skipped"`
	NotEligible int             `json:"not_eligible"`
	Results     []CreateOutcome `json:"results"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPLIED IN_TEST SHORTLISTED IN_INTERVIEW SELECTED REJECTED"`
}

type BulkRequest struct {
	StudentIDs []string `json:"student_ids" binding:"required,min=1,max=1000,dive,uuid"`
	CollegeID  string   `json:"college_id" binding:"required,uuid"`
}

type BulkOutcome struct {
	StudentID     string `json:"student_id"`
	Outcome       string `json:"outcome"`
	ApplicationID string `json:"application_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

type BulkResult struct {
	Target   string        `json:"target"`
	Applied  int           `json:"applied"`
	Skipped  int           `json:"skipped"`
	NotFound int           `json:"not_found"`
	Results  []BulkOutcome `json:"results"`
}

type ListFilter struct {
	CollegeID uuid.UUID
	Status    Status
	Page      int
	PageSize  int
}

type ApplicationResponse struct {
	ID           string    `json:"id"`
	DriveID      string    `json:"drive_id"`
	StudentID    string    `json:"student_id"`
	CollegeID    string    `json:"college_id"`
	Status       string    `json:"status"`
	StudentName  string    `json:"student_name,omitempty"`
	StudentEmail string    `json:"student_email,omitempty"`
	RollNo       string    `json:"roll_no,omitempty"`
	Branch       string    `json:"branch,omitempty"`
	CGPA         *float64  `json:"cgpa,omitempty"`
	CollegeName  string    `json:"college_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
