package invitation

import "time"

const (
	OutcomeCreated         = "created"
	OutcomeSkippedConflict = "skipped_conflict"
	OutcomeNotFound        = "not_found"
	OutcomeNotApproved     = "not_approved"
)

type InviteRequest struct {
	CollegeIDs []string `json:"college_ids" binding:"required,min=1,max=200,dive,uuid"`
	ManagedBy  string   `json:"managed_by" binding:"omitempty,oneof=COLLEGE ADMIN"`
}

type InviteOutcome struct {
	CollegeID    string `json:"college_id"`
	Outcome      string `json:"outcome"`
	InvitationID string `json:"invitation_id,omitempty"`
}

// InviteResult Skipped = sudah terikat ke drive; Failed = not_found / not_approved.
type InviteResult struct {
	Created int             `json:"created"`
	Skipped int             `json:"skipped"`
	Failed  int             `json:"failed"`
	Results []InviteOutcome `json:"results"`
}

type RespondRequest struct {
	Decision string `json:"decision" binding:"required,oneof=ACCEPT REJECT"`
	Reason   string `json:"reason" binding:"max=500"`
}

type UpdateBindingRequest struct {
	ManagedBy        *string `json:"managed_by" binding:"omitempty,oneof=COLLEGE ADMIN"`
	InvitationStatus *string `json:"invitation_status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
}

type CollegeFilter struct {
	Status   InvitationStatus
	Page     int
	PageSize int
}

type BindingResponse struct {
	ID               string     `json:"id"`
	DriveID          string     `json:"drive_id"`
	DriveTitle       string     `json:"drive_title,omitempty"`
	DriveCode        string     `json:"drive_code,omitempty"`
	DriveStatus      string     `json:"drive_status,omitempty"`
	CompanyID        string     `json:"company_id,omitempty"`
	CompanyName      string     `json:"company_name,omitempty"`
	CollegeID        string     `json:"college_id"`
	CollegeName      string     `json:"college_name,omitempty"`
	InvitationStatus string     `json:"invitation_status"`
	ManagedBy        string     `json:"managed_by"`
	CurrentStage     string     `json:"current_stage,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	InvitedAt        time.Time  `json:"invited_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}
