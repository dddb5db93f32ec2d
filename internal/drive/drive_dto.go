package drive

import "time"

const dateLayout = "2006-01-02"

type CreateDriveRequest struct {
	Title       string `json:"title" binding:"required,notblank,min=3,max=255"`
	Description string `json:"description"`
	JobRole     string `json:"job_role" binding:"required,notblank,max=255"`
	CTC         string `json:"ctc" binding:"max=100"`
	Location    string `json:"location" binding:"max=255"`
	Eligibility string `json:"eligibility"`
	StartDate   string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateDriveRequest field nil = tidak diubah.
type UpdateDriveRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string `json:"description"`
	JobRole     *string `json:"job_role" binding:"omitempty,max=255"`
	CTC         *string `json:"ctc" binding:"omitempty,max=100"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	Eligibility *string `json:"eligibility"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type ListFilter struct {
	Status   DriveStatus
	Query    string
	Page     int
	PageSize int
}

type DriveResponse struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	CompanyName  string     `json:"company_name,omitempty"`
	Code         string     `json:"code"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	JobRole      string     `json:"job_role"`
	CTC          string     `json:"ctc"`
	Location     string     `json:"location"`
	Eligibility  string     `json:"eligibility"`
	StartDate    string     `json:"start_date,omitempty"`
	EndDate      string     `json:"end_date,omitempty"`
	Status       string     `json:"status"`
	CurrentStage string     `json:"current_stage,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type StageResponse struct {
	Name        string     `json:"name"`
	Position    int        `json:"position"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
}

type PipelineResponse struct {
	DriveID      string          `json:"drive_id"`
	CollegeID    string          `json:"college_id,omitempty"`
	CurrentStage string          `json:"current_stage,omitempty"`
	Stages       []StageResponse `json:"stages"`
}

type StageAdvanceResponse struct {
	PipelineResponse
	Completed string `json:"completed"`
	Activated string `json:"activated,omitempty"`
}

type ActivateNextStageRequest struct {
	CollegeID string `json:"college_id" binding:"omitempty,uuid"`
}
