package analytics

import "time"

type AdminStatsResponse struct {
	UsersByRole          map[string]int64 `json:"usersByRole"`
	PendingCompanies     int64            `json:"pendingCompanies"`
	PendingColleges      int64            `json:"pendingColleges"`
	DrivesByStatus       map[string]int64 `json:"drivesByStatus"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
}

// DriveFunnel jumlah aplikasi per status untuk satu drive.
type DriveFunnel struct {
	DriveID       string           `json:"driveId"`
	Code          string           `json:"code"`
	Title         string           `json:"title"`
	CompanyName   string           `json:"companyName"`
	Status        string           `json:"status"`
	Applications  map[string]int64 `json:"applications"`
	Total         int64            `json:"total"`
	Selected      int64            `json:"selected"`
	SelectionRate float64          `json:"selectionRate"`
}

type AdminOverviewResponse struct {
	Drives []DriveFunnel `json:"drives"`
}

type CompanyStatsResponse struct {
	DrivesByStatus       map[string]int64 `json:"drivesByStatus"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	Selected             int64            `json:"selected"`
}

type CollegeStatsResponse struct {
	InvitationsByStatus  map[string]int64 `json:"invitationsByStatus"`
	Students             int64            `json:"students"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	Selected             int64            `json:"selected"`
}

type StageSummary struct {
	Name        string     `json:"name"`
	Position    int        `json:"position"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CollegeDriveInfo struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	JobRole     string     `json:"jobRole"`
	CTC         string     `json:"ctc"`
	Location    string     `json:"location"`
	CompanyName string     `json:"companyName"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type CollegeBindingInfo struct {
	InvitationID     string     `json:"invitationId"`
	InvitationStatus string     `json:"invitationStatus"`
	ManagedBy        string     `json:"managedBy"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty"`
}

// CollegeDriveResponse detail drive dari sisi college beserta pipeline-nya.
type CollegeDriveResponse struct {
	Drive                CollegeDriveInfo   `json:"drive"`
	Binding              CollegeBindingInfo `json:"binding"`
	PipelineScope        string             `json:"pipelineScope"`
	CurrentStage         string             `json:"currentStage,omitempty"`
	Stages               []StageSummary     `json:"stages"`
	LinkedStudents       int64              `json:"linkedStudents"`
	ApplicationsByStatus map[string]int64   `json:"applicationsByStatus"`
}
