package company

import "time"

type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	Industry     string    `json:"industry"`
	Website      string    `json:"website"`
	Description  string    `json:"description"`
	ContactPhone string    `json:"contact_phone"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateCompanyRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,min=2,max=255"`
	Industry     *string `json:"industry" binding:"omitempty,max=120"`
	Website      *string `json:"website" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
}

type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type ListFilter struct {
	Approved *bool
	Query    string
	Page     int
	PageSize int
}
