package college

import "time"

type CollegeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Website      string    `json:"website"`
	ContactPhone string    `json:"contact_phone"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateCollegeRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,min=2,max=255"`
	City         *string `json:"city" binding:"omitempty,max=120"`
	State        *string `json:"state" binding:"omitempty,max=120"`
	Website      *string `json:"website" binding:"omitempty,max=255"`
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
