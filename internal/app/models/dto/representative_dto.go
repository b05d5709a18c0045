package dto

import "time"

// CreateRepresentativeRequest opens a new representative application
type CreateRepresentativeRequest struct {
	RequestMessage string `json:"requestMessage" binding:"required"`
}

// ReviewRepresentativeRequest carries the reviewer's optional notes
type ReviewRepresentativeRequest struct {
	AdminNotes string `json:"adminNotes"`
}

// RepresentativeRequestResponse represents an application in API responses
type RepresentativeRequestResponse struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	UserName       string     `json:"userName,omitempty"`
	UserBatch      string     `json:"userBatch,omitempty"`
	UserDepartment string     `json:"userDepartment,omitempty"`
	RequestMessage string     `json:"requestMessage"`
	Status         string     `json:"status" enums:"PENDING,APPROVED,REJECTED"`
	ReviewedBy     *int64     `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty"`
	AdminNotes     string     `json:"adminNotes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// RepresentativeRequestListResponse is a paginated application listing
type RepresentativeRequestListResponse struct {
	Requests       []RepresentativeRequestResponse `json:"requests"`
	PaginationInfo PaginationInfo                  `json:"pagination"`
}
