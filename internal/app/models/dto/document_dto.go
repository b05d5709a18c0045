package dto

import "time"

// CreateDocumentRequest is bound from the multipart document upload form
type CreateDocumentRequest struct {
	Title        string `form:"title" binding:"required,max=200"`
	Description  string `form:"description"`
	DocumentType string `form:"documentType" binding:"required,oneof=EXAM RESEARCH PROJECT BOOK"`
}

// UpdateDocumentRequest updates document metadata (not the file itself)
type UpdateDocumentRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	DocumentType string `json:"documentType" binding:"required,oneof=EXAM RESEARCH PROJECT BOOK"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DocumentType   string    `json:"documentType"`
	FileURL        string    `json:"fileUrl"`
	UploadedBy     int64     `json:"uploadedBy"`
	UploadedByName string    `json:"uploadedByName,omitempty"`
	IsApproved     bool      `json:"isApproved"`
	TotalLikes     int64     `json:"totalLikes"`
	UserHasLiked   bool      `json:"userHasLiked"`
	CommentsCount  int64     `json:"commentsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DocumentListResponse is a paginated document listing
type DocumentListResponse struct {
	Documents      []DocumentResponse `json:"documents"`
	PaginationInfo PaginationInfo     `json:"pagination"`
}

// DocumentFilterRequest filters the document listing
type DocumentFilterRequest struct {
	DocumentType *string `form:"documentType"`
	IsApproved   *bool   `form:"isApproved"`
	UploadedBy   *int64  `form:"uploadedBy"`
	Page         int     `form:"page,default=1"`
	PageSize     int     `form:"pageSize,default=10"`
}
