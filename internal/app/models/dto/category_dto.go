package dto

import "time"

// CreateCategoryRequest creates a new photo category
type CreateCategoryRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description"`
	BatchSpecific bool    `json:"batchSpecific"`
	Batch         *string `json:"batch"`
}

// UpdateCategoryRequest updates an existing category
type UpdateCategoryRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description"`
	BatchSpecific bool    `json:"batchSpecific"`
	Batch         *string `json:"batch"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	BatchSpecific bool      `json:"batchSpecific"`
	Batch         *string   `json:"batch,omitempty"`
	CreatedBy     int64     `json:"createdBy"`
	CreatedByName string    `json:"createdByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CategoryListResponse is a paginated category listing
type CategoryListResponse struct {
	Categories     []CategoryResponse `json:"categories"`
	PaginationInfo PaginationInfo     `json:"pagination"`
}

// CategoryFilterRequest filters the category listing
type CategoryFilterRequest struct {
	BatchSpecific *bool   `form:"batchSpecific"`
	Batch         *string `form:"batch"`
	Search        *string `form:"search"`
	Page          int     `form:"page,default=1"`
	PageSize      int     `form:"pageSize,default=10"`
}
