package dto

import "time"

// CreatePhotoRequest is bound from the multipart photo upload form
type CreatePhotoRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description"`
	CategoryID  int64  `form:"categoryId" binding:"required,min=1"`
	PhotoType   string `form:"photoType" binding:"omitempty,oneof=CELEBRATION GENERAL REWARD"`
}

// UpdatePhotoRequest updates photo metadata (not the image itself)
type UpdatePhotoRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId" binding:"required,min=1"`
	PhotoType   string `json:"photoType" binding:"omitempty,oneof=CELEBRATION GENERAL REWARD"`
}

// PhotoResponse represents a photo in API responses
type PhotoResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	CategoryID     int64     `json:"categoryId"`
	CategoryName   string    `json:"categoryName,omitempty"`
	PhotoType      string    `json:"photoType"`
	UploadedBy     int64     `json:"uploadedBy"`
	UploadedByName string    `json:"uploadedByName,omitempty"`
	IsFeatured     bool      `json:"isFeatured"`
	IsApproved     bool      `json:"isApproved"`
	TotalLikes     int64     `json:"totalLikes"`
	UserHasLiked   bool      `json:"userHasLiked"`
	CommentsCount  int64     `json:"commentsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PhotoListResponse is a paginated photo listing
type PhotoListResponse struct {
	Photos         []PhotoResponse `json:"photos"`
	PaginationInfo PaginationInfo  `json:"pagination"`
}

// PhotoFilterRequest filters the photo listing
type PhotoFilterRequest struct {
	CategoryID *int64  `form:"categoryId"`
	PhotoType  *string `form:"photoType"`
	Batch      *string `form:"batch"`
	IsFeatured *bool   `form:"isFeatured"`
	IsApproved *bool   `form:"isApproved"`
	UploadedBy *int64  `form:"uploadedBy"`
	Page       int     `form:"page,default=1"`
	PageSize   int     `form:"pageSize,default=10"`
}

// FeaturedPhotoResponse represents an active promotion window
type FeaturedPhotoResponse struct {
	ID            int64          `json:"id"`
	PhotoID       int64          `json:"photoId"`
	FeaturedFrom  time.Time      `json:"featuredFrom"`
	FeaturedUntil *time.Time     `json:"featuredUntil,omitempty"`
	IsActive      bool           `json:"isActive"`
	Photo         *PhotoResponse `json:"photo,omitempty"`
}
