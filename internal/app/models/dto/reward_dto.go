package dto

import "time"

// CreateRewardRequest is bound from the multipart reward form;
// the image is optional.
type CreateRewardRequest struct {
	StudentName       string `form:"studentName" binding:"required,max=200"`
	StudentDepartment string `form:"studentDepartment" binding:"required,max=100"`
	StudentBatch      string `form:"studentBatch" binding:"required,max=10"`
	Achievement       string `form:"achievement" binding:"required"`
}

// UpdateRewardRequest updates reward text fields
type UpdateRewardRequest struct {
	StudentName       string `json:"studentName" binding:"required,max=200"`
	StudentDepartment string `json:"studentDepartment" binding:"required,max=100"`
	StudentBatch      string `json:"studentBatch" binding:"required,max=10"`
	Achievement       string `json:"achievement" binding:"required"`
}

// RewardResponse represents a reward in API responses
type RewardResponse struct {
	ID                int64     `json:"id"`
	StudentName       string    `json:"studentName"`
	StudentDepartment string    `json:"studentDepartment"`
	StudentBatch      string    `json:"studentBatch"`
	Achievement       string    `json:"achievement"`
	ImageURL          *string   `json:"imageUrl,omitempty"`
	AwardedBy         int64     `json:"awardedBy"`
	AwardedByName     string    `json:"awardedByName,omitempty"`
	TotalLikes        int64     `json:"totalLikes"`
	UserHasLiked      bool      `json:"userHasLiked"`
	CommentsCount     int64     `json:"commentsCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

// RewardListResponse is a paginated reward listing
type RewardListResponse struct {
	Rewards        []RewardResponse `json:"rewards"`
	PaginationInfo PaginationInfo   `json:"pagination"`
}

// RewardFilterRequest filters the reward listing
type RewardFilterRequest struct {
	StudentBatch      *string `form:"studentBatch"`
	StudentDepartment *string `form:"studentDepartment"`
	Page              int     `form:"page,default=1"`
	PageSize          int     `form:"pageSize,default=10"`
}
