package dto

import "time"

// LikeToggleResponse is returned by the like toggle endpoints
type LikeToggleResponse struct {
	Message    string `json:"message" example:"Liked"`
	TotalLikes int64  `json:"total_likes" example:"11"`
}

// CreateCommentRequest attaches a comment to a target entity
type CreateCommentRequest struct {
	TargetType string `json:"targetType" binding:"required,oneof=PHOTO REWARD DOCUMENT"`
	TargetID   int64  `json:"targetId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}

// UpdateCommentRequest edits an existing comment's text
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	UserBatch  string    `json:"userBatch,omitempty"`
	Content    string    `json:"content"`
	TargetType string    `json:"targetType"`
	TargetID   int64     `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CommentListResponse is a paginated, newest-first comment listing
type CommentListResponse struct {
	Comments       []CommentResponse `json:"comments"`
	PaginationInfo PaginationInfo    `json:"pagination"`
}

// CommentFilterRequest filters comments by target
type CommentFilterRequest struct {
	TargetType *string `form:"targetType"`
	TargetID   *int64  `form:"targetId"`
	Page       int     `form:"page,default=1"`
	PageSize   int     `form:"pageSize,default=10"`
}
