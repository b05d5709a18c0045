package dto

import "time"

// UserResponse represents basic user information
type UserResponse struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Department       string     `json:"department"`
	Campus           string     `json:"campus"`
	Batch            string     `json:"batch"`
	RoleType         string     `json:"roleType" example:"STUDENT" enums:"STUDENT,REPRESENTATIVE,ADMIN"`
	IsVerified       bool       `json:"isVerified"`
	IsRepresentative bool       `json:"isRepresentative"`
	CreatedAt        time.Time  `json:"createdAt"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
}

// ProfileResponse is the authenticated user's own view, including
// the optional profile record.
type ProfileResponse struct {
	UserResponse
	ProfileViews    int64             `json:"profileViews"`
	Bio             string            `json:"bio,omitempty"`
	ProfilePhotoURL *string           `json:"profilePhotoUrl,omitempty"`
	PhoneNumber     string            `json:"phoneNumber,omitempty"`
	SocialLinks     map[string]string `json:"socialLinks,omitempty"`
}

// UpdateProfileRequest updates the mutable parts of a user profile
type UpdateProfileRequest struct {
	Bio         string            `json:"bio" binding:"max=1000"`
	PhoneNumber string            `json:"phoneNumber" binding:"max=15"`
	SocialLinks map[string]string `json:"socialLinks"`
}

// UserListResponse is the admin view of all accounts
type UserListResponse struct {
	Users          []UserResponse `json:"users"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// UserFilterRequest filters the admin user listing
type UserFilterRequest struct {
	Batch      *string `form:"batch"`
	Department *string `form:"department"`
	RoleType   *string `form:"roleType"`
	Page       int     `form:"page,default=1"`
	PageSize   int     `form:"pageSize,default=10"`
}
