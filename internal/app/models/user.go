package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64      `json:"id" db:"id" example:"1"`
	Email            string     `json:"email" db:"email" example:"student@campus.edu"`
	Password         string     `json:"-" db:"password"` // Hashed password, excluded from JSON
	FirstName        string     `json:"firstName" db:"first_name" example:"Hana"`
	LastName         string     `json:"lastName" db:"last_name" example:"Tesfaye"`
	Department       string     `json:"department" db:"department" example:"Software Engineering"`
	Campus           string     `json:"campus" db:"campus" example:"Main Campus"`
	Batch            string     `json:"batch" db:"batch" example:"GC 2026"`
	RoleType         RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`
	IsVerified       bool       `json:"isVerified" db:"is_verified"`
	IsRepresentative bool       `json:"isRepresentative" db:"is_representative"`
	ProfileViews     int64      `json:"profileViews" db:"profile_views"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsStaff reports whether the user holds the admin role.
func (u *User) IsStaff() bool {
	return u.RoleType == RoleAdmin
}

// UserProfile defines the optional profile attached to a user,
// based on the 'user_profiles' table.
type UserProfile struct {
	ID              int64             `json:"id" db:"id"`
	UserID          int64             `json:"userId" db:"user_id"`
	Bio             string            `json:"bio" db:"bio"`
	ProfilePhotoURL *string           `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"`
	PhoneNumber     string            `json:"phoneNumber" db:"phone_number"`
	SocialLinks     map[string]string `json:"socialLinks" db:"social_links"` // Stored as JSONB

	User *User `json:"user,omitempty"` // Relation, no db tag
}
