package models

import "time"

// Photo defines the photo model based on the 'photos' table
type Photo struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	CategoryID  int64     `json:"categoryId" db:"category_id"`
	PhotoType   PhotoType `json:"photoType" db:"photo_type"`
	UploadedBy  int64     `json:"uploadedBy" db:"uploaded_by"`
	IsFeatured  bool      `json:"isFeatured" db:"is_featured"`
	IsApproved  bool      `json:"isApproved" db:"is_approved"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Category *Category `json:"category,omitempty"`
	Uploader *User     `json:"uploader,omitempty"`
}

// FeaturedPhoto records the promotion window for a featured photo.
// A photo is featured exactly when its single featured_photos row is active.
type FeaturedPhoto struct {
	ID            int64      `json:"id" db:"id"`
	PhotoID       int64      `json:"photoId" db:"photo_id"`
	FeaturedFrom  time.Time  `json:"featuredFrom" db:"featured_from"`
	FeaturedUntil *time.Time `json:"featuredUntil,omitempty" db:"featured_until"`
	IsActive      bool       `json:"isActive" db:"is_active"`

	Photo *Photo `json:"photo,omitempty"` // Relation, no db tag
}
