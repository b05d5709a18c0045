package models

import "time"

// TargetKind discriminates which entity table a like or comment points at.
type TargetKind string

const (
	TargetPhoto    TargetKind = "PHOTO"
	TargetReward   TargetKind = "REWARD"
	TargetDocument TargetKind = "DOCUMENT"
)

// ValidTargetKind reports whether k names a likeable/commentable entity.
func ValidTargetKind(k TargetKind) bool {
	switch k {
	case TargetPhoto, TargetReward, TargetDocument:
		return true
	}
	return false
}

// Target identifies the entity a reaction applies to.
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

// Like defines the like model based on the 'likes' table.
// (user_id, target_type, target_id) is unique: at most one like
// per user per target, enforced by the database.
type Like struct {
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	TargetType TargetKind `json:"targetType" db:"target_type"`
	TargetID   int64      `json:"targetId" db:"target_id"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// Comment defines the comment model based on the 'comments' table
type Comment struct {
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	Content    string     `json:"content" db:"content"`
	TargetType TargetKind `json:"targetType" db:"target_type"`
	TargetID   int64      `json:"targetId" db:"target_id"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}
