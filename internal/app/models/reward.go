package models

import "time"

// Reward is an achievement post published on behalf of a student
type Reward struct {
	ID                int64     `json:"id" db:"id"`
	StudentName       string    `json:"studentName" db:"student_name"`
	StudentDepartment string    `json:"studentDepartment" db:"student_department"`
	StudentBatch      string    `json:"studentBatch" db:"student_batch"`
	Achievement       string    `json:"achievement" db:"achievement"`
	ImageURL          *string   `json:"imageUrl,omitempty" db:"image_url"`
	AwardedBy         int64     `json:"awardedBy" db:"awarded_by"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	Awarder *User `json:"awarder,omitempty"` // Relation, no db tag
}
