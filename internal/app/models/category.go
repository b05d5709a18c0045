package models

import "time"

// Category groups photos, optionally scoped to a single batch
type Category struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	BatchSpecific bool      `json:"batchSpecific" db:"batch_specific"`
	Batch         *string   `json:"batch,omitempty" db:"batch"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Creator *User `json:"creator,omitempty"` // Relation, no db tag
}
