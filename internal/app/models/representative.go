package models

import "time"

// RequestStatus tracks the review state of a representative request
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// RepresentativeRequest is a student's application for the representative
// role. Transitions are PENDING -> APPROVED or PENDING -> REJECTED, once.
type RepresentativeRequest struct {
	ID             int64         `json:"id" db:"id"`
	UserID         int64         `json:"userId" db:"user_id"`
	RequestMessage string        `json:"requestMessage" db:"request_message"`
	Status         RequestStatus `json:"status" db:"status"`
	ReviewedBy     *int64        `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt     *time.Time    `json:"reviewedAt,omitempty" db:"reviewed_at"`
	AdminNotes     string        `json:"adminNotes" db:"admin_notes"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`

	Requester *User `json:"requester,omitempty"` // Relation, no db tag
}
