package models

import "time"

// Document defines the document model based on the 'documents' table
type Document struct {
	ID           int64        `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	Description  string       `json:"description" db:"description"`
	DocumentType DocumentType `json:"documentType" db:"document_type"`
	FileURL      string       `json:"fileUrl" db:"file_url"`
	UploadedBy   int64        `json:"uploadedBy" db:"uploaded_by"`
	IsApproved   bool         `json:"isApproved" db:"is_approved"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`

	Uploader *User `json:"uploader,omitempty"` // Relation, no db tag
}
