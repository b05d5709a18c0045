package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent        RoleType = "STUDENT"
	RoleRepresentative RoleType = "REPRESENTATIVE"
	RoleAdmin          RoleType = "ADMIN"
)

// PhotoType categorizes uploaded photos
type PhotoType string

const (
	PhotoTypeCelebration PhotoType = "CELEBRATION"
	PhotoTypeGeneral     PhotoType = "GENERAL"
	PhotoTypeReward      PhotoType = "REWARD"
)

// DocumentType categorizes uploaded documents
type DocumentType string

const (
	DocumentTypeExam     DocumentType = "EXAM"
	DocumentTypeResearch DocumentType = "RESEARCH"
	DocumentTypeProject  DocumentType = "PROJECT"
	DocumentTypeBook     DocumentType = "BOOK"
)

// ValidDocumentType reports whether t is one of the known document types.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypeExam, DocumentTypeResearch, DocumentTypeProject, DocumentTypeBook:
		return true
	}
	return false
}

// ValidPhotoType reports whether t is one of the known photo types.
func ValidPhotoType(t PhotoType) bool {
	switch t {
	case PhotoTypeCelebration, PhotoTypeGeneral, PhotoTypeReward:
		return true
	}
	return false
}
