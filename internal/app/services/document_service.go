package services

import (
	"context"
	"mime/multipart"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/logger"
)

var documentExtensions = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx"}

// DocumentStore is the document persistence surface the service needs.
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	GetAll(ctx context.Context, filter repositories.DocumentFilter, page, pageSize int) ([]models.Document, int64, error)
	Update(ctx context.Context, doc *models.Document) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
	OwnerID(ctx context.Context, id int64) (int64, error)
}

// DocumentService handles shared study material uploads
type DocumentService struct {
	documents DocumentStore
	reactions ReactionCleaner
	storage   filestorage.FileStorage
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documents DocumentStore, reactions ReactionCleaner, storage filestorage.FileStorage) *DocumentService {
	return &DocumentService{documents: documents, reactions: reactions, storage: storage}
}

// Upload stores the file and creates the document record. Documents are
// published immediately; admins can still moderate them afterwards.
func (s *DocumentService) Upload(ctx context.Context, uploader *models.User, req *dto.CreateDocumentRequest, file *multipart.FileHeader) (*models.Document, error) {
	if err := filestorage.ValidateExtension(file, documentExtensions); err != nil {
		return nil, err
	}
	if !models.ValidDocumentType(models.DocumentType(req.DocumentType)) {
		return nil, apperrors.NewValidationError("documentType", "Unknown document type")
	}

	url, err := s.storage.SaveFileWithPath(file, "documents")
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: models.DocumentType(req.DocumentType),
		FileURL:      url,
		UploadedBy:   uploader.ID,
		IsApproved:   true,
	}

	id, err := s.documents.Create(ctx, doc)
	if err != nil {
		if delErr := s.storage.DeleteFileByURL(url); delErr != nil {
			logger.Warn().Err(delErr).Str("url", url).Msg("Failed to clean up orphaned document file")
		}
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

// GetByID returns a single document
func (s *DocumentService) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	return s.documents.GetByID(ctx, id)
}

// List returns documents matching the filter. Anonymous viewers see
// approved documents only, authenticated viewers additionally see their
// own pending uploads and staff see everything.
func (s *DocumentService) List(ctx context.Context, viewer *models.User, filter *dto.DocumentFilterRequest, page, pageSize int) ([]models.Document, int64, error) {
	repoFilter := repositories.DocumentFilter{
		DocumentType: filter.DocumentType,
		UploadedBy:   filter.UploadedBy,
		Approved:     filter.IsApproved,
	}
	switch {
	case viewer == nil:
		approved := true
		repoFilter.Approved = &approved
	case !viewer.IsStaff():
		repoFilter.VisibleTo = &viewer.ID
	}
	return s.documents.GetAll(ctx, repoFilter, page, pageSize)
}

// Update modifies document metadata
func (s *DocumentService) Update(ctx context.Context, id int64, req *dto.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.ValidDocumentType(models.DocumentType(req.DocumentType)) {
		return nil, apperrors.NewValidationError("documentType", "Unknown document type")
	}

	doc.Title = req.Title
	doc.Description = req.Description
	doc.DocumentType = models.DocumentType(req.DocumentType)

	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Approve marks a document as moderated
func (s *DocumentService) Approve(ctx context.Context, id int64) error {
	return s.documents.SetApproved(ctx, id, true)
}

// Delete removes a document, its likes and comments, and its stored file
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	target := models.Target{Kind: models.TargetDocument, ID: id}
	if cleanErr := s.reactions.DeleteReactionsForTarget(ctx, target); cleanErr != nil {
		logger.Warn().Err(cleanErr).Int64("documentID", id).Msg("Failed to clean up document reactions")
	}
	if delErr := s.storage.DeleteFileByURL(doc.FileURL); delErr != nil {
		logger.Warn().Err(delErr).Str("url", doc.FileURL).Msg("Failed to remove document file")
	}
	return nil
}

// OwnerID returns the uploader of a document, for ownership checks
func (s *DocumentService) OwnerID(ctx context.Context, id int64) (int64, error) {
	return s.documents.OwnerID(ctx, id)
}
