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

var photoExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// PhotoService handles photo uploads and listings
type PhotoService struct {
	photos     *repositories.PhotoRepository
	categories *repositories.CategoryRepository
	reactions  *repositories.ReactionRepository
	storage    filestorage.FileStorage
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(photos *repositories.PhotoRepository, categories *repositories.CategoryRepository, reactions *repositories.ReactionRepository, storage filestorage.FileStorage) *PhotoService {
	return &PhotoService{photos: photos, categories: categories, reactions: reactions, storage: storage}
}

// Upload stores the image file and creates the photo record. Uploads by
// staff accounts are approved immediately; student uploads await review.
func (s *PhotoService) Upload(ctx context.Context, uploader *models.User, req *dto.CreatePhotoRequest, file *multipart.FileHeader) (*models.Photo, error) {
	if err := filestorage.ValidateExtension(file, photoExtensions); err != nil {
		return nil, err
	}

	exists, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCategoryNotFound
	}

	photoType := req.PhotoType
	if photoType == "" {
		photoType = string(models.PhotoTypeGeneral)
	}
	if !models.ValidPhotoType(models.PhotoType(photoType)) {
		return nil, apperrors.NewValidationError("photoType", "Unknown photo type")
	}

	url, err := s.storage.SaveFileWithPath(file, "photos")
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    url,
		CategoryID:  req.CategoryID,
		PhotoType:   models.PhotoType(photoType),
		UploadedBy:  uploader.ID,
		IsApproved:  uploader.IsStaff(),
	}

	id, err := s.photos.Create(ctx, photo)
	if err != nil {
		if delErr := s.storage.DeleteFileByURL(url); delErr != nil {
			logger.Warn().Err(delErr).Str("url", url).Msg("Failed to clean up orphaned photo file")
		}
		return nil, err
	}
	photo.ID = id
	return photo, nil
}

// GetByID returns a single photo
func (s *PhotoService) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	return s.photos.GetByID(ctx, id)
}

// List returns photos matching the filter. Anonymous viewers see approved
// photos only, authenticated viewers additionally see their own pending
// uploads and staff see everything.
func (s *PhotoService) List(ctx context.Context, viewer *models.User, filter *dto.PhotoFilterRequest, page, pageSize int) ([]models.Photo, int64, error) {
	repoFilter := repositories.PhotoFilter{
		CategoryID: filter.CategoryID,
		PhotoType:  filter.PhotoType,
		UploadedBy: filter.UploadedBy,
		Featured:   filter.IsFeatured,
		Approved:   filter.IsApproved,
	}
	switch {
	case viewer == nil:
		approved := true
		repoFilter.Approved = &approved
	case !viewer.IsStaff():
		repoFilter.VisibleTo = &viewer.ID
	}
	return s.photos.GetAll(ctx, repoFilter, page, pageSize)
}

// Update modifies photo metadata
func (s *PhotoService) Update(ctx context.Context, id int64, req *dto.UpdatePhotoRequest) (*models.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCategoryNotFound
	}

	photo.Title = req.Title
	photo.Description = req.Description
	photo.CategoryID = req.CategoryID
	if req.PhotoType != "" {
		if !models.ValidPhotoType(models.PhotoType(req.PhotoType)) {
			return nil, apperrors.NewValidationError("photoType", "Unknown photo type")
		}
		photo.PhotoType = models.PhotoType(req.PhotoType)
	}

	if err := s.photos.Update(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// Approve marks a photo as moderated
func (s *PhotoService) Approve(ctx context.Context, id int64) error {
	return s.photos.SetApproved(ctx, id, true)
}

// Delete removes a photo, its stored file and its reactions
func (s *PhotoService) Delete(ctx context.Context, id int64) error {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		return err
	}

	target := models.Target{Kind: models.TargetPhoto, ID: id}
	if err := s.reactions.DeleteReactionsForTarget(ctx, target); err != nil {
		logger.Warn().Err(err).Int64("photoID", id).Msg("Failed to clean up photo reactions")
	}
	if err := s.storage.DeleteFileByURL(photo.ImageURL); err != nil {
		logger.Warn().Err(err).Str("url", photo.ImageURL).Msg("Failed to remove photo file")
	}
	return nil
}

// OwnerID returns the uploader of a photo, for ownership checks
func (s *PhotoService) OwnerID(ctx context.Context, id int64) (int64, error) {
	return s.photos.OwnerID(ctx, id)
}
