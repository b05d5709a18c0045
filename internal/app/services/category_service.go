package services

import (
	"context"
	"strings"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// CategoryService handles photo category management
type CategoryService struct {
	categories *repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create adds a new category owned by the calling staff member
func (s *CategoryService) Create(ctx context.Context, creatorID int64, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.BatchSpecific && (req.Batch == nil || strings.TrimSpace(*req.Batch) == "") {
		return nil, apperrors.NewValidationError("batch", "Batch is required for batch-specific categories")
	}

	category := &models.Category{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		BatchSpecific: req.BatchSpecific,
		Batch:         req.Batch,
		CreatedBy:     creatorID,
	}
	if !category.BatchSpecific {
		category.Batch = nil
	}

	id, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return category, nil
}

// GetByID returns a single category
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// List returns categories matching the filter
func (s *CategoryService) List(ctx context.Context, filter *dto.CategoryFilterRequest, page, pageSize int) ([]models.Category, int64, error) {
	return s.categories.GetAll(ctx, repositories.CategoryFilter{
		BatchSpecific: filter.BatchSpecific,
		Batch:         filter.Batch,
		Search:        filter.Search,
	}, page, pageSize)
}

// Update modifies an existing category
func (s *CategoryService) Update(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BatchSpecific && (req.Batch == nil || strings.TrimSpace(*req.Batch) == "") {
		return nil, apperrors.NewValidationError("batch", "Batch is required for batch-specific categories")
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description
	category.BatchSpecific = req.BatchSpecific
	category.Batch = req.Batch
	if !category.BatchSpecific {
		category.Batch = nil
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Categories still referenced by photos cannot
// be removed.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

// OwnerID returns the creator of a category, for ownership checks
func (s *CategoryService) OwnerID(ctx context.Context, id int64) (int64, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return category.CreatedBy, nil
}
