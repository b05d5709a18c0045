package services

import (
	"context"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
)

// RepresentativeStore is the storage slice behind the role request workflow
type RepresentativeStore interface {
	Create(ctx context.Context, req *models.RepresentativeRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.RepresentativeRequest, error)
	GetAll(ctx context.Context, userID *int64, status *string, page, pageSize int) ([]models.RepresentativeRequest, int64, error)
	Approve(ctx context.Context, requestID, reviewerID int64, notes string) error
	Reject(ctx context.Context, requestID, reviewerID int64, notes string) error
}

// RepresentativeService handles the batch representative application workflow
type RepresentativeService struct {
	store RepresentativeStore
}

// NewRepresentativeService creates a new RepresentativeService
func NewRepresentativeService(store RepresentativeStore) *RepresentativeService {
	return &RepresentativeService{store: store}
}

// Submit opens a new application. A user with an open application cannot
// submit another; the store enforces that.
func (s *RepresentativeService) Submit(ctx context.Context, userID int64, req *dto.CreateRepresentativeRequest) (*models.RepresentativeRequest, error) {
	request := &models.RepresentativeRequest{
		UserID:         userID,
		RequestMessage: req.RequestMessage,
		Status:         models.RequestPending,
	}
	id, err := s.store.Create(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = id
	return request, nil
}

// GetByID returns a single application
func (s *RepresentativeService) GetByID(ctx context.Context, id int64) (*models.RepresentativeRequest, error) {
	return s.store.GetByID(ctx, id)
}

// List returns applications, optionally filtered by applicant and status
func (s *RepresentativeService) List(ctx context.Context, userID *int64, status *string, page, pageSize int) ([]models.RepresentativeRequest, int64, error) {
	return s.store.GetAll(ctx, userID, status, page, pageSize)
}

// Approve closes a pending application and grants the role. The request
// update and the role change either both happen or neither does.
func (s *RepresentativeService) Approve(ctx context.Context, requestID, reviewerID int64, notes string) (*models.RepresentativeRequest, error) {
	if err := s.store.Approve(ctx, requestID, reviewerID, notes); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, requestID)
}

// Reject closes a pending application without a role change
func (s *RepresentativeService) Reject(ctx context.Context, requestID, reviewerID int64, notes string) (*models.RepresentativeRequest, error) {
	if err := s.store.Reject(ctx, requestID, reviewerID, notes); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, requestID)
}
