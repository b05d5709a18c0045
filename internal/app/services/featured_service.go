package services

import (
	"context"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/logger"
)

// FeaturedPhotoStore is the storage slice behind the promotion lifecycle
type FeaturedPhotoStore interface {
	Promote(ctx context.Context, photoID int64, threshold int) (bool, error)
	EligiblePhotoIDs(ctx context.Context, threshold int) ([]int64, error)
	DemoteStale(ctx context.Context, window time.Duration) ([]int64, error)
	Retire(ctx context.Context, entryID int64) error
	ListActive(ctx context.Context, limit int) ([]models.Photo, []models.FeaturedPhoto, error)
}

// FeaturedService promotes well-liked photos to the featured section and
// retires them after their window expires
type FeaturedService struct {
	store     FeaturedPhotoStore
	threshold int
	window    time.Duration
}

// NewFeaturedService creates a new FeaturedService
func NewFeaturedService(store FeaturedPhotoStore, likeThreshold, windowDays int) *FeaturedService {
	return &FeaturedService{
		store:     store,
		threshold: likeThreshold,
		window:    time.Duration(windowDays) * 24 * time.Hour,
	}
}

// MaybePromote features the photo if it qualifies. Called after every new
// like on a photo; the store re-checks eligibility so stale calls are no-ops.
func (s *FeaturedService) MaybePromote(ctx context.Context, photoID int64) {
	promoted, err := s.store.Promote(ctx, photoID, s.threshold)
	if err != nil {
		logger.Error().Err(err).Int64("photoID", photoID).Msg("Promotion check failed")
		return
	}
	if promoted {
		logger.Info().Int64("photoID", photoID).Msg("Photo promoted to featured")
	}
}

// Sweep runs one maintenance pass: it features photos that crossed the like
// threshold without triggering the event path, then retires entries older
// than the featured window. Safe to run repeatedly.
func (s *FeaturedService) Sweep(ctx context.Context) error {
	ids, err := s.store.EligiblePhotoIDs(ctx, s.threshold)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.store.Promote(ctx, id, s.threshold); err != nil {
			logger.Error().Err(err).Int64("photoID", id).Msg("Sweep promotion failed")
		}
	}

	demoted, err := s.store.DemoteStale(ctx, s.window)
	if err != nil {
		return err
	}
	if len(demoted) > 0 {
		logger.Info().Int("count", len(demoted)).Msg("Featured photos retired")
	}
	return nil
}

// Retire ends a featured entry's run early
func (s *FeaturedService) Retire(ctx context.Context, entryID int64) error {
	return s.store.Retire(ctx, entryID)
}

// ListFeatured returns the currently featured photos with their windows
func (s *FeaturedService) ListFeatured(ctx context.Context, limit int) ([]models.Photo, []models.FeaturedPhoto, error) {
	return s.store.ListActive(ctx, limit)
}
