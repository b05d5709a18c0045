package services

import (
	"context"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// ExistenceChecker answers whether an entity with a given ID exists
type ExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TargetRegistry resolves a target kind to the store that can verify it.
// Likes and comments go through here so a reaction can never point at a
// missing or unknown entity.
type TargetRegistry struct {
	checkers map[models.TargetKind]ExistenceChecker
}

// NewTargetRegistry creates a registry covering the three likeable kinds
func NewTargetRegistry(photos, rewards, documents ExistenceChecker) *TargetRegistry {
	return &TargetRegistry{
		checkers: map[models.TargetKind]ExistenceChecker{
			models.TargetPhoto:    photos,
			models.TargetReward:   rewards,
			models.TargetDocument: documents,
		},
	}
}

// Validate confirms the target kind is known and the entity exists
func (r *TargetRegistry) Validate(ctx context.Context, target models.Target) error {
	checker, ok := r.checkers[target.Kind]
	if !ok {
		return apperrors.ErrInvalidTarget
	}
	exists, err := checker.Exists(ctx, target.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
