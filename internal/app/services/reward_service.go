package services

import (
	"context"
	"mime/multipart"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/logger"
)

// RewardStore is the reward persistence surface the service needs.
type RewardStore interface {
	Create(ctx context.Context, reward *models.Reward) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Reward, error)
	GetAll(ctx context.Context, filter repositories.RewardFilter, page, pageSize int) ([]models.Reward, int64, error)
	Update(ctx context.Context, reward *models.Reward) error
	Delete(ctx context.Context, id int64) error
	OwnerID(ctx context.Context, id int64) (int64, error)
}

// RewardService handles student achievement records
type RewardService struct {
	rewards   RewardStore
	reactions ReactionCleaner
	storage   filestorage.FileStorage
}

// NewRewardService creates a new RewardService
func NewRewardService(rewards RewardStore, reactions ReactionCleaner, storage filestorage.FileStorage) *RewardService {
	return &RewardService{rewards: rewards, reactions: reactions, storage: storage}
}

// Create records a new achievement; the certificate image is optional
func (s *RewardService) Create(ctx context.Context, awarderID int64, req *dto.CreateRewardRequest, file *multipart.FileHeader) (*models.Reward, error) {
	reward := &models.Reward{
		StudentName:       req.StudentName,
		StudentDepartment: req.StudentDepartment,
		StudentBatch:      req.StudentBatch,
		Achievement:       req.Achievement,
		AwardedBy:         awarderID,
	}

	if file != nil {
		if err := filestorage.ValidateExtension(file, photoExtensions); err != nil {
			return nil, err
		}
		url, err := s.storage.SaveFileWithPath(file, "rewards")
		if err != nil {
			return nil, err
		}
		reward.ImageURL = &url
	}

	id, err := s.rewards.Create(ctx, reward)
	if err != nil {
		if reward.ImageURL != nil {
			if delErr := s.storage.DeleteFileByURL(*reward.ImageURL); delErr != nil {
				logger.Warn().Err(delErr).Msg("Failed to clean up orphaned reward image")
			}
		}
		return nil, err
	}
	reward.ID = id
	return reward, nil
}

// GetByID returns a single reward
func (s *RewardService) GetByID(ctx context.Context, id int64) (*models.Reward, error) {
	return s.rewards.GetByID(ctx, id)
}

// List returns rewards matching the filter
func (s *RewardService) List(ctx context.Context, filter *dto.RewardFilterRequest, page, pageSize int) ([]models.Reward, int64, error) {
	return s.rewards.GetAll(ctx, repositories.RewardFilter{
		StudentBatch:      filter.StudentBatch,
		StudentDepartment: filter.StudentDepartment,
	}, page, pageSize)
}

// Update modifies a reward's text fields
func (s *RewardService) Update(ctx context.Context, id int64, req *dto.UpdateRewardRequest) (*models.Reward, error) {
	reward, err := s.rewards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reward.StudentName = req.StudentName
	reward.StudentDepartment = req.StudentDepartment
	reward.StudentBatch = req.StudentBatch
	reward.Achievement = req.Achievement

	if err := s.rewards.Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// Delete removes a reward, its likes and comments, and its image, if any
func (s *RewardService) Delete(ctx context.Context, id int64) error {
	reward, err := s.rewards.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rewards.Delete(ctx, id); err != nil {
		return err
	}
	target := models.Target{Kind: models.TargetReward, ID: id}
	if cleanErr := s.reactions.DeleteReactionsForTarget(ctx, target); cleanErr != nil {
		logger.Warn().Err(cleanErr).Int64("rewardID", id).Msg("Failed to clean up reward reactions")
	}
	if reward.ImageURL != nil {
		if delErr := s.storage.DeleteFileByURL(*reward.ImageURL); delErr != nil {
			logger.Warn().Err(delErr).Msg("Failed to remove reward image")
		}
	}
	return nil
}

// OwnerID returns the staff member who recorded a reward
func (s *RewardService) OwnerID(ctx context.Context, id int64) (int64, error) {
	return s.rewards.OwnerID(ctx, id)
}
