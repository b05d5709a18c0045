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

var profilePhotoExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// UserService handles user profiles and directory listings
type UserService struct {
	users   *repositories.UserRepository
	storage filestorage.FileStorage
}

// NewUserService creates a new UserService
func NewUserService(users *repositories.UserRepository, storage filestorage.FileStorage) *UserService {
	return &UserService{users: users, storage: storage}
}

// GetProfile returns a user together with their optional profile record
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, *models.UserProfile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// ViewProfile returns another user's profile, counting the visit. Own views
// are not counted.
func (s *UserService) ViewProfile(ctx context.Context, viewerID, userID int64) (*models.User, *models.UserProfile, error) {
	if viewerID != userID {
		if err := s.users.IncrementProfileViews(ctx, userID); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to count profile view")
		}
	}
	return s.GetProfile(ctx, userID)
}

// UpdateProfile writes the user's editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, *models.UserProfile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	existing, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile := &models.UserProfile{UserID: userID}
	if existing != nil {
		*profile = *existing
	}
	profile.Bio = req.Bio
	profile.PhoneNumber = req.PhoneNumber
	if req.SocialLinks != nil {
		profile.SocialLinks = req.SocialLinks
	}

	if err := s.users.UpsertProfile(ctx, profile); err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// UpdateProfilePhoto stores a new profile photo and records its URL
func (s *UserService) UpdateProfilePhoto(ctx context.Context, userID int64, file *multipart.FileHeader) (string, error) {
	if err := filestorage.ValidateExtension(file, profilePhotoExtensions); err != nil {
		return "", err
	}

	url, err := s.storage.SaveFileWithPath(file, "profiles")
	if err != nil {
		return "", err
	}

	existing, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	profile := &models.UserProfile{UserID: userID}
	if existing != nil {
		*profile = *existing
		if existing.ProfilePhotoURL != nil {
			if delErr := s.storage.DeleteFileByURL(*existing.ProfilePhotoURL); delErr != nil {
				logger.Warn().Err(delErr).Msg("Failed to remove previous profile photo")
			}
		}
	}
	profile.ProfilePhotoURL = &url

	if err := s.users.UpsertProfile(ctx, profile); err != nil {
		return "", err
	}
	return url, nil
}

// ListUsers returns the member directory with optional filters
func (s *UserService) ListUsers(ctx context.Context, filter *dto.UserFilterRequest, page, pageSize int) ([]models.User, int64, error) {
	return s.users.GetAll(ctx, filter.Batch, filter.Department, filter.RoleType, page, pageSize)
}
