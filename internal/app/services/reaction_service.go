package services

import (
	"context"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// Toggle messages returned to the client
const (
	likeAddedMessage   = "Liked"
	likeRemovedMessage = "Like removed"
)

// ReactionStore is the slice of reaction storage the service needs
type ReactionStore interface {
	InsertLike(ctx context.Context, userID int64, target models.Target) (bool, error)
	DeleteLike(ctx context.Context, userID int64, target models.Target) (bool, error)
	CountLikes(ctx context.Context, target models.Target) (int64, error)
	HasLiked(ctx context.Context, userID int64, target models.Target) (bool, error)
	CreateComment(ctx context.Context, comment *models.Comment) (int64, error)
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
	ListComments(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error)
	CountComments(ctx context.Context, target models.Target) (int64, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
}

// ReactionCleaner removes the likes and comments attached to an entity,
// called when the entity itself is deleted.
type ReactionCleaner interface {
	DeleteReactionsForTarget(ctx context.Context, target models.Target) error
}

// TargetValidator confirms a reaction target refers to a real entity
type TargetValidator interface {
	Validate(ctx context.Context, target models.Target) error
}

// PhotoPromoter gets a chance to feature a photo after its like count changes
type PhotoPromoter interface {
	MaybePromote(ctx context.Context, photoID int64)
}

// ReactionService handles likes and comments on photos, rewards and documents
type ReactionService struct {
	store    ReactionStore
	targets  TargetValidator
	promoter PhotoPromoter
}

// NewReactionService creates a new ReactionService
func NewReactionService(store ReactionStore, targets TargetValidator, promoter PhotoPromoter) *ReactionService {
	return &ReactionService{store: store, targets: targets, promoter: promoter}
}

// ToggleLike adds the user's like, or removes it if it is already present.
// The insert relies on the unique index, so two concurrent toggles settle
// as one add and one remove rather than an error. Returns the outcome
// message and the fresh like count.
func (s *ReactionService) ToggleLike(ctx context.Context, userID int64, target models.Target) (*dto.LikeToggleResponse, error) {
	if err := s.targets.Validate(ctx, target); err != nil {
		return nil, err
	}

	inserted, err := s.store.InsertLike(ctx, userID, target)
	if err != nil {
		return nil, err
	}

	message := likeAddedMessage
	if !inserted {
		if _, err := s.store.DeleteLike(ctx, userID, target); err != nil {
			return nil, err
		}
		message = likeRemovedMessage
	}

	total, err := s.store.CountLikes(ctx, target)
	if err != nil {
		return nil, err
	}

	if inserted && target.Kind == models.TargetPhoto && s.promoter != nil {
		s.promoter.MaybePromote(ctx, target.ID)
	}

	return &dto.LikeToggleResponse{Message: message, TotalLikes: total}, nil
}

// Stats returns the like count, comment count and whether the user has
// liked the target. Used when rendering list and detail responses.
func (s *ReactionService) Stats(ctx context.Context, userID int64, target models.Target) (likes, comments int64, hasLiked bool, err error) {
	if likes, err = s.store.CountLikes(ctx, target); err != nil {
		return 0, 0, false, err
	}
	if comments, err = s.store.CountComments(ctx, target); err != nil {
		return 0, 0, false, err
	}
	if hasLiked, err = s.store.HasLiked(ctx, userID, target); err != nil {
		return 0, 0, false, err
	}
	return likes, comments, hasLiked, nil
}

// CountLikes returns the like count for a target
func (s *ReactionService) CountLikes(ctx context.Context, target models.Target) (int64, error) {
	return s.store.CountLikes(ctx, target)
}

// HasLiked reports whether the user currently likes a target
func (s *ReactionService) HasLiked(ctx context.Context, userID int64, target models.Target) (bool, error) {
	return s.store.HasLiked(ctx, userID, target)
}

// AddComment attaches a comment to a target
func (s *ReactionService) AddComment(ctx context.Context, userID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	target := models.Target{Kind: models.TargetKind(req.TargetType), ID: req.TargetID}
	if err := s.targets.Validate(ctx, target); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:     userID,
		TargetType: target.Kind,
		TargetID:   target.ID,
		Content:    req.Content,
	}
	if _, err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a target's comments, newest first
func (s *ReactionService) ListComments(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error) {
	if err := s.targets.Validate(ctx, target); err != nil {
		return nil, 0, err
	}
	return s.store.ListComments(ctx, target, page, pageSize)
}

// UpdateComment edits a comment's text. Only the author may edit.
func (s *ReactionService) UpdateComment(ctx context.Context, userID, commentID int64, content string) (*models.Comment, error) {
	comment, err := s.store.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.store.UpdateComment(ctx, commentID, content); err != nil {
		return nil, err
	}
	comment.Content = content
	return comment, nil
}

// DeleteComment removes a comment. The author or a staff account may delete.
func (s *ReactionService) DeleteComment(ctx context.Context, userID, commentID int64, isStaff bool) error {
	comment, err := s.store.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID && !isStaff {
		return apperrors.ErrPermissionDenied
	}
	return s.store.DeleteComment(ctx, commentID)
}
