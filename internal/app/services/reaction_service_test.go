package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type fakeReactionStore struct {
	likes    map[string]map[int64]bool
	comments map[int64]*models.Comment
	nextID   int64
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{
		likes:    make(map[string]map[int64]bool),
		comments: make(map[int64]*models.Comment),
		nextID:   1,
	}
}

func targetKey(t models.Target) string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

func (s *fakeReactionStore) InsertLike(_ context.Context, userID int64, target models.Target) (bool, error) {
	key := targetKey(target)
	if s.likes[key] == nil {
		s.likes[key] = make(map[int64]bool)
	}
	if s.likes[key][userID] {
		return false, nil
	}
	s.likes[key][userID] = true
	return true, nil
}

func (s *fakeReactionStore) DeleteLike(_ context.Context, userID int64, target models.Target) (bool, error) {
	key := targetKey(target)
	if !s.likes[key][userID] {
		return false, nil
	}
	delete(s.likes[key], userID)
	return true, nil
}

func (s *fakeReactionStore) CountLikes(_ context.Context, target models.Target) (int64, error) {
	return int64(len(s.likes[targetKey(target)])), nil
}

func (s *fakeReactionStore) HasLiked(_ context.Context, userID int64, target models.Target) (bool, error) {
	return s.likes[targetKey(target)][userID], nil
}

func (s *fakeReactionStore) CreateComment(_ context.Context, comment *models.Comment) (int64, error) {
	comment.ID = s.nextID
	s.nextID++
	stored := *comment
	s.comments[comment.ID] = &stored
	return comment.ID, nil
}

func (s *fakeReactionStore) GetCommentByID(_ context.Context, id int64) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *comment
	return &copied, nil
}

func (s *fakeReactionStore) ListComments(_ context.Context, target models.Target, _, _ int) ([]models.Comment, int64, error) {
	var out []models.Comment
	for _, c := range s.comments {
		if c.TargetType == target.Kind && c.TargetID == target.ID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeReactionStore) CountComments(_ context.Context, target models.Target) (int64, error) {
	_, total, _ := s.ListComments(context.Background(), target, 1, 100)
	return total, nil
}

func (s *fakeReactionStore) UpdateComment(_ context.Context, id int64, content string) error {
	comment, ok := s.comments[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	comment.Content = content
	return nil
}

func (s *fakeReactionStore) DeleteComment(_ context.Context, id int64) error {
	delete(s.comments, id)
	return nil
}

type allowAllTargets struct{}

func (allowAllTargets) Validate(context.Context, models.Target) error { return nil }

type rejectTargets struct{ err error }

func (r rejectTargets) Validate(context.Context, models.Target) error { return r.err }

type recordingPromoter struct {
	photoIDs []int64
}

func (p *recordingPromoter) MaybePromote(_ context.Context, photoID int64) {
	p.photoIDs = append(p.photoIDs, photoID)
}

func TestToggleLikeAddsAndRemoves(t *testing.T) {
	store := newFakeReactionStore()
	svc := NewReactionService(store, allowAllTargets{}, nil)
	target := models.Target{Kind: models.TargetReward, ID: 7}

	resp, err := svc.ToggleLike(context.Background(), 1, target)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if resp.Message != "Liked" || resp.TotalLikes != 1 {
		t.Fatalf("unexpected first toggle response: %+v", resp)
	}

	resp, err = svc.ToggleLike(context.Background(), 1, target)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if resp.Message != "Like removed" || resp.TotalLikes != 0 {
		t.Fatalf("unexpected second toggle response: %+v", resp)
	}
}

func TestToggleLikeCountsDistinctUsers(t *testing.T) {
	store := newFakeReactionStore()
	svc := NewReactionService(store, allowAllTargets{}, nil)
	target := models.Target{Kind: models.TargetDocument, ID: 3}

	for userID := int64(1); userID <= 5; userID++ {
		resp, err := svc.ToggleLike(context.Background(), userID, target)
		if err != nil {
			t.Fatalf("toggle for user %d: %v", userID, err)
		}
		if resp.TotalLikes != userID {
			t.Fatalf("expected %d likes, got %d", userID, resp.TotalLikes)
		}
	}
}

func TestToggleLikeValidatesTarget(t *testing.T) {
	svc := NewReactionService(newFakeReactionStore(), rejectTargets{err: apperrors.ErrResourceNotFound}, nil)

	_, err := svc.ToggleLike(context.Background(), 1, models.Target{Kind: models.TargetPhoto, ID: 99})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestToggleLikeTriggersPromoterOnPhotoLikeOnly(t *testing.T) {
	store := newFakeReactionStore()
	promoter := &recordingPromoter{}
	svc := NewReactionService(store, allowAllTargets{}, promoter)

	photo := models.Target{Kind: models.TargetPhoto, ID: 42}
	reward := models.Target{Kind: models.TargetReward, ID: 42}

	if _, err := svc.ToggleLike(context.Background(), 1, photo); err != nil {
		t.Fatalf("photo like: %v", err)
	}
	if _, err := svc.ToggleLike(context.Background(), 1, reward); err != nil {
		t.Fatalf("reward like: %v", err)
	}
	// Unlike must not promote
	if _, err := svc.ToggleLike(context.Background(), 1, photo); err != nil {
		t.Fatalf("photo unlike: %v", err)
	}

	if len(promoter.photoIDs) != 1 || promoter.photoIDs[0] != 42 {
		t.Fatalf("expected exactly one promotion for photo 42, got %v", promoter.photoIDs)
	}
}

func TestStats(t *testing.T) {
	store := newFakeReactionStore()
	svc := NewReactionService(store, allowAllTargets{}, nil)
	target := models.Target{Kind: models.TargetPhoto, ID: 5}

	if _, err := svc.ToggleLike(context.Background(), 1, target); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleLike(context.Background(), 2, target); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddComment(context.Background(), 1, &dto.CreateCommentRequest{
		TargetType: string(models.TargetPhoto),
		TargetID:   5,
		Content:    "great shot",
	}); err != nil {
		t.Fatal(err)
	}

	likes, comments, hasLiked, err := svc.Stats(context.Background(), 2, target)
	if err != nil {
		t.Fatal(err)
	}
	if likes != 2 || comments != 1 || !hasLiked {
		t.Fatalf("unexpected stats: likes=%d comments=%d hasLiked=%v", likes, comments, hasLiked)
	}

	_, _, hasLiked, err = svc.Stats(context.Background(), 99, target)
	if err != nil {
		t.Fatal(err)
	}
	if hasLiked {
		t.Fatal("user 99 should not have liked the target")
	}
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	store := newFakeReactionStore()
	svc := NewReactionService(store, allowAllTargets{}, nil)

	comment, err := svc.AddComment(context.Background(), 1, &dto.CreateCommentRequest{
		TargetType: string(models.TargetReward),
		TargetID:   1,
		Content:    "congrats",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateComment(context.Background(), 2, comment.ID, "edited"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-author, got %v", err)
	}

	updated, err := svc.UpdateComment(context.Background(), 1, comment.ID, "edited")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content not updated: %q", updated.Content)
	}
}

func TestDeleteCommentAuthorOrStaff(t *testing.T) {
	store := newFakeReactionStore()
	svc := NewReactionService(store, allowAllTargets{}, nil)

	comment, err := svc.AddComment(context.Background(), 1, &dto.CreateCommentRequest{
		TargetType: string(models.TargetDocument),
		TargetID:   1,
		Content:    "useful",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteComment(context.Background(), 2, comment.ID, false); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err := svc.DeleteComment(context.Background(), 2, comment.ID, true); err != nil {
		t.Fatalf("staff delete failed: %v", err)
	}
	if _, err := store.GetCommentByID(context.Background(), comment.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatal("comment should be gone")
	}
}
