package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type fakeRewardStore struct {
	rewards map[int64]models.Reward
	nextID  int64
}

func newFakeRewardStore() *fakeRewardStore {
	return &fakeRewardStore{rewards: make(map[int64]models.Reward), nextID: 1}
}

func (s *fakeRewardStore) Create(_ context.Context, reward *models.Reward) (int64, error) {
	id := s.nextID
	s.nextID++
	stored := *reward
	stored.ID = id
	s.rewards[id] = stored
	return id, nil
}

func (s *fakeRewardStore) GetByID(_ context.Context, id int64) (*models.Reward, error) {
	reward, ok := s.rewards[id]
	if !ok {
		return nil, apperrors.ErrRewardNotFound
	}
	return &reward, nil
}

func (s *fakeRewardStore) GetAll(_ context.Context, filter repositories.RewardFilter, page, pageSize int) ([]models.Reward, int64, error) {
	var out []models.Reward
	for _, reward := range s.rewards {
		if filter.StudentBatch != nil && reward.StudentBatch != *filter.StudentBatch {
			continue
		}
		if filter.StudentDepartment != nil && reward.StudentDepartment != *filter.StudentDepartment {
			continue
		}
		out = append(out, reward)
	}
	return out, int64(len(out)), nil
}

func (s *fakeRewardStore) Update(_ context.Context, reward *models.Reward) error {
	if _, ok := s.rewards[reward.ID]; !ok {
		return apperrors.ErrRewardNotFound
	}
	s.rewards[reward.ID] = *reward
	return nil
}

func (s *fakeRewardStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.rewards[id]; !ok {
		return apperrors.ErrRewardNotFound
	}
	delete(s.rewards, id)
	return nil
}

func (s *fakeRewardStore) OwnerID(_ context.Context, id int64) (int64, error) {
	reward, ok := s.rewards[id]
	if !ok {
		return 0, apperrors.ErrRewardNotFound
	}
	return reward.AwardedBy, nil
}

func newRewardServiceForTest() (*RewardService, *fakeRewardStore, *fakeReactionCleaner, *fakeFileStorage) {
	store := newFakeRewardStore()
	cleaner := &fakeReactionCleaner{}
	storage := &fakeFileStorage{}
	return NewRewardService(store, cleaner, storage), store, cleaner, storage
}

func TestCreateRewardWithoutImage(t *testing.T) {
	svc, _, _, storage := newRewardServiceForTest()
	ctx := context.Background()

	req := &dto.CreateRewardRequest{
		StudentName:       "Hana Tesfaye",
		StudentDepartment: "Software Engineering",
		StudentBatch:      "GC 2026",
		Achievement:       "Hackathon winner",
	}
	reward, err := svc.Create(ctx, 3, req, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reward.ImageURL != nil {
		t.Fatalf("expected no image URL, got %q", *reward.ImageURL)
	}
	if storage.saves != 0 {
		t.Fatalf("expected no file saved, got %d", storage.saves)
	}
}

func TestDeleteRewardCleansUpReactions(t *testing.T) {
	svc, store, cleaner, storage := newRewardServiceForTest()
	ctx := context.Background()

	imageURL := "/uploads/rewards/certificate.png"
	id, err := store.Create(ctx, &models.Reward{
		StudentName: "Hana Tesfaye",
		Achievement: "Dean's list",
		ImageURL:    &imageURL,
		AwardedBy:   3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, id); !errors.Is(err, apperrors.ErrRewardNotFound) {
		t.Fatalf("expected reward gone, got %v", err)
	}
	want := models.Target{Kind: models.TargetReward, ID: id}
	if len(cleaner.cleaned) != 1 || cleaner.cleaned[0] != want {
		t.Fatalf("expected reactions purged for %+v, got %+v", want, cleaner.cleaned)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != imageURL {
		t.Fatalf("expected reward image removed, got %v", storage.deleted)
	}
}
