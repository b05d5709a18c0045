package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// fakeFeaturedStore mimics the database rules behind promotion: a photo is
// promoted only when approved, not yet featured and at or above the like
// threshold.
type fakeFeaturedStore struct {
	likeCounts   map[int64]int
	approved     map[int64]bool
	featured     map[int64]time.Time
	now          time.Time
	promoteCalls int
}

func newFakeFeaturedStore() *fakeFeaturedStore {
	return &fakeFeaturedStore{
		likeCounts: make(map[int64]int),
		approved:   make(map[int64]bool),
		featured:   make(map[int64]time.Time),
		now:        time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeFeaturedStore) Promote(_ context.Context, photoID int64, threshold int) (bool, error) {
	s.promoteCalls++
	if !s.approved[photoID] {
		return false, nil
	}
	if _, already := s.featured[photoID]; already {
		return false, nil
	}
	if s.likeCounts[photoID] < threshold {
		return false, nil
	}
	s.featured[photoID] = s.now
	return true, nil
}

func (s *fakeFeaturedStore) EligiblePhotoIDs(_ context.Context, threshold int) ([]int64, error) {
	var ids []int64
	for id, count := range s.likeCounts {
		if _, already := s.featured[id]; already {
			continue
		}
		if s.approved[id] && count >= threshold {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeFeaturedStore) DemoteStale(_ context.Context, window time.Duration) ([]int64, error) {
	var demoted []int64
	for id, from := range s.featured {
		if s.now.Sub(from) > window {
			delete(s.featured, id)
			demoted = append(demoted, id)
		}
	}
	return demoted, nil
}

// the fake keys entries by photo ID, so entryID doubles as photoID here
func (s *fakeFeaturedStore) Retire(_ context.Context, entryID int64) error {
	if _, active := s.featured[entryID]; !active {
		return apperrors.ErrResourceNotFound
	}
	delete(s.featured, entryID)
	return nil
}

func (s *fakeFeaturedStore) ListActive(_ context.Context, _ int) ([]models.Photo, []models.FeaturedPhoto, error) {
	var photos []models.Photo
	var entries []models.FeaturedPhoto
	for id, from := range s.featured {
		photos = append(photos, models.Photo{ID: id, IsFeatured: true})
		entries = append(entries, models.FeaturedPhoto{PhotoID: id, FeaturedFrom: from, IsActive: true})
	}
	return photos, entries, nil
}

func TestMaybePromoteBelowThreshold(t *testing.T) {
	store := newFakeFeaturedStore()
	store.approved[1] = true
	store.likeCounts[1] = 9

	svc := NewFeaturedService(store, 10, 30)
	svc.MaybePromote(context.Background(), 1)

	if _, featured := store.featured[1]; featured {
		t.Fatal("photo with 9 likes must not be featured")
	}
}

func TestMaybePromoteAtThreshold(t *testing.T) {
	store := newFakeFeaturedStore()
	store.approved[1] = true
	store.likeCounts[1] = 10

	svc := NewFeaturedService(store, 10, 30)
	svc.MaybePromote(context.Background(), 1)

	if _, featured := store.featured[1]; !featured {
		t.Fatal("photo with 10 likes should be featured")
	}
}

func TestMaybePromoteSkipsUnapproved(t *testing.T) {
	store := newFakeFeaturedStore()
	store.likeCounts[1] = 50

	svc := NewFeaturedService(store, 10, 30)
	svc.MaybePromote(context.Background(), 1)

	if _, featured := store.featured[1]; featured {
		t.Fatal("unapproved photo must not be featured")
	}
}

func TestSweepPromotesAndDemotes(t *testing.T) {
	store := newFakeFeaturedStore()

	// Eligible but never promoted through the like path
	store.approved[1] = true
	store.likeCounts[1] = 12

	// Featured 31 days ago, past the 30 day window
	store.approved[2] = true
	store.likeCounts[2] = 20
	store.featured[2] = store.now.Add(-31 * 24 * time.Hour)

	// Featured 5 days ago, still inside the window
	store.approved[3] = true
	store.likeCounts[3] = 20
	store.featured[3] = store.now.Add(-5 * 24 * time.Hour)

	svc := NewFeaturedService(store, 10, 30)
	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, featured := store.featured[1]; !featured {
		t.Fatal("sweep should promote the eligible photo")
	}
	if _, featured := store.featured[2]; featured {
		t.Fatal("sweep should retire the stale photo")
	}
	if _, featured := store.featured[3]; !featured {
		t.Fatal("sweep must not retire a photo inside its window")
	}
}

func TestRetireEndsFeaturedRun(t *testing.T) {
	store := newFakeFeaturedStore()
	store.approved[1] = true
	store.likeCounts[1] = 20
	store.featured[1] = store.now

	svc := NewFeaturedService(store, 10, 30)
	if err := svc.Retire(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if _, featured := store.featured[1]; featured {
		t.Fatal("retired entry must no longer be active")
	}

	if err := svc.Retire(context.Background(), 1); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("retiring an inactive entry should report not found, got %v", err)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	store := newFakeFeaturedStore()
	store.approved[1] = true
	store.likeCounts[1] = 15

	svc := NewFeaturedService(store, 10, 30)
	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}
	firstFrom := store.featured[1]

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}
	if store.featured[1] != firstFrom {
		t.Fatal("second sweep must not restart the featured window")
	}
	if len(store.featured) != 1 {
		t.Fatalf("expected one featured photo, got %d", len(store.featured))
	}
}
