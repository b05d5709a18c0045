package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type fakeChecker struct {
	existing map[int64]bool
}

func (c fakeChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c.existing[id], nil
}

func TestTargetRegistryValidates(t *testing.T) {
	registry := NewTargetRegistry(
		fakeChecker{existing: map[int64]bool{1: true}},
		fakeChecker{existing: map[int64]bool{2: true}},
		fakeChecker{existing: map[int64]bool{3: true}},
	)

	cases := []struct {
		name   string
		target models.Target
		want   error
	}{
		{"existing photo", models.Target{Kind: models.TargetPhoto, ID: 1}, nil},
		{"existing reward", models.Target{Kind: models.TargetReward, ID: 2}, nil},
		{"existing document", models.Target{Kind: models.TargetDocument, ID: 3}, nil},
		{"missing photo", models.Target{Kind: models.TargetPhoto, ID: 2}, apperrors.ErrResourceNotFound},
		{"unknown kind", models.Target{Kind: "USER", ID: 1}, apperrors.ErrInvalidTarget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := registry.Validate(context.Background(), tc.target)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
