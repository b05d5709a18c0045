package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// fakeRepresentativeStore enforces the same rules as the database: one open
// application per user, and reviews only land on pending applications.
type fakeRepresentativeStore struct {
	requests map[int64]*models.RepresentativeRequest
	roles    map[int64]models.RoleType
	nextID   int64
}

func newFakeRepresentativeStore() *fakeRepresentativeStore {
	return &fakeRepresentativeStore{
		requests: make(map[int64]*models.RepresentativeRequest),
		roles:    make(map[int64]models.RoleType),
		nextID:   1,
	}
}

func (s *fakeRepresentativeStore) Create(_ context.Context, req *models.RepresentativeRequest) (int64, error) {
	for _, existing := range s.requests {
		if existing.UserID == req.UserID && existing.Status == models.RequestPending {
			return 0, apperrors.ErrRequestAlreadyOpen
		}
	}
	id := s.nextID
	s.nextID++
	stored := *req
	stored.ID = id
	s.requests[id] = &stored
	return id, nil
}

func (s *fakeRepresentativeStore) GetByID(_ context.Context, id int64) (*models.RepresentativeRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (s *fakeRepresentativeStore) GetAll(_ context.Context, userID *int64, status *string, _, _ int) ([]models.RepresentativeRequest, int64, error) {
	var out []models.RepresentativeRequest
	for _, req := range s.requests {
		if userID != nil && req.UserID != *userID {
			continue
		}
		if status != nil && string(req.Status) != *status {
			continue
		}
		out = append(out, *req)
	}
	return out, int64(len(out)), nil
}

func (s *fakeRepresentativeStore) review(id, reviewerID int64, notes string, status models.RequestStatus) error {
	req, ok := s.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	if req.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyClosed
	}
	now := time.Now()
	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now
	req.AdminNotes = notes
	if status == models.RequestApproved {
		s.roles[req.UserID] = models.RoleRepresentative
	}
	return nil
}

func (s *fakeRepresentativeStore) Approve(_ context.Context, requestID, reviewerID int64, notes string) error {
	return s.review(requestID, reviewerID, notes, models.RequestApproved)
}

func (s *fakeRepresentativeStore) Reject(_ context.Context, requestID, reviewerID int64, notes string) error {
	return s.review(requestID, reviewerID, notes, models.RequestRejected)
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	req, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{
		RequestMessage: "I organize our batch events",
	})
	if err != nil {
		t.Fatal(err)
	}
	if req.ID == 0 {
		t.Fatal("submitted request should carry its assigned ID")
	}
	if req.Status != models.RequestPending {
		t.Fatalf("expected PENDING status, got %s", req.Status)
	}
}

func TestSubmitRejectsSecondOpenRequest(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	if _, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{RequestMessage: "first"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{RequestMessage: "second"})
	if !errors.Is(err, apperrors.ErrRequestAlreadyOpen) {
		t.Fatalf("expected ErrRequestAlreadyOpen, got %v", err)
	}
}

func TestApproveGrantsRole(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	req, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{RequestMessage: "pick me"})
	if err != nil {
		t.Fatal(err)
	}

	approved, err := svc.Approve(context.Background(), req.ID, 1, "looks good")
	if err != nil {
		t.Fatal(err)
	}
	if approved.Status != models.RequestApproved {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}
	if approved.ReviewedBy == nil || *approved.ReviewedBy != 1 {
		t.Fatal("reviewer not recorded")
	}
	if approved.AdminNotes != "looks good" {
		t.Fatalf("notes not recorded: %q", approved.AdminNotes)
	}
	if store.roles[5] != models.RoleRepresentative {
		t.Fatal("approval should grant the representative role")
	}
}

func TestRejectLeavesRoleUnchanged(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	req, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{RequestMessage: "pick me"})
	if err != nil {
		t.Fatal(err)
	}

	rejected, err := svc.Reject(context.Background(), req.ID, 1, "not this term")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != models.RequestRejected {
		t.Fatalf("expected REJECTED, got %s", rejected.Status)
	}
	if _, granted := store.roles[5]; granted {
		t.Fatal("rejection must not grant the role")
	}
}

func TestReviewClosedRequestFails(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	req, err := svc.Submit(context.Background(), 5, &dto.CreateRepresentativeRequest{RequestMessage: "pick me"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(context.Background(), req.ID, 1, ""); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Approve(context.Background(), req.ID, 1, ""); !errors.Is(err, apperrors.ErrRequestAlreadyClosed) {
		t.Fatalf("expected ErrRequestAlreadyClosed, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), req.ID, 1, ""); !errors.Is(err, apperrors.ErrRequestAlreadyClosed) {
		t.Fatalf("expected ErrRequestAlreadyClosed, got %v", err)
	}
}

func TestReviewMissingRequestFails(t *testing.T) {
	svc := NewRepresentativeService(newFakeRepresentativeStore())

	if _, err := svc.Approve(context.Background(), 404, 1, ""); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	first, err := svc.Submit(context.Background(), 1, &dto.CreateRepresentativeRequest{RequestMessage: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), 2, &dto.CreateRepresentativeRequest{RequestMessage: "b"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Approve(context.Background(), first.ID, 9, ""); err != nil {
		t.Fatal(err)
	}

	pending := string(models.RequestPending)
	requests, total, err := svc.List(context.Background(), nil, &pending, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(requests) != 1 || requests[0].UserID != 2 {
		t.Fatalf("unexpected pending list: total=%d requests=%+v", total, requests)
	}
}

func TestListFiltersByApplicant(t *testing.T) {
	store := newFakeRepresentativeStore()
	svc := NewRepresentativeService(store)

	if _, err := svc.Submit(context.Background(), 1, &dto.CreateRepresentativeRequest{RequestMessage: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), 2, &dto.CreateRepresentativeRequest{RequestMessage: "b"}); err != nil {
		t.Fatal(err)
	}

	applicant := int64(2)
	requests, total, err := svc.List(context.Background(), &applicant, nil, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(requests) != 1 || requests[0].UserID != 2 {
		t.Fatalf("unexpected applicant list: total=%d requests=%+v", total, requests)
	}
}
