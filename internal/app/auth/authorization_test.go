package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func ownerLookup(owners map[int64]int64) OwnerFunc {
	return func(_ context.Context, id int64) (int64, error) {
		owner, ok := owners[id]
		if !ok {
			return 0, apperrors.ErrResourceNotFound
		}
		return owner, nil
	}
}

func TestAuthorizeOwner(t *testing.T) {
	authorizer := NewAuthorizer()
	authorizer.Register(ResourcePhoto, ownerLookup(map[int64]int64{10: 5}))

	owner := &models.User{ID: 5, RoleType: models.RoleStudent}
	if err := authorizer.Authorize(context.Background(), owner, ResourcePhoto, 10); err != nil {
		t.Fatalf("owner should be allowed: %v", err)
	}
}

func TestAuthorizeNonOwnerDenied(t *testing.T) {
	authorizer := NewAuthorizer()
	authorizer.Register(ResourcePhoto, ownerLookup(map[int64]int64{10: 5}))

	stranger := &models.User{ID: 6, RoleType: models.RoleRepresentative}
	err := authorizer.Authorize(context.Background(), stranger, ResourcePhoto, 10)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestAuthorizeAdminBypass(t *testing.T) {
	authorizer := NewAuthorizer()
	authorizer.Register(ResourcePhoto, ownerLookup(map[int64]int64{10: 5}))

	admin := &models.User{ID: 99, RoleType: models.RoleAdmin}
	if err := authorizer.Authorize(context.Background(), admin, ResourcePhoto, 10); err != nil {
		t.Fatalf("admin should bypass ownership: %v", err)
	}
}

func TestAuthorizeUnknownKindDenied(t *testing.T) {
	authorizer := NewAuthorizer()

	user := &models.User{ID: 5, RoleType: models.RoleStudent}
	err := authorizer.Authorize(context.Background(), user, "widget", 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for unregistered kind, got %v", err)
	}
}

func TestAuthorizePassesThroughLookupErrors(t *testing.T) {
	authorizer := NewAuthorizer()
	authorizer.Register(ResourceDocument, ownerLookup(map[int64]int64{}))

	user := &models.User{ID: 5, RoleType: models.RoleStudent}
	err := authorizer.Authorize(context.Background(), user, ResourceDocument, 404)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("lookup errors should pass through, got %v", err)
	}
}
