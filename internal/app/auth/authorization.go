// Package auth enforces attribute-based ownership rules: who uploaded a
// photo or document, who recorded a reward, who created a category. Admins
// bypass ownership; everyone else may only touch what they own.
package auth

import (
	"context"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// Resource kinds registered with the Authorizer
const (
	ResourcePhoto    = "photo"
	ResourceReward   = "reward"
	ResourceDocument = "document"
	ResourceCategory = "category"
)

// OwnerFunc resolves the owning user of an entity
type OwnerFunc func(ctx context.Context, id int64) (int64, error)

// Authorizer checks modification rights per resource kind
type Authorizer struct {
	owners map[string]OwnerFunc
}

// NewAuthorizer creates an empty Authorizer; register resource kinds with
// Register before use
func NewAuthorizer() *Authorizer {
	return &Authorizer{owners: make(map[string]OwnerFunc)}
}

// Register wires an owner lookup for a resource kind
func (a *Authorizer) Register(kind string, fn OwnerFunc) {
	a.owners[kind] = fn
}

// Authorize returns nil when the user may modify the resource. Admins always
// may; other users must own it. Lookup errors (including not-found) pass
// through so callers can map them to the right response.
func (a *Authorizer) Authorize(ctx context.Context, user *models.User, kind string, resourceID int64) error {
	if user.RoleType == models.RoleAdmin {
		return nil
	}

	fn, ok := a.owners[kind]
	if !ok {
		return apperrors.ErrPermissionDenied
	}

	ownerID, err := fn(ctx, resourceID)
	if err != nil {
		return err
	}
	if ownerID != user.ID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
