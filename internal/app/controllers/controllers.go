// Package controllers contains the HTTP handlers. Controllers bind and
// validate requests, call into services and translate results into the
// response envelope; they carry no business logic of their own.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// Controllers bundles every controller for route registration
type Controllers struct {
	Auth           *AuthController
	User           *UserController
	Category       *CategoryController
	Photo          *PhotoController
	Reward         *RewardController
	Document       *DocumentController
	Comment        *CommentController
	Representative *RepresentativeController
	Search         *SearchController
}

// NewControllers wires every controller against the service set
func NewControllers(svcs *services.Services, authorizer *auth.Authorizer) *Controllers {
	return &Controllers{
		Auth:           NewAuthController(svcs.Auth, svcs.User),
		User:           NewUserController(svcs.User),
		Category:       NewCategoryController(svcs.Category, authorizer),
		Photo:          NewPhotoController(svcs.Photo, svcs.Reaction, svcs.Featured, authorizer),
		Reward:         NewRewardController(svcs.Reward, svcs.Reaction, authorizer),
		Document:       NewDocumentController(svcs.Document, svcs.Reaction, authorizer),
		Comment:        NewCommentController(svcs.Reaction),
		Representative: NewRepresentativeController(svcs.Representative),
		Search:         NewSearchController(svcs.Search),
	}
}

// parseIDParam reads the numeric {id} path parameter; on failure it writes
// the 400 response and reports false
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid ID parameter"),
		})
		return 0, false
	}
	return id, true
}

// viewerID returns the authenticated account's ID, or 0 for anonymous
// requests on optionally-authenticated routes
func viewerID(ctx *gin.Context) int64 {
	if user := middleware.CurrentUser(ctx); user != nil {
		return user.ID
	}
	return 0
}

// requireUser returns the authenticated account; a missing account means the
// route was registered without the auth middleware
func requireUser(ctx *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return nil, false
	}
	return user, true
}
