package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
	"github.com/campushub/backend/internal/pkg/logger"
)

// PhotoController handles photo uploads, listings and likes
type PhotoController struct {
	photoService    *services.PhotoService
	reactionService *services.ReactionService
	featuredService *services.FeaturedService
	authorizer      *auth.Authorizer
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService *services.PhotoService, reactionService *services.ReactionService, featuredService *services.FeaturedService, authorizer *auth.Authorizer) *PhotoController {
	return &PhotoController{
		photoService:    photoService,
		reactionService: reactionService,
		featuredService: featuredService,
		authorizer:      authorizer,
	}
}

func (c *PhotoController) photoWithStats(ctx *gin.Context, userID int64, photo *models.Photo) dto.PhotoResponse {
	resp := toPhotoResponse(photo)
	target := models.Target{Kind: models.TargetPhoto, ID: photo.ID}
	likes, comments, hasLiked, err := c.reactionService.Stats(ctx.Request.Context(), userID, target)
	if err != nil {
		logger.Warn().Err(err).Int64("photoID", photo.ID).Msg("Failed to load reaction stats")
		return resp
	}
	resp.TotalLikes = likes
	resp.CommentsCount = comments
	resp.UserHasLiked = hasLiked
	return resp
}

// UploadPhoto stores a new photo
// @Summary Upload a photo
// @Description Uploads an image into a category. Student uploads await
// moderation; admin uploads are approved immediately.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Photo title"
// @Param description formData string false "Photo description"
// @Param categoryId formData int true "Category ID"
// @Param photoType formData string false "CELEBRATION, GENERAL or REWARD"
// @Param image formData file true "Image file (jpg, jpeg, png, gif, webp)"
// @Success 201 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or unsupported file type"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /photos [post]
func (c *PhotoController) UploadPhoto(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreatePhotoRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Image file is required"),
		})
		return
	}

	photo, err := c.photoService.Upload(ctx.Request.Context(), user, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toPhotoResponse(photo)))
}

// GetPhotoByID returns one photo with its reaction stats
// @Summary Get photo by ID
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo retrieved"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id} [get]
func (c *PhotoController) GetPhotoByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	photo, err := c.photoService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// pending photos are visible to their uploader and staff only
	viewer := middleware.CurrentUser(ctx)
	if !photo.IsApproved && (viewer == nil || (viewer.ID != photo.UploadedBy && !viewer.IsStaff())) {
		middleware.HandleAPIError(ctx, apperrors.ErrPhotoNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.photoWithStats(ctx, viewerID(ctx), photo)))
}

// ListPhotos returns photos with optional filters
// @Summary List photos
// @Description Lists photos. Anonymous callers see approved photos only;
// authenticated callers also see their own pending uploads.
// @Tags photos
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Param photoType query string false "Filter by photo type"
// @Param isFeatured query bool false "Only featured photos"
// @Param isApproved query bool false "Filter by moderation state"
// @Param uploadedBy query int false "Filter by uploader"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PhotoListResponse} "Photos retrieved"
// @Router /photos [get]
func (c *PhotoController) ListPhotos(ctx *gin.Context) {
	viewer := middleware.CurrentUser(ctx)

	var filter dto.PhotoFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	photos, total, err := c.photoService.List(ctx.Request.Context(), viewer, &filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.PhotoResponse, len(photos))
	for i := range photos {
		responses[i] = c.photoWithStats(ctx, viewerID(ctx), &photos[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PhotoListResponse{
		Photos:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// ListFeaturedPhotos returns the currently featured photos
// @Summary List featured photos
// @Description Returns photos currently promoted to the featured section
// @Tags photos
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FeaturedPhotoResponse} "Featured photos retrieved"
// @Router /photos/featured [get]
func (c *PhotoController) ListFeaturedPhotos(ctx *gin.Context) {
	photos, entries, err := c.featuredService.ListFeatured(ctx.Request.Context(), helpers.MaxPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.FeaturedPhotoResponse, len(entries))
	for i := range entries {
		photoResp := c.photoWithStats(ctx, viewerID(ctx), &photos[i])
		responses[i] = dto.FeaturedPhotoResponse{
			ID:            entries[i].ID,
			PhotoID:       entries[i].PhotoID,
			FeaturedFrom:  entries[i].FeaturedFrom,
			FeaturedUntil: entries[i].FeaturedUntil,
			IsActive:      entries[i].IsActive,
			Photo:         &photoResp,
		}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(responses))
}

// UpdatePhoto modifies photo metadata
// @Summary Update a photo
// @Description Updates title, description, category or type. Only the
// uploader or an admin may update.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param request body dto.UpdatePhotoRequest true "Photo metadata"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo updated"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id} [put]
func (c *PhotoController) UpdatePhoto(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourcePhoto, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdatePhotoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	photo, err := c.photoService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.photoWithStats(ctx, user.ID, photo)))
}

// DeletePhoto removes a photo
// @Summary Delete a photo
// @Description Deletes a photo, its file and its reactions. Only the
// uploader or an admin may delete.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Photo deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id} [delete]
func (c *PhotoController) DeletePhoto(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourcePhoto, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.photoService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Photo deleted"}))
}

// ApprovePhoto marks a photo as moderated
// @Summary Approve a photo
// @Description Marks a pending photo as approved. Admin only.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Photo approved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id}/approve [post]
func (c *PhotoController) ApprovePhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.photoService.Approve(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Photo approved"}))
}

// ToggleLikePhoto toggles the caller's like on a photo
// @Summary Like or unlike a photo
// @Description Adds the caller's like, or removes it if already present.
// Crossing the like threshold can promote the photo to featured.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeToggleResponse} "Like toggled"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id}/like [post]
func (c *PhotoController) ToggleLikePhoto(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	target := models.Target{Kind: models.TargetPhoto, ID: id}
	result, err := c.reactionService.ToggleLike(ctx.Request.Context(), user.ID, target)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// RetireFeaturedPhoto takes a featured entry out of rotation
// @Summary Retire a featured photo
// @Description Ends a featured photo's run before its window expires.
// Admin or representative only.
// @Tags featured-photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Featured entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Featured entry retired"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 404 {object} dto.ErrorResponse "No active featured entry with this ID"
// @Router /featured-photos/{id} [delete]
func (c *PhotoController) RetireFeaturedPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.featuredService.Retire(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Featured entry retired"}))
}
