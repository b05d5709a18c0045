package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// CommentController handles comments across photos, rewards and documents
type CommentController struct {
	reactionService *services.ReactionService
}

// NewCommentController creates a new CommentController
func NewCommentController(reactionService *services.ReactionService) *CommentController {
	return &CommentController{reactionService: reactionService}
}

// CreateComment attaches a comment to a target entity
// @Summary Create a comment
// @Description Adds a comment to a photo, reward or document
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommentRequest true "Comment details"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or unknown target kind"
// @Failure 404 {object} dto.ErrorResponse "Target entity not found"
// @Router /comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	comment, err := c.reactionService.AddComment(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := toCommentResponse(comment)
	resp.UserName = user.FullName()
	resp.UserBatch = user.Batch
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListComments returns the comments on a target entity
// @Summary List comments
// @Description Lists comments on a photo, reward or document, newest first
// @Tags comments
// @Produce json
// @Param targetType query string true "PHOTO, REWARD or DOCUMENT"
// @Param targetId query int true "Target entity ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse} "Comments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or unknown target"
// @Failure 404 {object} dto.ErrorResponse "Target entity not found"
// @Router /comments [get]
func (c *CommentController) ListComments(ctx *gin.Context) {
	var filter dto.CommentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	if filter.TargetType == nil || filter.TargetID == nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "targetType and targetId are required"),
		})
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	target := models.Target{Kind: models.TargetKind(*filter.TargetType), ID: *filter.TargetID}
	comments, total, err := c.reactionService.ListComments(ctx.Request.Context(), target, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = toCommentResponse(&comments[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentListResponse{
		Comments:       responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// UpdateComment edits a comment
// @Summary Update a comment
// @Description Edits comment text. Only the author may edit.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=dto.CommentResponse} "Comment updated"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{id} [put]
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	comment, err := c.reactionService.UpdateComment(ctx.Request.Context(), user.ID, id, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCommentResponse(comment)))
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Description Deletes a comment. The author or an admin may delete.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Comment deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reactionService.DeleteComment(ctx.Request.Context(), user.ID, id, user.IsStaff()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Comment deleted"}))
}
