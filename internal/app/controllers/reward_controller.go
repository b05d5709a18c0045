package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
	"github.com/campushub/backend/internal/pkg/logger"
)

// RewardController handles student achievement records
type RewardController struct {
	rewardService   *services.RewardService
	reactionService *services.ReactionService
	authorizer      *auth.Authorizer
}

// NewRewardController creates a new RewardController
func NewRewardController(rewardService *services.RewardService, reactionService *services.ReactionService, authorizer *auth.Authorizer) *RewardController {
	return &RewardController{
		rewardService:   rewardService,
		reactionService: reactionService,
		authorizer:      authorizer,
	}
}

func (c *RewardController) rewardWithStats(ctx *gin.Context, userID int64, reward *models.Reward) dto.RewardResponse {
	resp := toRewardResponse(reward)
	target := models.Target{Kind: models.TargetReward, ID: reward.ID}
	likes, comments, hasLiked, err := c.reactionService.Stats(ctx.Request.Context(), userID, target)
	if err != nil {
		logger.Warn().Err(err).Int64("rewardID", reward.ID).Msg("Failed to load reaction stats")
		return resp
	}
	resp.TotalLikes = likes
	resp.CommentsCount = comments
	resp.UserHasLiked = hasLiked
	return resp
}

// CreateReward records a new achievement
// @Summary Create a reward
// @Description Publishes a student achievement. Representative or admin
// only; the certificate image is optional.
// @Tags rewards
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param studentName formData string true "Student name"
// @Param studentDepartment formData string true "Student department"
// @Param studentBatch formData string true "Student batch"
// @Param achievement formData string true "Achievement description"
// @Param image formData file false "Certificate image (jpg, jpeg, png, gif, webp)"
// @Success 201 {object} dto.APIResponse{data=dto.RewardResponse} "Reward created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /rewards [post]
func (c *RewardController) CreateReward(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRewardRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// image is optional on rewards
	file, err := ctx.FormFile("image")
	if err != nil {
		file = nil
	}

	reward, err := c.rewardService.Create(ctx.Request.Context(), user.ID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toRewardResponse(reward)))
}

// GetRewardByID returns one reward with its reaction stats
// @Summary Get reward by ID
// @Tags rewards
// @Produce json
// @Param id path int true "Reward ID"
// @Success 200 {object} dto.APIResponse{data=dto.RewardResponse} "Reward retrieved"
// @Failure 404 {object} dto.ErrorResponse "Reward not found"
// @Router /rewards/{id} [get]
func (c *RewardController) GetRewardByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reward, err := c.rewardService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.rewardWithStats(ctx, viewerID(ctx), reward)))
}

// ListRewards returns rewards with optional filters
// @Summary List rewards
// @Tags rewards
// @Produce json
// @Param studentBatch query string false "Filter by student batch"
// @Param studentDepartment query string false "Filter by student department"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.RewardListResponse} "Rewards retrieved"
// @Router /rewards [get]
func (c *RewardController) ListRewards(ctx *gin.Context) {
	var filter dto.RewardFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	rewards, total, err := c.rewardService.List(ctx.Request.Context(), &filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.RewardResponse, len(rewards))
	for i := range rewards {
		responses[i] = c.rewardWithStats(ctx, viewerID(ctx), &rewards[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RewardListResponse{
		Rewards:        responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// UpdateReward modifies a reward
// @Summary Update a reward
// @Description Updates reward text fields. Only the awarding staff member
// or an admin may update.
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reward ID"
// @Param request body dto.UpdateRewardRequest true "Reward details"
// @Success 200 {object} dto.APIResponse{data=dto.RewardResponse} "Reward updated"
// @Failure 403 {object} dto.ErrorResponse "Not the awarder"
// @Failure 404 {object} dto.ErrorResponse "Reward not found"
// @Router /rewards/{id} [put]
func (c *RewardController) UpdateReward(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceReward, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateRewardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	reward, err := c.rewardService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.rewardWithStats(ctx, user.ID, reward)))
}

// DeleteReward removes a reward
// @Summary Delete a reward
// @Description Deletes a reward and its image. Only the awarding staff
// member or an admin may delete.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reward ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Reward deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the awarder"
// @Failure 404 {object} dto.ErrorResponse "Reward not found"
// @Router /rewards/{id} [delete]
func (c *RewardController) DeleteReward(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceReward, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.rewardService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Reward deleted"}))
}

// ToggleLikeReward toggles the caller's like on a reward
// @Summary Like or unlike a reward
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reward ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeToggleResponse} "Like toggled"
// @Failure 404 {object} dto.ErrorResponse "Reward not found"
// @Router /rewards/{id}/like [post]
func (c *RewardController) ToggleLikeReward(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	target := models.Target{Kind: models.TargetReward, ID: id}
	result, err := c.reactionService.ToggleLike(ctx.Request.Context(), user.ID, target)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
