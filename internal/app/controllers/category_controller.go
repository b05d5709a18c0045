package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// CategoryController handles photo category management
type CategoryController struct {
	categoryService *services.CategoryService
	authorizer      *auth.Authorizer
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService, authorizer *auth.Authorizer) *CategoryController {
	return &CategoryController{categoryService: categoryService, authorizer: authorizer}
}

// CreateCategory adds a new category
// @Summary Create a category
// @Description Creates a photo category. Representative or admin only.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.APIResponse{data=dto.CategoryResponse} "Category created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "A category with this name exists"
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	category, err := c.categoryService.Create(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toCategoryResponse(category)))
}

// GetCategoryByID returns one category
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category retrieved"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCategoryResponse(category)))
}

// ListCategories returns categories with optional filters
// @Summary List categories
// @Tags categories
// @Produce json
// @Param batchSpecific query bool false "Only batch-specific categories"
// @Param batch query string false "Categories visible to this batch"
// @Param search query string false "Search by name"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CategoryListResponse} "Categories retrieved"
// @Router /categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	var filter dto.CategoryFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	categories, total, err := c.categoryService.List(ctx.Request.Context(), &filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = toCategoryResponse(&categories[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CategoryListResponse{
		Categories:     responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// UpdateCategory modifies a category
// @Summary Update a category
// @Description Updates a category. Only its creator or an admin may update.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category updated"
// @Failure 403 {object} dto.ErrorResponse "Not the category owner"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceCategory, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	category, err := c.categoryService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCategoryResponse(category)))
}

// DeleteCategory removes a category
// @Summary Delete a category
// @Description Deletes a category. Only its creator or an admin may delete;
// categories still containing photos are refused.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Category deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the category owner"
// @Failure 409 {object} dto.ErrorResponse "Category still contains photos"
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceCategory, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.categoryService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Category deleted"}))
}
