package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// SearchController handles cross-entity search
type SearchController struct {
	searchService *services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// Search runs a free-text search across photos, rewards and documents
// @Summary Search the platform
// @Description Searches approved photos, rewards and documents in
// parallel and returns one result list per entity kind. The category
// filter matches a category name for photos and a document type for
// documents.
// @Tags search
// @Produce json
// @Param q query string false "Search term"
// @Param category query string false "Category name or document type"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Search results"
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	var req dto.SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.searchService.Search(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.SearchResponse{
		Photos:    make([]dto.PhotoResponse, len(result.Photos)),
		Rewards:   make([]dto.RewardResponse, len(result.Rewards)),
		Documents: make([]dto.DocumentResponse, len(result.Documents)),
	}
	for i := range result.Photos {
		resp.Photos[i] = toPhotoResponse(&result.Photos[i])
	}
	for i := range result.Rewards {
		resp.Rewards[i] = toRewardResponse(&result.Rewards[i])
	}
	for i := range result.Documents {
		resp.Documents[i] = toDocumentResponse(&result.Documents[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
