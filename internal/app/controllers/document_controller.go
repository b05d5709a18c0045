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

// DocumentController handles shared study material
type DocumentController struct {
	documentService *services.DocumentService
	reactionService *services.ReactionService
	authorizer      *auth.Authorizer
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService, reactionService *services.ReactionService, authorizer *auth.Authorizer) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		reactionService: reactionService,
		authorizer:      authorizer,
	}
}

func (c *DocumentController) documentWithStats(ctx *gin.Context, userID int64, doc *models.Document) dto.DocumentResponse {
	resp := toDocumentResponse(doc)
	target := models.Target{Kind: models.TargetDocument, ID: doc.ID}
	likes, comments, hasLiked, err := c.reactionService.Stats(ctx.Request.Context(), userID, target)
	if err != nil {
		logger.Warn().Err(err).Int64("documentID", doc.ID).Msg("Failed to load reaction stats")
		return resp
	}
	resp.TotalLikes = likes
	resp.CommentsCount = comments
	resp.UserHasLiked = hasLiked
	return resp
}

// UploadDocument stores a new document
// @Summary Upload a document
// @Description Uploads study material. Documents are published immediately.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Document title"
// @Param description formData string false "Document description"
// @Param documentType formData string true "EXAM, RESEARCH, PROJECT or BOOK"
// @Param file formData file true "Document file (pdf, doc, docx, ppt, pptx)"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse} "Document uploaded"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or unsupported file type"
// @Router /documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Document file is required"),
		})
		return
	}

	doc, err := c.documentService.Upload(ctx.Request.Context(), user, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toDocumentResponse(doc)))
}

// GetDocumentByID returns one document with its reaction stats
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document retrieved"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (c *DocumentController) GetDocumentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	doc, err := c.documentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// pending documents are visible to their uploader and staff only
	viewer := middleware.CurrentUser(ctx)
	if !doc.IsApproved && (viewer == nil || (viewer.ID != doc.UploadedBy && !viewer.IsStaff())) {
		middleware.HandleAPIError(ctx, apperrors.ErrDocumentNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.documentWithStats(ctx, viewerID(ctx), doc)))
}

// ListDocuments returns documents with optional filters
// @Summary List documents
// @Description Lists documents. Anonymous callers see approved documents
// only; authenticated callers also see their own pending uploads.
// @Tags documents
// @Produce json
// @Param documentType query string false "Filter by document type"
// @Param isApproved query bool false "Filter by moderation state"
// @Param uploadedBy query int false "Filter by uploader"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.DocumentListResponse} "Documents retrieved"
// @Router /documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	viewer := middleware.CurrentUser(ctx)

	var filter dto.DocumentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	docs, total, err := c.documentService.List(ctx.Request.Context(), viewer, &filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = c.documentWithStats(ctx, viewerID(ctx), &docs[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DocumentListResponse{
		Documents:      responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// UpdateDocument modifies document metadata
// @Summary Update a document
// @Description Updates title, description or type. Only the uploader or
// an admin may update.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Document metadata"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document updated"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [put]
func (c *DocumentController) UpdateDocument(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceDocument, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	doc, err := c.documentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.documentWithStats(ctx, user.ID, doc)))
}

// DeleteDocument removes a document
// @Summary Delete a document
// @Description Deletes a document and its file. Only the uploader or an
// admin may delete.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Document deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.authorizer.Authorize(ctx.Request.Context(), user, auth.ResourceDocument, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.documentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Document deleted"}))
}

// ApproveDocument marks a document as moderated
// @Summary Approve a document
// @Description Marks a pending document as approved. Admin only.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Document approved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id}/approve [post]
func (c *DocumentController) ApproveDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.documentService.Approve(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Document approved"}))
}

// ToggleLikeDocument toggles the caller's like on a document
// @Summary Like or unlike a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.LikeToggleResponse} "Like toggled"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id}/like [post]
func (c *DocumentController) ToggleLikeDocument(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	target := models.Target{Kind: models.TargetDocument, ID: id}
	result, err := c.reactionService.ToggleLike(ctx.Request.Context(), user.ID, target)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
