package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// RepresentativeController handles the representative application workflow
type RepresentativeController struct {
	representativeService *services.RepresentativeService
}

// NewRepresentativeController creates a new RepresentativeController
func NewRepresentativeController(representativeService *services.RepresentativeService) *RepresentativeController {
	return &RepresentativeController{representativeService: representativeService}
}

// SubmitRequest opens a representative application
// @Summary Apply for the representative role
// @Description Opens a new application. A user may hold at most one
// pending application at a time.
// @Tags representative-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRepresentativeRequest true "Application message"
// @Success 201 {object} dto.APIResponse{data=dto.RepresentativeRequestResponse} "Application submitted"
// @Failure 409 {object} dto.ErrorResponse "A pending application already exists"
// @Router /representative-requests [post]
func (c *RepresentativeController) SubmitRequest(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRepresentativeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	request, err := c.representativeService.Submit(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toRepresentativeResponse(request)))
}

// GetRequestByID returns one application
// @Summary Get an application by ID
// @Description Returns a single application. Applicants can read their
// own; staff can read any.
// @Tags representative-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RepresentativeRequestResponse} "Application retrieved"
// @Failure 403 {object} dto.ErrorResponse "Not the applicant"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /representative-requests/{id} [get]
func (c *RepresentativeController) GetRequestByID(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.representativeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if request.UserID != user.ID && !user.IsStaff() {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toRepresentativeResponse(request)))
}

// ListRequests returns applications, optionally filtered by status
// @Summary List applications
// @Description Lists representative applications. Students see their own
// applications; staff see everyone's.
// @Tags representative-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.RepresentativeRequestListResponse} "Applications retrieved"
// @Router /representative-requests [get]
func (c *RepresentativeController) ListRequests(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var userID *int64
	if !user.IsStaff() {
		userID = &user.ID
	}
	var status *string
	if s := ctx.Query("status"); s != "" {
		status = &s
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	requests, total, err := c.representativeService.List(ctx.Request.Context(), userID, status, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.RepresentativeRequestResponse, len(requests))
	for i := range requests {
		responses[i] = toRepresentativeResponse(&requests[i])
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RepresentativeRequestListResponse{
		Requests:       responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}))
}

// ApproveRequest approves a pending application
// @Summary Approve an application
// @Description Approves a pending application and grants the
// representative role in the same transaction. Admin only.
// @Tags representative-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ReviewRepresentativeRequest false "Reviewer notes"
// @Success 200 {object} dto.APIResponse{data=dto.RepresentativeRequestResponse} "Application approved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already reviewed"
// @Router /representative-requests/{id}/approve [post]
func (c *RepresentativeController) ApproveRequest(ctx *gin.Context) {
	reviewer, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewRepresentativeRequest
	// notes body is optional
	_ = ctx.ShouldBindJSON(&req)

	request, err := c.representativeService.Approve(ctx.Request.Context(), id, reviewer.ID, req.AdminNotes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toRepresentativeResponse(request)))
}

// RejectRequest rejects a pending application
// @Summary Reject an application
// @Description Rejects a pending application without a role change. Admin only.
// @Tags representative-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ReviewRepresentativeRequest false "Reviewer notes"
// @Success 200 {object} dto.APIResponse{data=dto.RepresentativeRequestResponse} "Application rejected"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already reviewed"
// @Router /representative-requests/{id}/reject [post]
func (c *RepresentativeController) RejectRequest(ctx *gin.Context) {
	reviewer, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewRepresentativeRequest
	_ = ctx.ShouldBindJSON(&req)

	request, err := c.representativeService.Reject(ctx.Request.Context(), id, reviewer.ID, req.AdminNotes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toRepresentativeResponse(request)))
}
