package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/middleware"
)

// ContentController handles modules, assignments and submissions
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// CreateModule adds a module to a course
func (c *ContentController) CreateModule(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid module data", err)
		return
	}

	module, err := c.contentService.CreateModule(ctx.Request.Context(), courseID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, module)
}

// ListModules retrieves a course's modules
func (c *ContentController) ListModules(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	modules, err := c.contentService.ListModules(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, modules)
}

// OpenModule materializes a module's content and returns the file path
func (c *ContentController) OpenModule(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "moduleId")
	if !ok {
		return
	}

	path, err := c.contentService.MaterializeModule(ctx.Request.Context(), moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(path)
}

// DeleteModule removes a module with its assignments and submissions
func (c *ContentController) DeleteModule(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "moduleId")
	if !ok {
		return
	}

	if err := c.contentService.DeleteModule(ctx.Request.Context(), moduleID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Module deleted"})
}

// CreateAssignment adds an assignment to a module
func (c *ContentController) CreateAssignment(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "moduleId")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid assignment data", err)
		return
	}

	assignment, err := c.contentService.CreateAssignment(ctx.Request.Context(), moduleID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, assignment)
}

// ListAssignments retrieves a module's assignments
func (c *ContentController) ListAssignments(ctx *gin.Context) {
	moduleID, ok := parseIDParam(ctx, "moduleId")
	if !ok {
		return
	}

	assignments, err := c.contentService.ListAssignments(ctx.Request.Context(), moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, assignments)
}

// OpenInstructions materializes an assignment's instruction file
func (c *ContentController) OpenInstructions(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	path, err := c.contentService.MaterializeInstructions(ctx.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(path)
}

// DeleteAssignment removes an assignment with its submissions
func (c *ContentController) DeleteAssignment(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	if err := c.contentService.DeleteAssignment(ctx.Request.Context(), assignmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Assignment deleted"})
}

// SubmitAssignment uploads the calling student's submission
func (c *ContentController) SubmitAssignment(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.SubmitAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid submission data", err)
		return
	}

	submission, err := c.contentService.SubmitAssignment(ctx.Request.Context(), assignmentID, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, submission)
}

// OpenSubmission materializes a submission's file for grading
func (c *ContentController) OpenSubmission(ctx *gin.Context) {
	submissionID, ok := parseIDParam(ctx, "submissionId")
	if !ok {
		return
	}

	path, err := c.contentService.MaterializeSubmission(ctx.Request.Context(), submissionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(path)
}
