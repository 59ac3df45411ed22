package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/middleware"
)

// GradingController handles score entry and grade reports
type GradingController struct {
	gradingService *services.GradingService
}

// NewGradingController creates a new GradingController
func NewGradingController(gradingService *services.GradingService) *GradingController {
	return &GradingController{gradingService: gradingService}
}

// ListSubmissions returns submissions partitioned into pending and graded.
// An optional ?studentId= query restricts the list to one student.
func (c *GradingController) ListSubmissions(ctx *gin.Context) {
	var studentID *int64
	if raw := ctx.Query("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId")
			errorDetail = errorDetail.WithDetails("studentId must be a positive number")
			ctx.JSON(400, dto.NewErrorResponse(errorDetail))
			return
		}
		studentID = &id
	}

	response, err := c.gradingService.ListSubmissions(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, response)
}

// GradeSubmission records a score and feedback on a submission
func (c *GradingController) GradeSubmission(ctx *gin.Context) {
	submissionID, ok := parseIDParam(ctx, "submissionId")
	if !ok {
		return
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid grade data", err)
		return
	}

	if err := c.gradingService.GradeSubmission(ctx.Request.Context(), submissionID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Submission graded"})
}

// MyGradeReport builds the calling student's grade report
func (c *GradingController) MyGradeReport(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	report, err := c.gradingService.GradeReport(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, report)
}

// StudentGradeReport builds a grade report for any student, for staff use
func (c *GradingController) StudentGradeReport(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	report, err := c.gradingService.GradeReport(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, report)
}
