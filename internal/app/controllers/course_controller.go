package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/middleware"
)

// CourseController handles course authoring by instructors
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse creates a course owned by the calling instructor
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, course)
}

// GetCourse retrieves a single course
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, course)
}

// ListMyCourses retrieves the calling instructor's courses
func (c *CourseController) ListMyCourses(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthorized(ctx)
		return
	}

	courses, err := c.courseService.ListByInstructor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, courses)
}

// DeleteCourse removes a course and all its content. Admins may delete any
// course; instructors only their own.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	ownerID := int64(0)
	if role, _ := ctx.Get("role"); role != "Admin" {
		userID, ok := middleware.UserID(ctx)
		if !ok {
			middleware.HandleAPIError(ctx, nil)
			return
		}
		ownerID = userID
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id, ownerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Course deleted"})
}
