package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/middleware"
)

// AdminController handles department and academic-year administration
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// CreateDepartment creates a department
func (c *AdminController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid department data", err)
		return
	}

	department, err := c.adminService.CreateDepartment(ctx.Request.Context(), req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, department)
}

// ListDepartments retrieves all departments
func (c *AdminController) ListDepartments(ctx *gin.Context) {
	departments, err := c.adminService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, departments)
}

// DeleteDepartment removes a department
func (c *AdminController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteDepartment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Department deleted"})
}

// CreateAcademicYear creates an academic year
func (c *AdminController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid academic year data", err)
		return
	}

	year, err := c.adminService.CreateAcademicYear(ctx.Request.Context(), req.YearName, req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, year)
}

// ListAcademicYears retrieves all academic years. With ?active=true only
// the years open for assignment are returned.
func (c *AdminController) ListAcademicYears(ctx *gin.Context) {
	var (
		years interface{}
		err   error
	)
	if ctx.Query("active") == "true" {
		years, err = c.adminService.ListActiveAcademicYears(ctx.Request.Context())
	} else {
		years, err = c.adminService.ListAcademicYears(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, years)
}

// SetAcademicYearActive toggles a year's active flag
func (c *AdminController) SetAcademicYearActive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetYearActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid request data", err)
		return
	}

	if err := c.adminService.SetAcademicYearActive(ctx.Request.Context(), id, req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Academic year updated"})
}

// DeleteAcademicYear removes an academic year
func (c *AdminController) DeleteAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAcademicYear(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Academic year deleted"})
}
