package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/middleware"
)

// CatalogController serves the course catalog to students
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Catalog lists the courses visible to the calling student, filtered by the
// department and academic year carried in their token
func (c *CatalogController) Catalog(ctx *gin.Context) {
	departmentID, _ := ctx.Get("departmentID")
	academicYearID, _ := ctx.Get("academicYearID")

	deptID, _ := departmentID.(int64)
	yearID, _ := academicYearID.(int64)

	courses, err := c.catalogService.CatalogFor(ctx.Request.Context(), deptID, yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, courses)
}
