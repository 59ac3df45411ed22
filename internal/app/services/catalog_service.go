package services

import (
	"context"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/repositories"
)

// CatalogService lists the courses visible to a student. A course is
// visible when its department matches the student's or is the General
// department, and likewise for the academic year, so sentinel-tagged
// courses appear in every catalog.
type CatalogService struct {
	courseRepo *repositories.CourseRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(courseRepo *repositories.CourseRepository) *CatalogService {
	return &CatalogService{courseRepo: courseRepo}
}

// CatalogFor returns the catalog for a student's department and year.
// Zero ids are treated as the sentinels, matching only sentinel-tagged
// courses.
func (s *CatalogService) CatalogFor(ctx context.Context, departmentID, academicYearID int64) ([]*models.Course, error) {
	if departmentID == 0 {
		departmentID = models.GeneralDepartmentID
	}
	if academicYearID == 0 {
		academicYearID = models.DefaultAcademicYearID
	}
	return s.courseRepo.GetCatalog(ctx, departmentID, academicYearID)
}
