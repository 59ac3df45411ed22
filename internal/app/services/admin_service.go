package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// AdminService manages departments and academic years. Department 1
// ("General") and academic year 1 ("Default") are sentinel rows: courses
// and users fall back to them, so deletion requests for them are rejected
// before any SQL is issued.
type AdminService struct {
	departmentRepo *repositories.DepartmentRepository
	yearRepo       *repositories.AcademicYearRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(departmentRepo *repositories.DepartmentRepository, yearRepo *repositories.AcademicYearRepository) *AdminService {
	return &AdminService{
		departmentRepo: departmentRepo,
		yearRepo:       yearRepo,
	}
}

// CreateDepartment creates a department with a unique name
func (s *AdminService) CreateDepartment(ctx context.Context, name string, description *string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", apperrors.ErrInvalidInput)
	}

	department := &models.Department{Name: name, Description: description}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListDepartments retrieves all departments
func (s *AdminService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// DeleteDepartment removes a department. The General department cannot be
// deleted.
func (s *AdminService) DeleteDepartment(ctx context.Context, id int64) error {
	if id == models.GeneralDepartmentID {
		return fmt.Errorf("%w: department %d is the General department", apperrors.ErrSentinelProtected, id)
	}
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}

// CreateAcademicYear creates an academic year with a unique name
func (s *AdminService) CreateAcademicYear(ctx context.Context, yearName string, isActive bool) (*models.AcademicYear, error) {
	yearName = strings.TrimSpace(yearName)
	if yearName == "" {
		return nil, fmt.Errorf("%w: year name is required", apperrors.ErrInvalidInput)
	}

	year := &models.AcademicYear{YearName: yearName, IsActive: isActive}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

// ListAcademicYears retrieves all academic years
func (s *AdminService) ListAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetAll(ctx)
}

// ListActiveAcademicYears retrieves only the years open for assignment
func (s *AdminService) ListActiveAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetActive(ctx)
}

// SetAcademicYearActive toggles a year's active flag
func (s *AdminService) SetAcademicYearActive(ctx context.Context, id int64, active bool) error {
	return s.yearRepo.SetActive(ctx, id, active)
}

// DeleteAcademicYear removes an academic year. The Default year cannot be
// deleted.
func (s *AdminService) DeleteAcademicYear(ctx context.Context, id int64) error {
	if id == models.DefaultAcademicYearID {
		return fmt.Errorf("%w: academic year %d is the Default year", apperrors.ErrSentinelProtected, id)
	}
	if err := s.yearRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("academicYearId", id).Msg("Academic year deleted")
	return nil
}
