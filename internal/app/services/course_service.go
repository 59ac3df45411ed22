package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// CourseService manages courses and their lifecycle
type CourseService struct {
	courseRepo  *repositories.CourseRepository
	cascadeRepo *repositories.CascadeRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, cascadeRepo *repositories.CascadeRepository) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		cascadeRepo: cascadeRepo,
	}
}

// CreateCourse creates a course owned by instructorID. Unset department or
// academic-year ids fall back to the sentinel defaults so the course shows
// up in every catalog filter.
func (s *CourseService) CreateCourse(ctx context.Context, instructorID int64, req dto.CreateCourseRequest) (*models.Course, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: course title is required", apperrors.ErrInvalidInput)
	}

	course := &models.Course{
		Title:          title,
		Description:    strings.TrimSpace(req.Description),
		InstructorID:   instructorID,
		CourseImage:    req.CourseImage,
		DepartmentID:   req.DepartmentID,
		AcademicYearID: req.AcademicYearID,
	}
	if course.DepartmentID == 0 {
		course.DepartmentID = models.GeneralDepartmentID
	}
	if course.AcademicYearID == 0 {
		course.AcademicYearID = models.DefaultAcademicYearID
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("courseId", course.ID).
		Int64("instructorId", instructorID).
		Msg("Course created")
	return course, nil
}

// GetCourse retrieves a single course by id
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListByInstructor retrieves courses owned by an instructor
func (s *CourseService) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByInstructor(ctx, instructorID)
}

// DeleteCourse removes a course and everything beneath it: modules,
// assignments and submissions go in the same transaction. Only the owning
// instructor (or an admin acting with ownerID 0) may delete.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID, ownerID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if ownerID != 0 && course.InstructorID != ownerID {
		return fmt.Errorf("%w: course %d belongs to another instructor", apperrors.ErrPermissionDenied, courseID)
	}

	if err := s.cascadeRepo.DeleteCourseCascade(ctx, courseID); err != nil {
		return err
	}

	logger.Info().Int64("courseId", courseID).Msg("Course deleted with all content")
	return nil
}
