package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, title, description, instructor_id, course_image, department_id, academic_year_id`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.InstructorID,
		&course.CourseImage,
		&course.DepartmentID,
		&course.AcademicYearID,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description, instructor_id, course_image, department_id, academic_year_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.InstructorID,
		course.CourseImage,
		course.DepartmentID,
		course.AcademicYearID,
	).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetByInstructor retrieves all courses owned by an instructor
func (r *CourseRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return r.list(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE instructor_id = $1 ORDER BY id`,
		instructorID)
}

// GetCatalog retrieves the courses visible to a student with the given
// affiliation. The sentinel ids act as wildcards: courses in department 1 or
// academic year 1 are visible to everyone regardless of affiliation.
func (r *CourseRepository) GetCatalog(ctx context.Context, departmentID, academicYearID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE (department_id = $1 OR department_id = $3)
		  AND (academic_year_id = $2 OR academic_year_id = $4)
		ORDER BY id
	`
	return r.list(ctx, query,
		departmentID, academicYearID,
		models.GeneralDepartmentID, models.DefaultAcademicYearID)
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...any) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
