package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/pkg/apperrors"
)

// ModuleRepository handles database operations for course modules
type ModuleRepository struct {
	db DBTX
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db DBTX) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// Create creates a new module
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	query := `
		INSERT INTO modules (course_id, title, module_data, file_type, upload_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		module.CourseID,
		module.Title,
		module.ModuleData,
		module.FileType,
		module.UploadDate,
	).Scan(&module.ID)
	if err != nil {
		return fmt.Errorf("error creating module: %w", err)
	}

	return nil
}

// GetByID retrieves a module by ID, including its content blob
func (r *ModuleRepository) GetByID(ctx context.Context, id int64) (*models.Module, error) {
	query := `
		SELECT id, course_id, title, module_data, COALESCE(file_type, ''), upload_date
		FROM modules
		WHERE id = $1
	`

	var module models.Module
	err := r.db.QueryRow(ctx, query, id).Scan(
		&module.ID,
		&module.CourseID,
		&module.Title,
		&module.ModuleData,
		&module.FileType,
		&module.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("module %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving module: %w", err)
	}

	return &module, nil
}

// GetByCourse retrieves all modules of a course without their content
// blobs. Blobs can be large; listings only need metadata.
func (r *ModuleRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Module, error) {
	query := `
		SELECT id, course_id, title, COALESCE(file_type, ''), upload_date
		FROM modules
		WHERE course_id = $1
		ORDER BY upload_date
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(
			&module.ID,
			&module.CourseID,
			&module.Title,
			&module.FileType,
			&module.UploadDate,
		); err != nil {
			return nil, err
		}
		modules = append(modules, &module)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return modules, nil
}
