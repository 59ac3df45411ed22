package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/pkg/apperrors"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db DBTX
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (module_id, description, max_score, due_date, instruction_data, file_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		assignment.ModuleID,
		assignment.Description,
		assignment.MaxScore,
		assignment.DueDate,
		assignment.InstructionData,
		assignment.FileType,
	).Scan(&assignment.ID)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by ID, including its instruction blob
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `
		SELECT id, module_id, description, max_score, due_date, instruction_data, COALESCE(file_type, '')
		FROM assignments
		WHERE id = $1
	`

	var assignment models.Assignment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.ModuleID,
		&assignment.Description,
		&assignment.MaxScore,
		&assignment.DueDate,
		&assignment.InstructionData,
		&assignment.FileType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("assignment %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return &assignment, nil
}

// GetByModule retrieves all assignments of a module without instruction
// blobs
func (r *AssignmentRepository) GetByModule(ctx context.Context, moduleID int64) ([]*models.Assignment, error) {
	query := `
		SELECT id, module_id, description, max_score, due_date, COALESCE(file_type, '')
		FROM assignments
		WHERE module_id = $1
		ORDER BY due_date
	`

	rows, err := r.db.Query(ctx, query, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.ModuleID,
			&assignment.Description,
			&assignment.MaxScore,
			&assignment.DueDate,
			&assignment.FileType,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
