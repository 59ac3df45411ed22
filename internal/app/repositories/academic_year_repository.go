package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/dberrors"
)

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db DBTX
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(db DBTX) *AcademicYearRepository {
	return &AcademicYearRepository{db: db}
}

// Create creates a new academic year
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (year_name, is_active)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, year.YearName, year.IsActive).Scan(&year.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewDuplicateError("academic year already exists: " + year.YearName)
		}
		return fmt.Errorf("error creating academic year: %w", err)
	}

	return nil
}

// GetByID retrieves an academic year by ID
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	query := `
		SELECT id, year_name, is_active
		FROM academic_years
		WHERE id = $1
	`

	var year models.AcademicYear
	err := r.db.QueryRow(ctx, query, id).Scan(&year.ID, &year.YearName, &year.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("academic year %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}

	return &year, nil
}

// GetAll retrieves all academic years, newest first
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	return r.list(ctx, `SELECT id, year_name, is_active FROM academic_years ORDER BY id DESC`)
}

// GetActive retrieves academic years currently open for course assignment
func (r *AcademicYearRepository) GetActive(ctx context.Context) ([]*models.AcademicYear, error) {
	return r.list(ctx, `SELECT id, year_name, is_active FROM academic_years WHERE is_active = TRUE ORDER BY id DESC`)
}

func (r *AcademicYearRepository) list(ctx context.Context, query string) ([]*models.AcademicYear, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.YearName, &year.IsActive); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// SetActive toggles an academic year's active flag
func (r *AcademicYearRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE academic_years SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("error updating academic year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("academic year %d not found", id))
	}
	return nil
}

// Delete removes an academic year row. Callers are responsible for the
// sentinel guard.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("academic year %d not found", id))
	}
	return nil
}
