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

// SubmissionRepository handles database operations for submissions and the
// grading queries built on top of them
type SubmissionRepository struct {
	db DBTX
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create records a student's submission. Score stays NULL until graded.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, submission_data, file_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		submission.AssignmentID,
		submission.StudentID,
		submission.SubmissionData,
		submission.FileType,
	).Scan(&submission.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("assignment or student does not exist")
		}
		return fmt.Errorf("error creating submission: %w", err)
	}

	return nil
}

// GetByID retrieves a submission by ID, including its blob
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	query := `
		SELECT id, assignment_id, student_id, submission_data, COALESCE(file_type, ''), score, feedback_text
		FROM submissions
		WHERE id = $1
	`

	var submission models.Submission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.StudentID,
		&submission.SubmissionData,
		&submission.FileType,
		&submission.Score,
		&submission.FeedbackText,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("submission %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &submission, nil
}

// ListDetails retrieves submissions joined with their assignment and
// student for the grading screen. A non-nil studentID narrows the join to
// one student.
func (r *SubmissionRepository) ListDetails(ctx context.Context, studentID *int64) ([]models.SubmissionDetail, error) {
	query := `
		SELECT s.id, s.student_id, u.username, a.id, a.description, a.due_date, COALESCE(s.file_type, ''), s.score, s.feedback_text
		FROM submissions s
		JOIN assignments a ON s.assignment_id = a.id
		JOIN users u ON s.student_id = u.id
	`
	var args []any
	if studentID != nil {
		query += ` WHERE s.student_id = $1`
		args = append(args, *studentID)
	}
	query += ` ORDER BY s.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.SubmissionDetail
	for rows.Next() {
		var d models.SubmissionDetail
		if err := rows.Scan(
			&d.ID,
			&d.StudentID,
			&d.Username,
			&d.AssignmentID,
			&d.AssignmentDescription,
			&d.DueDate,
			&d.FileType,
			&d.Score,
			&d.FeedbackText,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// ListGradeRows retrieves a student's submissions joined through
// assignments, modules and courses for the grade report.
func (r *SubmissionRepository) ListGradeRows(ctx context.Context, studentID int64) ([]models.GradeRow, error) {
	query := `
		SELECT c.title, a.description, a.max_score, s.score, s.feedback_text
		FROM submissions s
		JOIN assignments a ON s.assignment_id = a.id
		JOIN modules m ON a.module_id = m.id
		JOIN courses c ON m.course_id = c.id
		WHERE s.student_id = $1
		ORDER BY c.title, a.due_date
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gradeRows []models.GradeRow
	for rows.Next() {
		var row models.GradeRow
		if err := rows.Scan(
			&row.CourseTitle,
			&row.AssignmentDescription,
			&row.MaxScore,
			&row.Score,
			&row.FeedbackText,
		); err != nil {
			return nil, err
		}
		gradeRows = append(gradeRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gradeRows, nil
}

// MaxScoreFor returns the max score of the assignment a submission belongs
// to, for validating grades against the assignment's bound.
func (r *SubmissionRepository) MaxScoreFor(ctx context.Context, submissionID int64) (int, error) {
	query := `
		SELECT a.max_score
		FROM submissions s
		JOIN assignments a ON s.assignment_id = a.id
		WHERE s.id = $1
	`

	var maxScore int
	err := r.db.QueryRow(ctx, query, submissionID).Scan(&maxScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError(fmt.Sprintf("submission %d not found", submissionID))
		}
		return 0, fmt.Errorf("error retrieving submission: %w", err)
	}

	return maxScore, nil
}

// SetGrade records score and feedback on one submission
func (r *SubmissionRepository) SetGrade(ctx context.Context, submissionID int64, score int, feedback string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE submissions SET score = $1, feedback_text = $2 WHERE id = $3`,
		score, feedback, submissionID)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("submission %d not found", submissionID))
	}
	return nil
}
