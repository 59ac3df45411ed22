package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/apperrors"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// GradingService handles score entry and grade reporting
type GradingService struct {
	submissionRepo *repositories.SubmissionRepository
}

// NewGradingService creates a new grading service instance
func NewGradingService(submissionRepo *repositories.SubmissionRepository) *GradingService {
	return &GradingService{submissionRepo: submissionRepo}
}

// ParseScore converts grader input into a score. The raw value comes from a
// text field, so whitespace is tolerated but anything non-numeric or
// negative is rejected before the database is touched.
func ParseScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: score is required", apperrors.ErrInvalidScore)
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", apperrors.ErrInvalidScore, raw)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: score cannot be negative", apperrors.ErrInvalidScore)
	}
	return score, nil
}

// PartitionSubmissions splits submissions into pending and graded groups,
// preserving the input order within each group.
func PartitionSubmissions(details []models.SubmissionDetail) dto.SubmissionListResponse {
	out := dto.SubmissionListResponse{
		Pending: []models.SubmissionDetail{},
		Graded:  []models.SubmissionDetail{},
	}
	for _, d := range details {
		if d.Graded() {
			out.Graded = append(out.Graded, d)
		} else {
			out.Pending = append(out.Pending, d)
		}
	}
	return out
}

// BuildGradeReport renders grade rows for display. Ungraded rows show
// "Pending" and are excluded from both totals, so a report full of pending
// work reads 0/0 rather than implying a failing grade.
func BuildGradeReport(rows []models.GradeRow) dto.GradeReportResponse {
	report := dto.GradeReportResponse{Rows: make([]dto.GradeReportRow, 0, len(rows))}
	for _, row := range rows {
		display := dto.GradeReportRow{
			CourseTitle:           row.CourseTitle,
			AssignmentDescription: row.AssignmentDescription,
			MaxScore:              row.MaxScore,
		}
		if row.Score != nil {
			display.Score = strconv.Itoa(*row.Score)
			report.TotalEarned += *row.Score
			report.TotalPossible += row.MaxScore
		} else {
			display.Score = "Pending"
		}
		if row.FeedbackText != nil {
			display.Feedback = *row.FeedbackText
		}
		report.Rows = append(report.Rows, display)
	}
	return report
}

// ListSubmissions returns all submissions partitioned for the grading
// screen. When studentID is non-nil the list is restricted to that student.
func (s *GradingService) ListSubmissions(ctx context.Context, studentID *int64) (dto.SubmissionListResponse, error) {
	details, err := s.submissionRepo.ListDetails(ctx, studentID)
	if err != nil {
		return dto.SubmissionListResponse{}, err
	}
	return PartitionSubmissions(details), nil
}

// GradeSubmission records a score and feedback on a submission. The score
// must parse as a non-negative integer and may not exceed the assignment's
// maximum; invalid input leaves the submission untouched.
func (s *GradingService) GradeSubmission(ctx context.Context, submissionID int64, req dto.GradeSubmissionRequest) error {
	score, err := ParseScore(req.Score)
	if err != nil {
		return err
	}

	maxScore, err := s.submissionRepo.MaxScoreFor(ctx, submissionID)
	if err != nil {
		return err
	}
	if score > maxScore {
		return fmt.Errorf("%w: score %d exceeds maximum %d", apperrors.ErrInvalidScore, score, maxScore)
	}

	if err := s.submissionRepo.SetGrade(ctx, submissionID, score, strings.TrimSpace(req.Feedback)); err != nil {
		return err
	}

	logger.Info().
		Int64("submissionId", submissionID).
		Int("score", score).
		Msg("Submission graded")
	return nil
}

// GradeReport builds a student's grade report across all their courses
func (s *GradingService) GradeReport(ctx context.Context, studentID int64) (dto.GradeReportResponse, error) {
	rows, err := s.submissionRepo.ListGradeRows(ctx, studentID)
	if err != nil {
		return dto.GradeReportResponse{}, err
	}
	return BuildGradeReport(rows), nil
}
