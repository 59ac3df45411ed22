package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/pkg/apperrors"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain number", raw: "8", want: 8},
		{name: "zero is valid", raw: "0", want: 0},
		{name: "surrounding whitespace", raw: "  42 ", want: 42},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "non-numeric", raw: "abc", wantErr: true},
		{name: "decimal", raw: "7.5", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidScore)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartitionSubmissions(t *testing.T) {
	details := []models.SubmissionDetail{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob", Score: intPtr(9)},
		{ID: 3, Username: "carol"},
		{ID: 4, Username: "dave", Score: intPtr(0)},
	}

	got := PartitionSubmissions(details)

	require.Len(t, got.Pending, 2)
	require.Len(t, got.Graded, 2)
	assert.Equal(t, int64(1), got.Pending[0].ID)
	assert.Equal(t, int64(3), got.Pending[1].ID)
	assert.Equal(t, int64(2), got.Graded[0].ID)
	// A recorded zero counts as graded, not pending.
	assert.Equal(t, int64(4), got.Graded[1].ID)
}

func TestPartitionSubmissionsEmpty(t *testing.T) {
	got := PartitionSubmissions(nil)

	assert.NotNil(t, got.Pending)
	assert.NotNil(t, got.Graded)
	assert.Empty(t, got.Pending)
	assert.Empty(t, got.Graded)
}

func TestBuildGradeReportTotals(t *testing.T) {
	rows := []models.GradeRow{
		{CourseTitle: "Databases", AssignmentDescription: "ER diagram", MaxScore: 10, Score: intPtr(8), FeedbackText: strPtr("Good work")},
		{CourseTitle: "Databases", AssignmentDescription: "Final project", MaxScore: 20},
	}

	report := BuildGradeReport(rows)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "8", report.Rows[0].Score)
	assert.Equal(t, "Good work", report.Rows[0].Feedback)
	assert.Equal(t, "Pending", report.Rows[1].Score)
	assert.Equal(t, 20, report.Rows[1].MaxScore)

	// Pending rows contribute to neither total.
	assert.Equal(t, 8, report.TotalEarned)
	assert.Equal(t, 10, report.TotalPossible)
}

func TestBuildGradeReportAllPending(t *testing.T) {
	rows := []models.GradeRow{
		{CourseTitle: "Networks", AssignmentDescription: "Lab 1", MaxScore: 15},
		{CourseTitle: "Networks", AssignmentDescription: "Lab 2", MaxScore: 15},
	}

	report := BuildGradeReport(rows)

	assert.Equal(t, 0, report.TotalEarned)
	assert.Equal(t, 0, report.TotalPossible)
	for _, row := range report.Rows {
		assert.Equal(t, "Pending", row.Score)
	}
}

func TestBuildGradeReportZeroScoreCounts(t *testing.T) {
	rows := []models.GradeRow{
		{CourseTitle: "Networks", AssignmentDescription: "Lab 1", MaxScore: 15, Score: intPtr(0)},
	}

	report := BuildGradeReport(rows)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "0", report.Rows[0].Score)
	assert.Equal(t, 0, report.TotalEarned)
	assert.Equal(t, 15, report.TotalPossible)
}

func TestBuildGradeReportEmpty(t *testing.T) {
	report := BuildGradeReport(nil)

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0, report.TotalEarned)
	assert.Equal(t, 0, report.TotalPossible)
}
