package dto

import "github.com/onur/coursespace/internal/app/models"

// GradeSubmissionRequest records a score and feedback on one submission.
// Score arrives as text because graders type it; parsing and range checks
// happen in the grading service.
type GradeSubmissionRequest struct {
	Score    string `json:"score" binding:"required"`
	Feedback string `json:"feedback"`
}

// SubmissionListResponse partitions submissions for the grading screen
type SubmissionListResponse struct {
	Pending []models.SubmissionDetail `json:"pending"`
	Graded  []models.SubmissionDetail `json:"graded"`
}

// GradeReportRow is one display line of a student's grade report. Score is
// rendered as text so ungraded entries can show "Pending" instead of 0.
type GradeReportRow struct {
	CourseTitle           string `json:"courseTitle"`
	AssignmentDescription string `json:"assignmentDescription"`
	Score                 string `json:"score"`
	MaxScore              int    `json:"maxScore"`
	Feedback              string `json:"feedback"`
}

// GradeReportResponse is a student's full grade report. Totals cover graded
// entries only; pending submissions contribute to neither sum.
type GradeReportResponse struct {
	Rows          []GradeReportRow `json:"rows"`
	TotalEarned   int              `json:"totalEarned"`
	TotalPossible int              `json:"totalPossible"`
}
