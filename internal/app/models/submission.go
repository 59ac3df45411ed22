package models

import "time"

// Submission is a student's uploaded answer to an assignment. A nil Score
// means the submission is still pending; once graded, Score holds a value in
// [0, assignment max score] and FeedbackText may carry grader comments.
type Submission struct {
	ID             int64   `json:"id" db:"id"`
	AssignmentID   int64   `json:"assignmentId" db:"assignment_id"`
	StudentID      int64   `json:"studentId" db:"student_id"`
	SubmissionData []byte  `json:"-" db:"submission_data"`
	FileType       string  `json:"fileType" db:"file_type"`
	Score          *int    `json:"score,omitempty" db:"score"`
	FeedbackText   *string `json:"feedbackText,omitempty" db:"feedback_text"`
}

// Graded reports whether a score has been recorded.
func (s *Submission) Graded() bool {
	return s.Score != nil
}

// SubmissionDetail is a submission joined with its assignment and student,
// as shown on the grading screen.
type SubmissionDetail struct {
	ID                    int64     `json:"id"`
	StudentID             int64     `json:"studentId"`
	Username              string    `json:"username"`
	AssignmentID          int64     `json:"assignmentId"`
	AssignmentDescription string    `json:"assignmentDescription"`
	DueDate               time.Time `json:"dueDate"`
	FileType              string    `json:"fileType"`
	Score                 *int      `json:"score,omitempty"`
	FeedbackText          *string   `json:"feedbackText,omitempty"`
}

// Graded reports whether a score has been recorded.
func (s *SubmissionDetail) Graded() bool {
	return s.Score != nil
}

// GradeRow is one line of a student's grade report: a submission joined
// through its assignment, module and course.
type GradeRow struct {
	CourseTitle           string  `json:"courseTitle"`
	AssignmentDescription string  `json:"assignmentDescription"`
	MaxScore              int     `json:"maxScore"`
	Score                 *int    `json:"score,omitempty"`
	FeedbackText          *string `json:"feedbackText,omitempty"`
}
