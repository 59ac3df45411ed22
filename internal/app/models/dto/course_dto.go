package dto

import "time"

// CreateCourseRequest creates a course owned by the calling instructor.
// Zero department/year ids fall back to the sentinel defaults.
type CreateCourseRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	CourseImage    []byte `json:"courseImage,omitempty"`
	DepartmentID   int64  `json:"departmentId"`
	AcademicYearID int64  `json:"academicYearId"`
}

// CreateModuleRequest adds a content module to a course
type CreateModuleRequest struct {
	Title      string `json:"title" binding:"required"`
	ModuleData []byte `json:"moduleData,omitempty"`
	FileType   string `json:"fileType" binding:"omitempty,max=10"`
}

// CreateAssignmentRequest adds an assignment to a module
type CreateAssignmentRequest struct {
	Description     string    `json:"description" binding:"required"`
	MaxScore        int       `json:"maxScore" binding:"required,min=1"`
	DueDate         time.Time `json:"dueDate" binding:"required"`
	InstructionData []byte    `json:"instructionData,omitempty"`
	FileType        string    `json:"fileType" binding:"omitempty,max=10"`
}

// SubmitAssignmentRequest uploads a student's submission
type SubmitAssignmentRequest struct {
	SubmissionData []byte `json:"submissionData" binding:"required"`
	FileType       string `json:"fileType" binding:"omitempty,max=10"`
}
