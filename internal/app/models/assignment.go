package models

import "time"

// Assignment belongs to exactly one module. The instruction blob is
// optional; max score bounds the score a grader may record on submissions.
type Assignment struct {
	ID              int64     `json:"id" db:"id"`
	ModuleID        int64     `json:"moduleId" db:"module_id"`
	Description     string    `json:"description" db:"description"`
	MaxScore        int       `json:"maxScore" db:"max_score"`
	DueDate         time.Time `json:"dueDate" db:"due_date"`
	InstructionData []byte    `json:"-" db:"instruction_data"`
	FileType        string    `json:"fileType" db:"file_type"`
}
