package models

import "time"

// Module is a unit of course content, child of exactly one course. The
// content itself is stored as an opaque blob with a short file-type tag used
// only to pick an extension when the blob is materialized for viewing.
type Module struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	Title      string    `json:"title" db:"title"`
	ModuleData []byte    `json:"-" db:"module_data"`
	FileType   string    `json:"fileType" db:"file_type"`
	UploadDate time.Time `json:"uploadDate" db:"upload_date"`
}
