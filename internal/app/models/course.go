package models

// Course defines the course model based on the 'courses' table. Each course
// is owned by exactly one instructor; department and academic year default to
// the sentinel rows for courses visible to everyone.
type Course struct {
	ID             int64  `json:"id" db:"id"`
	Title          string `json:"title" db:"title"`
	Description    string `json:"description" db:"description"`
	InstructorID   int64  `json:"instructorId" db:"instructor_id"`
	CourseImage    []byte `json:"-" db:"course_image"`
	DepartmentID   int64  `json:"departmentId" db:"department_id"`
	AcademicYearID int64  `json:"academicYearId" db:"academic_year_id"`
}
