package models

// User defines the user model based on the 'users' table
type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	Password       string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role           Role   `json:"role" db:"role"`
	ProfileImage   []byte `json:"-" db:"profile_image"` // optional binary blob
	DepartmentID   int64  `json:"departmentId" db:"department_id"`
	AcademicYearID int64  `json:"academicYearId" db:"academic_year_id"`
}

// IsInstructor reports whether the user can own courses.
func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

// IsStudent reports whether the user can submit work.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
