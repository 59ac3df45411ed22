package models

// Role defines the user role stored in the users table. Locked is a real
// role value: locked accounts keep their data but cannot log in.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleInstructor Role = "Instructor"
	RoleStudent    Role = "Student"
	RoleLocked     Role = "Locked"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent, RoleLocked:
		return true
	}
	return false
}

// Sentinel row ids. Department 1 ("General") and academic year 1 ("Default")
// must always exist and act as wildcards in catalog filtering.
const (
	GeneralDepartmentID   int64 = 1
	DefaultAcademicYearID int64 = 1
)
