package models

// Department represents an organizational unit courses and users belong to.
// Row id 1 is the reserved "General" department.
type Department struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// IsSentinel reports whether this is the protected default row.
func (d *Department) IsSentinel() bool {
	return d.ID == GeneralDepartmentID
}
