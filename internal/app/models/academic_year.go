package models

// AcademicYear represents an academic year. Row id 1 is the reserved
// "Default" year. Several years may be active at once.
type AcademicYear struct {
	ID       int64  `json:"id" db:"id"`
	YearName string `json:"yearName" db:"year_name"`
	IsActive bool   `json:"isActive" db:"is_active"`
}

// IsSentinel reports whether this is the protected default row.
func (y *AcademicYear) IsSentinel() bool {
	return y.ID == DefaultAcademicYearID
}
