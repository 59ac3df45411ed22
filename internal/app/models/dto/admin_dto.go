package dto

// CreateDepartmentRequest creates a department
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateAcademicYearRequest creates an academic year
type CreateAcademicYearRequest struct {
	YearName string `json:"yearName" binding:"required"`
	IsActive bool   `json:"isActive"`
}

// SetYearActiveRequest toggles an academic year's active flag
type SetYearActiveRequest struct {
	IsActive bool `json:"isActive"`
}
