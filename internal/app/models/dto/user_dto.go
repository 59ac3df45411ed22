package dto

// CreateUserRequest is the admin request to create an account
type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=4"`
	Role           string `json:"role" binding:"required,oneof=Admin Instructor Student Locked"`
	DepartmentID   int64  `json:"departmentId"`
	AcademicYearID int64  `json:"academicYearId"`
}

// UpdateUserRequest updates a user's profile. A nil field keeps the stored
// value; Password, when set, is re-hashed.
type UpdateUserRequest struct {
	Password       *string `json:"password,omitempty" binding:"omitempty,min=4"`
	Role           *string `json:"role,omitempty" binding:"omitempty,oneof=Admin Instructor Student Locked"`
	DepartmentID   *int64  `json:"departmentId,omitempty"`
	AcademicYearID *int64  `json:"academicYearId,omitempty"`
	ProfileImage   []byte  `json:"profileImage,omitempty"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	DepartmentID   int64  `json:"departmentId"`
	AcademicYearID int64  `json:"academicYearId"`
	HasImage       bool   `json:"hasImage"`
}
