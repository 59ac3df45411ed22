package dto

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the user's identity
type LoginResponse struct {
	Token          string `json:"token"`
	ExpiresIn      int    `json:"expiresIn"`
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	DepartmentID   int64  `json:"departmentId"`
	AcademicYearID int64  `json:"academicYearId"`
}
