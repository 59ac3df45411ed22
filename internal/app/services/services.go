package services

import (
	"github.com/onur/coursespace/internal/app/repositories"
	"github.com/onur/coursespace/internal/pkg/auth"
	"github.com/onur/coursespace/internal/pkg/filestorage"
)

// Services holds all service instances
type Services struct {
	AuthService    *AuthService
	UserService    *UserService
	AdminService   *AdminService
	CourseService  *CourseService
	ContentService *ContentService
	GradingService *GradingService
	CatalogService *CatalogService
}

// NewServices wires every service with its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, materializer *filestorage.TempMaterializer) *Services {
	return &Services{
		AuthService:  NewAuthService(repos.UserRepository, jwtService),
		UserService:  NewUserService(repos.UserRepository, repos.CascadeRepository),
		AdminService: NewAdminService(repos.DepartmentRepository, repos.AcademicYearRepository),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.CascadeRepository,
		),
		ContentService: NewContentService(
			repos.ModuleRepository,
			repos.AssignmentRepository,
			repos.SubmissionRepository,
			repos.CascadeRepository,
			materializer,
		),
		GradingService: NewGradingService(repos.SubmissionRepository),
		CatalogService: NewCatalogService(repos.CourseRepository),
	}
}
