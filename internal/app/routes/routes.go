package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/controllers"
	"github.com/onur/coursespace/internal/app/models"
	"github.com/onur/coursespace/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrls.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin-only: account, department and academic-year administration
	admin := authenticated.Group("")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		users := admin.Group("/users")
		{
			users.POST("", ctrls.UserController.CreateUser)
			users.GET("", ctrls.UserController.ListUsers)
			users.GET("/:id", ctrls.UserController.GetUser)
			users.PUT("/:id", ctrls.UserController.UpdateUser)
			users.DELETE("/:id", ctrls.UserController.DeleteUser)
		}

		departments := admin.Group("/departments")
		{
			departments.POST("", ctrls.AdminController.CreateDepartment)
			departments.DELETE("/:id", ctrls.AdminController.DeleteDepartment)
		}

		years := admin.Group("/academic-years")
		{
			years.POST("", ctrls.AdminController.CreateAcademicYear)
			years.PUT("/:id/active", ctrls.AdminController.SetAcademicYearActive)
			years.DELETE("/:id", ctrls.AdminController.DeleteAcademicYear)
		}
	}

	// Reference data readable by any authenticated user
	authenticated.GET("/departments", ctrls.AdminController.ListDepartments)
	authenticated.GET("/academic-years", ctrls.AdminController.ListAcademicYears)

	// Instructor-only: course authoring, content management and grading
	instructor := authenticated.Group("")
	instructor.Use(authMiddleware.RoleRequired(string(models.RoleInstructor), string(models.RoleAdmin)))
	{
		instructor.POST("/courses", ctrls.CourseController.CreateCourse)
		instructor.GET("/courses/mine", ctrls.CourseController.ListMyCourses)
		instructor.DELETE("/courses/:courseId", ctrls.CourseController.DeleteCourse)

		instructor.POST("/courses/:courseId/modules", ctrls.ContentController.CreateModule)
		instructor.DELETE("/modules/:moduleId", ctrls.ContentController.DeleteModule)

		instructor.POST("/modules/:moduleId/assignments", ctrls.ContentController.CreateAssignment)
		instructor.DELETE("/assignments/:assignmentId", ctrls.ContentController.DeleteAssignment)

		instructor.GET("/submissions", ctrls.GradingController.ListSubmissions)
		instructor.GET("/submissions/:submissionId/file", ctrls.ContentController.OpenSubmission)
		instructor.PUT("/submissions/:submissionId/grade", ctrls.GradingController.GradeSubmission)
		instructor.GET("/students/:studentId/grades", ctrls.GradingController.StudentGradeReport)
	}

	// Content readable by any authenticated user
	authenticated.GET("/courses/:courseId", ctrls.CourseController.GetCourse)
	authenticated.GET("/courses/:courseId/modules", ctrls.ContentController.ListModules)
	authenticated.GET("/modules/:moduleId/file", ctrls.ContentController.OpenModule)
	authenticated.GET("/modules/:moduleId/assignments", ctrls.ContentController.ListAssignments)
	authenticated.GET("/assignments/:assignmentId/file", ctrls.ContentController.OpenInstructions)

	// Student-only: catalog, submissions and the grade report
	student := authenticated.Group("")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/catalog", ctrls.CatalogController.Catalog)
		student.POST("/assignments/:assignmentId/submissions", ctrls.ContentController.SubmitAssignment)
		student.GET("/grades", ctrls.GradingController.MyGradeReport)
	}
}
