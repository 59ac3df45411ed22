package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/app/services"
)

// Controllers holds all controller instances
type Controllers struct {
	AuthController    *AuthController
	UserController    *UserController
	AdminController   *AdminController
	CourseController  *CourseController
	ContentController *ContentController
	GradingController *GradingController
	CatalogController *CatalogController
}

// NewControllers wires every controller with its services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:    NewAuthController(svcs.AuthService),
		UserController:    NewUserController(svcs.UserService),
		AdminController:   NewAdminController(svcs.AdminService),
		CourseController:  NewCourseController(svcs.CourseService),
		ContentController: NewContentController(svcs.ContentService),
		GradingController: NewGradingController(svcs.GradingService),
		CatalogController: NewCatalogController(svcs.CatalogService),
	}
}

// parseIDParam reads a path parameter as an id, rejecting the request
// itself when the value is not a number. The bool result reports success.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func bindError(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func unauthorized(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: data, Timestamp: time.Now()})
}

func respondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: data, Timestamp: time.Now()})
}
