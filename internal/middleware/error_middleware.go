package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onur/coursespace/internal/app/models/dto"
	"github.com/onur/coursespace/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call
// it instead of building error responses themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", err)
	case errors.Is(err, apperrors.ErrDuplicateEntity):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists", err)
	case errors.Is(err, apperrors.ErrSentinelProtected):
		respond(c, http.StatusForbidden, dto.ErrorCodeSentinelProtected, "Built-in record cannot be deleted", err)
	case errors.Is(err, apperrors.ErrInvalidScore):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidScore, "Invalid score", err)
	case errors.Is(err, apperrors.ErrInvalidInput):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", err)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", err)
	case errors.Is(err, apperrors.ErrAccountLocked):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountLocked, "Account is locked", err)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied", err)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", err)
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token", err)
	case errors.Is(err, apperrors.ErrCascadeDeleteFailed):
		respond(c, http.StatusInternalServerError, dto.ErrorCodeCascadeFailed, "Delete failed, no changes were made", err)
	case errors.Is(err, apperrors.ErrConnectionUnavailable):
		respond(c, http.StatusServiceUnavailable, dto.ErrorCodeInternalServer, "Database unavailable", err)
	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	detail := dto.NewErrorDetail(code, message)
	if err != nil {
		detail = detail.WithDetails(err.Error())
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}
