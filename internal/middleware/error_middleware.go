package middleware

import (
	"errors"
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// MsgInternalServerError is the body of every unexpected failure
const MsgInternalServerError = "Internal server error"

type apiError struct {
	status  int
	code    dto.ErrorCode
	message string
}

// classifyError maps an application error onto status, code and default message
func classifyError(err error) apiError {
	switch {
	case errors.Is(err, apperrors.ErrInvalidStatus):
		return apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid status value"}
	case errors.Is(err, apperrors.ErrValidationFailed):
		return apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"}
	case errors.Is(err, apperrors.ErrConflict):
		return apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"}
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"}
	case errors.Is(err, apperrors.ErrTokenMissing):
		return apiError{http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, MsgNoToken}
	case errors.Is(err, apperrors.ErrTokenExpired):
		return apiError{http.StatusForbidden, dto.ErrorCodeExpiredToken, MsgInvalidToken}
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return apiError{http.StatusForbidden, dto.ErrorCodeInvalidToken, MsgInvalidToken}
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return apiError{http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"}
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"}
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found"}
	case errors.Is(err, apperrors.ErrAdminNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admin not found"}
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Complaint not found"}
	case errors.Is(err, apperrors.ErrInventoryItemNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"}
	default:
		return apiError{http.StatusInternalServerError, dto.ErrorCodeInternalServer, MsgInternalServerError}
	}
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithFallback(c, err, MsgInternalServerError)
}

// HandleAPIErrorWithFallback is HandleAPIError with a caller-chosen message
// for unexpected failures. The underlying error is logged, never returned.
func HandleAPIErrorWithFallback(c *gin.Context, err error, fallback string) {
	e := classifyError(err)

	if e.status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestId", c.GetString(ContextKeyRequestID)).
			Msg("Request failed")
		c.AbortWithStatusJSON(e.status, dto.NewErrorResponse(e.code, fallback))
		return
	}

	resp := dto.NewErrorResponse(e.code, apperrors.MessageOf(err, e.message))
	if field := apperrors.FieldOf(err); field != "" {
		resp.WithField(field)
	}
	c.AbortWithStatusJSON(e.status, resp)
}

// NoRouteHandler answers unknown routes with a JSON 404
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Route not found"))
	}
}

// Recovery converts a panic in any handler into a generic JSON 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(ContextKeyRequestID)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, MsgInternalServerError))
	})
}
