package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/logger"
)

// statusAndMessage maps a service error to its HTTP status and the default
// client-facing message.
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		return http.StatusUnauthorized, "Incorrect password"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusBadRequest, "A staff member with this email already exists."
	case errors.Is(err, apperrors.ErrStudentNumberExists):
		return http.StatusBadRequest, "A student with this Register No. or Roll No. already exists."
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, apperrors.ErrProfileNotFound):
		return http.StatusNotFound, "Profile not found"
	case errors.Is(err, apperrors.ErrStaffNotFound):
		return http.StatusNotFound, "Staff member not found"
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, "Student not found"
	case errors.Is(err, apperrors.ErrTimetableEntryNotFound):
		return http.StatusNotFound, "Timetable entry not found"
	case errors.Is(err, apperrors.ErrLessonPlanNotFound):
		return http.StatusNotFound, "File not found"
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, "Resource not found"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// HandleAPIError writes the failure envelope for a service error. A
// CustomError's message overrides the default for its status.
func HandleAPIError(c *gin.Context, err error) {
	status, message := statusAndMessage(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}

	c.JSON(status, dto.Fail(message))
}
