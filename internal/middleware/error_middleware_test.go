package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"incorrect password", apperrors.ErrIncorrectPassword, http.StatusUnauthorized, "Incorrect password"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "A staff member with this email already exists."},
		{"duplicate student", apperrors.ErrStudentNumberExists, http.StatusBadRequest, "A student with this Register No. or Roll No. already exists."},
		{"staff missing", apperrors.ErrStaffNotFound, http.StatusNotFound, "Staff member not found"},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
		{"lesson plan missing", apperrors.ErrLessonPlanNotFound, http.StatusNotFound, "File not found"},
		{"timetable entry missing", apperrors.ErrTimetableEntryNotFound, http.StatusNotFound, "Timetable entry not found"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w := performWithError(apperrors.NewBadRequestError("No attendance data provided"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No attendance data provided", body["message"])
}
