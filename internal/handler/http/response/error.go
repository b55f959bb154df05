package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrEmployeeNotInRoster):
		NotFound(w, "Invalid Employee ID or Name")
	case errors.Is(err, attendance.ErrAppendFailed):
		// The caller must never be told a lost event was recorded
		InternalServerError(w, "Attendance was not recorded, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
