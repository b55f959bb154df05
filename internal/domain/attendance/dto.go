package attendance

import (
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Action       string `json:"action"`
	RecordedAt   string `json:"recorded_at"`
}

// DayLogFilter selects one reporting-zone calendar day. An empty Date means
// the current day.
type DayLogFilter struct {
	Date string `json:"date"`
}

func (f *DayLogFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Date) {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: fmt.Sprintf("date %q must be in YYYY-MM-DD format", f.Date),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayLogResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}
