package report

import (
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY SUMMARY
// ========================================

type DailySummaryRequest struct {
	Date string `json:"date"`
}

func (r *DailySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("date %q must be in YYYY-MM-DD format", r.Date),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// MONTHLY SUMMARY
// ========================================

type MonthlySummaryRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// SUMMARY ROWS
// ========================================

// SessionRow is one matched worked interval. CheckOut is nil for an open
// session (a check-in with no later check-out), which contributes zero to the
// total.
type SessionRow struct {
	CheckIn  string  `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Duration string  `json:"duration"`
	Open     bool    `json:"open"`
}

// SummaryRow is one (employee, period) rollup. FirstCheckIn and LastCheckOut
// are nil when the group has no events of that action, rather than erroring.
type SummaryRow struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Period       string       `json:"period"`
	FirstCheckIn *string      `json:"first_check_in"`
	LastCheckOut *string      `json:"last_check_out"`
	TotalWorked  string       `json:"total_worked"`
	Sessions     []SessionRow `json:"sessions,omitempty"`
}

type SummaryReport struct {
	PeriodKind  string       `json:"period_kind"` // "daily" or "monthly"
	Period      string       `json:"period"`
	GeneratedAt string       `json:"generated_at"`
	Rows        []SummaryRow `json:"rows"`
}
