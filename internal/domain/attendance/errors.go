package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmployeeNotInRoster = errors.New("employee ID or name not found in roster")
	ErrAppendFailed        = errors.New("failed to record attendance event")
)
