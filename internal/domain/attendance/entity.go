package attendance

import (
	"time"
)

// Actions as written to the log, matching the file format columns.
const (
	ActionCheckIn  = "Check In"
	ActionCheckOut = "Check Out"
)

// Event is a single recorded check-in or check-out fact. Events are created
// exactly once, never mutated or deleted; their order in the log is their
// append order. Instant is always UTC.
type Event struct {
	EmployeeID   string
	EmployeeName string
	Action       string
	Instant      time.Time
}
