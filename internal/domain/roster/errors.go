package roster

import "errors"

// Roster domain errors
var (
	ErrRosterUnavailable = errors.New("roster source is missing or unreadable")
	ErrRosterEmpty       = errors.New("roster source contains no employees")
)
