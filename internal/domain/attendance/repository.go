package attendance

import (
	"context"
)

// EventLog is the append-only, durable sequence of attendance events. There
// is deliberately no update or delete: corrections are out of scope.
type EventLog interface {
	// Append durably writes one event. It must not return success before
	// the write has been flushed to disk, and it never rewrites or
	// reorders prior entries. Appends are serialized within the process;
	// concurrent appends from separate processes are not coordinated.
	Append(ctx context.Context, event Event) error

	// ReadAll returns every event ever appended, in append order. Rows
	// that fail to parse are skipped so that one corrupt record never
	// blocks the rest of the log from being aggregated. A log file that
	// does not exist yet reads as empty.
	ReadAll(ctx context.Context) ([]Event, error)
}
