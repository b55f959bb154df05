package csvlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

var header = []string{"EmpID", "Name", "Action", "Timestamp"}

// EventLog is the CSV-file implementation of attendance.EventLog. Rows are
// only ever appended; the file is created with a header row on first append.
// A process-local mutex serializes writers; coordination across processes is
// an accepted limitation of the format.
type EventLog struct {
	path string
	mu   sync.Mutex
}

func New(path string) *EventLog {
	return &EventLog{path: path}
}

// Append implements attendance.EventLog. Success is only reported after the
// row has been flushed and fsynced.
func (l *EventLog) Append(ctx context.Context, event attendance.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat event log: %w", err)
	}

	w := csv.NewWriter(f)
	if stat.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("failed to write event log header: %w", err)
		}
	}

	record := []string{
		event.EmployeeID,
		event.EmployeeName,
		event.Action,
		event.Instant.UTC().Format(time.RFC3339Nano),
	}
	if err := w.Write(record); err != nil {
		f.Close()
		return fmt.Errorf("failed to write event: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush event: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync event log: %w", err)
	}

	return f.Close()
}

// ReadAll implements attendance.EventLog. Malformed rows are skipped so that
// one corrupt record never aborts a whole report; a log that does not exist
// yet reads as empty.
func (l *EventLog) ReadAll(ctx context.Context) ([]attendance.Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var events []attendance.Event
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Corrupt row, keep scanning
				continue
			}
			return nil, fmt.Errorf("failed to read event log: %w", err)
		}

		event, ok := parseRecord(record)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// parseRecord turns one CSV row into an event. Header rows, rows with the
// wrong arity, unknown actions and unparsable timestamps all report !ok.
func parseRecord(record []string) (attendance.Event, bool) {
	if len(record) != len(header) {
		return attendance.Event{}, false
	}
	if record[0] == header[0] && record[2] == header[2] {
		return attendance.Event{}, false
	}
	if !validator.IsInSlice(record[2], []string{attendance.ActionCheckIn, attendance.ActionCheckOut}) {
		return attendance.Event{}, false
	}

	instant, ok := validator.IsValidDateTime(record[3])
	if !ok {
		// Includes legacy naive local timestamps without an offset:
		// skipped rather than guessed at.
		return attendance.Event{}, false
	}

	return attendance.Event{
		EmployeeID:   record[0],
		EmployeeName: record[1],
		Action:       record[2],
		Instant:      instant.UTC(),
	}, true
}
