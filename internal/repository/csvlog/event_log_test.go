package csvlog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id, name, action string, instant time.Time) attendance.Event {
	return attendance.Event{
		EmployeeID:   id,
		EmployeeName: name,
		Action:       action,
		Instant:      instant,
	}
}

func TestReadAll_MissingFileIsEmpty(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "attendance.csv"))

	events, err := log.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.csv")
	log := New(path)

	instant := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, log.Append(ctx, testEvent("E1", "Jane Doe", attendance.ActionCheckIn, instant)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "EmpID,Name,Action,Timestamp", lines[0])
	assert.Equal(t, "E1,Jane Doe,Check In,2024-05-02T09:00:00Z", lines[1])

	// Second append must not repeat the header.
	require.NoError(t, log.Append(ctx, testEvent("E1", "Jane Doe", attendance.ActionCheckOut, instant.Add(8*time.Hour))))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(string(raw)), "\n")))
}

func TestAppendThenReadAll_RoundTrip(t *testing.T) {
	ctx := context.Background()
	log := New(filepath.Join(t.TempDir(), "attendance.csv"))

	in := testEvent("123", "Alice Smith", attendance.ActionCheckIn, time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC))
	out := testEvent("123", "Alice Smith", attendance.ActionCheckOut, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, log.Append(ctx, in))
	require.NoError(t, log.Append(ctx, out))

	events, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Append order, all fields intact.
	assert.Equal(t, in, events[0])
	assert.Equal(t, out, events[1])
}

func TestAppendThenReadAll_KeepsSubSecondPrecision(t *testing.T) {
	ctx := context.Background()
	log := New(filepath.Join(t.TempDir(), "attendance.csv"))

	// Wall-clock instants carry nanoseconds; none of them may be lost
	// between the write and the read.
	in := testEvent("E1", "Jane Doe", attendance.ActionCheckIn, time.Date(2024, 5, 2, 9, 0, 0, 123456789, time.UTC))
	require.NoError(t, log.Append(ctx, in))

	events, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, in, events[0])
	assert.Equal(t, 123456789, events[0].Instant.Nanosecond())
}

func TestAppend_NormalizesInstantToUTC(t *testing.T) {
	ctx := context.Background()
	log := New(filepath.Join(t.TempDir(), "attendance.csv"))

	jakarta := time.FixedZone("WIB", 7*3600)
	local := time.Date(2024, 5, 2, 16, 0, 0, 0, jakarta)
	require.NoError(t, log.Append(ctx, testEvent("E1", "Jane Doe", attendance.ActionCheckIn, local)))

	events, err := log.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), events[0].Instant)
}

func TestReadAll_SkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.csv")

	content := strings.Join([]string{
		"EmpID,Name,Action,Timestamp",
		"E1,Jane Doe,Check In,2024-05-02T09:00:00Z",
		"E1,Jane Doe,Check Out,not-a-timestamp",
		"E1,Jane Doe,Check Out",
		"E1,Jane Doe,Lunch Break,2024-05-02T12:00:00Z",
		"E2,Bob Jones,Check In,2024-05-02 09:15:00",
		"E1,Jane Doe,Check Out,2024-05-02T17:00:00Z",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	events, err := New(path).ReadAll(ctx)
	require.NoError(t, err)

	// Bad timestamp, wrong arity, unknown action and the naive local
	// timestamp are all dropped; the rest of the log still aggregates.
	require.Len(t, events, 2)
	assert.Equal(t, attendance.ActionCheckIn, events[0].Action)
	assert.Equal(t, attendance.ActionCheckOut, events[1].Action)
	assert.Equal(t, time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC), events[1].Instant)
}

func TestReadAll_OffsetTimestampsNormalizedToUTC(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "attendance.csv")

	content := "EmpID,Name,Action,Timestamp\n" +
		"E1,Jane Doe,Check In,2024-05-02T16:00:00+07:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	events, err := New(path).ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), events[0].Instant)
}
