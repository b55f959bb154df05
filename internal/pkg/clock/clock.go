package clock

import (
	"fmt"
	"time"
)

// Clock converts stored UTC instants into the single configured reporting
// timezone. All day/month bucketing and display formatting goes through it so
// that daylight-saving transitions are handled by the zone database rather
// than fixed-offset arithmetic.
type Clock struct {
	loc *time.Location
}

// New loads the named IANA reporting zone (e.g. "Asia/Jakarta", "UTC").
func New(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load reporting timezone %q: %w", zone, err)
	}
	return &Clock{loc: loc}, nil
}

// Location returns the reporting zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in UTC. Events are stored in UTC and only
// converted to the reporting zone at read time.
func (c *Clock) Now() time.Time {
	return time.Now().UTC()
}

// ToReporting converts an instant to the reporting zone.
func (c *Clock) ToReporting(t time.Time) time.Time {
	return t.In(c.loc)
}

// DayKey buckets an instant into its reporting-zone calendar day.
func (c *Clock) DayKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// MonthKey buckets an instant into its reporting-zone calendar month.
func (c *Clock) MonthKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01")
}

// FormatTime renders an instant for display in the reporting zone.
func (c *Clock) FormatTime(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02 15:04:05")
}

// FormatDuration renders a duration as HH:MM:SS. Hours are not wrapped at 24,
// so a monthly total can read "160:30:00".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
