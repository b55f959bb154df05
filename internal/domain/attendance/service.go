package attendance

import (
	"context"
)

// Service defines business logic for recording attendance
type Service interface {
	// CheckIn validates identity against the roster and appends a check-in event
	CheckIn(ctx context.Context, req CheckRequest) (EventResponse, error)

	// CheckOut validates identity against the roster and appends a check-out event
	CheckOut(ctx context.Context, req CheckRequest) (EventResponse, error)

	// DayLog returns the raw events of one reporting-zone calendar day (admin view)
	DayLog(ctx context.Context, filter DayLogFilter) (DayLogResponse, error)
}
