package attendance

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/roster"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	roster   roster.Roster
	eventLog attendance.EventLog
	clock    *clock.Clock
}

func NewAttendanceService(r roster.Roster, eventLog attendance.EventLog, c *clock.Clock) attendance.Service {
	return &AttendanceServiceImpl{
		roster:   r,
		eventLog: eventLog,
		clock:    c,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.EventResponse, error) {
	return s.record(ctx, req, attendance.ActionCheckIn)
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.EventResponse, error) {
	return s.record(ctx, req, attendance.ActionCheckOut)
}

// record validates identity and durably appends one event. Validation happens
// before the append; a rejected identity never reaches the log.
func (s *AttendanceServiceImpl) record(ctx context.Context, req attendance.CheckRequest, action string) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	if !s.roster.Validate(req.EmployeeID, req.Name) {
		return attendance.EventResponse{}, attendance.ErrEmployeeNotInRoster
	}

	event := attendance.Event{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.Name,
		Action:       action,
		Instant:      s.clock.Now(),
	}

	if err := s.eventLog.Append(ctx, event); err != nil {
		return attendance.EventResponse{}, fmt.Errorf("%w: %v", attendance.ErrAppendFailed, err)
	}

	return s.mapEventToResponse(event), nil
}

// DayLog implements attendance.Service.
func (s *AttendanceServiceImpl) DayLog(ctx context.Context, filter attendance.DayLogFilter) (attendance.DayLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DayLogResponse{}, err
	}

	if filter.Date == "" {
		filter.Date = s.clock.DayKey(s.clock.Now())
	}

	events, err := s.eventLog.ReadAll(ctx)
	if err != nil {
		return attendance.DayLogResponse{}, fmt.Errorf("failed to read event log: %w", err)
	}

	responses := make([]attendance.EventResponse, 0)
	for _, event := range events {
		if s.clock.DayKey(event.Instant) != filter.Date {
			continue
		}
		responses = append(responses, s.mapEventToResponse(event))
	}

	return attendance.DayLogResponse{
		Date:   filter.Date,
		Events: responses,
	}, nil
}

// mapEventToResponse renders an event in the reporting zone.
func (s *AttendanceServiceImpl) mapEventToResponse(event attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		EmployeeID:   event.EmployeeID,
		EmployeeName: event.EmployeeName,
		Action:       event.Action,
		RecordedAt:   s.clock.FormatTime(event.Instant),
	}
}
