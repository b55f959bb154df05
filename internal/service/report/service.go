package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

type ReportServiceImpl struct {
	eventLog attendance.EventLog
	clock    *clock.Clock
}

func NewReportService(eventLog attendance.EventLog, c *clock.Clock) report.Service {
	return &ReportServiceImpl{
		eventLog: eventLog,
		clock:    c,
	}
}

// DailySummary implements report.Service.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, req report.DailySummaryRequest) (report.SummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryReport{}, err
	}

	events, err := s.eventLog.ReadAll(ctx)
	if err != nil {
		return report.SummaryReport{}, fmt.Errorf("failed to read event log: %w", err)
	}

	// Daily detail keeps per-session rows so open sessions are visible.
	rows := s.summarize(events, req.Date, s.clock.DayKey, true)

	return report.SummaryReport{
		PeriodKind:  "daily",
		Period:      req.Date,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// MonthlySummary implements report.Service.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.SummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryReport{}, err
	}

	events, err := s.eventLog.ReadAll(ctx)
	if err != nil {
		return report.SummaryReport{}, fmt.Errorf("failed to read event log: %w", err)
	}

	period := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	rows := s.summarize(events, period, s.clock.MonthKey, false)

	return report.SummaryReport{
		PeriodKind:  "monthly",
		Period:      period,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// group collects one (employee, period) bucket before pairing.
type group struct {
	employeeID   string
	employeeName string
	period       string
	checkIns     []time.Time
	checkOuts    []time.Time
}

// summarize groups events by (employee, period key), pairs check-ins with
// check-outs per group and emits one summary row per group. periodKeyFn
// buckets a normalized instant into its reporting period; only groups whose
// key equals period are kept. Rows come back sorted by (employee, period) so
// report output is reproducible across runs.
func (s *ReportServiceImpl) summarize(events []attendance.Event, period string, periodKeyFn func(time.Time) string, withSessions bool) []report.SummaryRow {
	type groupKey struct {
		employeeID string
		period     string
	}

	groups := make(map[groupKey]*group)
	var order []groupKey

	for _, event := range events {
		key := groupKey{employeeID: event.EmployeeID, period: periodKeyFn(event.Instant)}
		if key.period != period {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &group{
				employeeID:   event.EmployeeID,
				employeeName: event.EmployeeName,
				period:       key.period,
			}
			groups[key] = g
			order = append(order, key)
		}

		switch event.Action {
		case attendance.ActionCheckIn:
			g.checkIns = append(g.checkIns, event.Instant)
		case attendance.ActionCheckOut:
			g.checkOuts = append(g.checkOuts, event.Instant)
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].employeeID != order[j].employeeID {
			return order[i].employeeID < order[j].employeeID
		}
		return order[i].period < order[j].period
	})

	rows := make([]report.SummaryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, s.mapGroupToRow(groups[key], withSessions))
	}

	return rows
}

// mapGroupToRow sorts the group's instants, runs the pairer and renders the
// summary row in the reporting zone.
func (s *ReportServiceImpl) mapGroupToRow(g *group, withSessions bool) report.SummaryRow {
	sort.Slice(g.checkIns, func(i, j int) bool { return g.checkIns[i].Before(g.checkIns[j]) })
	sort.Slice(g.checkOuts, func(i, j int) bool { return g.checkOuts[i].Before(g.checkOuts[j]) })

	sessions, total := pairSessions(g.checkIns, g.checkOuts)

	row := report.SummaryRow{
		EmployeeID:   g.employeeID,
		EmployeeName: g.employeeName,
		Period:       g.period,
		TotalWorked:  clock.FormatDuration(total),
	}

	// First/last display fields stay nil when the group has no events of
	// that action, rather than erroring.
	if len(g.checkIns) > 0 {
		first := s.clock.FormatTime(g.checkIns[0])
		row.FirstCheckIn = &first
	}
	if len(g.checkOuts) > 0 {
		last := s.clock.FormatTime(g.checkOuts[len(g.checkOuts)-1])
		row.LastCheckOut = &last
	}

	if withSessions {
		row.Sessions = make([]report.SessionRow, 0, len(sessions))
		for _, sess := range sessions {
			sessionRow := report.SessionRow{
				CheckIn:  s.clock.FormatTime(sess.checkIn),
				Duration: clock.FormatDuration(sess.duration()),
				Open:     sess.checkOut == nil,
			}
			if sess.checkOut != nil {
				out := s.clock.FormatTime(*sess.checkOut)
				sessionRow.CheckOut = &out
			}
			row.Sessions = append(row.Sessions, sessionRow)
		}
	}

	return row
}
