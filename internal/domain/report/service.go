package report

import "context"

// Service defines the interface for worked-hours reporting. Summaries are
// pure functions of the event log: they are recomputed on every call and
// never persisted.
type Service interface {
	// DailySummary rolls up worked hours per employee for one calendar day
	DailySummary(ctx context.Context, req DailySummaryRequest) (SummaryReport, error)

	// MonthlySummary rolls up worked hours per employee for one calendar month
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (SummaryReport, error)
}
