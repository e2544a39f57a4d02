package ports

import (
	"context"

	"shiftbot/internal/domain"
)

// ReportWriter persists finalized reports
type ReportWriter interface {
	// Persist stores the report and returns its assigned id
	Persist(ctx context.Context, report domain.Report) (string, error)
}

// ReportReader reads persisted reports
type ReportReader interface {
	Get(ctx context.Context, id string) (*domain.Report, error)
	// ListByCrew returns the crew's reports ordered by report number
	ListByCrew(ctx context.Context, crew string) ([]domain.Report, error)
}

// ChangeLogger records who did what to which report. Entries are
// append-only and read back ordered by timestamp.
type ChangeLogger interface {
	AppendLog(ctx context.Context, entry domain.ChangeLogEntry) error
	LoadLog(ctx context.Context, reportID string) ([]domain.ChangeLogEntry, error)
}

// ReportRepository is the composite persistence interface
type ReportRepository interface {
	ReportWriter
	ReportReader
	ChangeLogger
	Close() error
}
