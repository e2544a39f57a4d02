package services

import (
	"context"
	"fmt"
	"time"

	"shiftbot/internal/domain"
	"shiftbot/internal/logging"
	"shiftbot/internal/ports"
	"shiftbot/internal/report"
)

// ReportService finalizes completed sessions into persisted reports and
// serves the read surfaces (list, show, change log, export).
type ReportService struct {
	repo     ports.ReportRepository
	exporter ports.Exporter
	now      func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(repo ports.ReportRepository, exporter ports.Exporter) *ReportService {
	return &ReportService{
		repo:     repo,
		exporter: exporter,
		now:      time.Now,
	}
}

// Finalize allocates the crew's next report number, assembles the
// report, persists it, and appends a change-log entry. The session is
// only read; on any persistence error nothing is committed and the
// caller may retry.
//
// Number allocation reads the crew's existing reports without locking
// across processes; two concurrent finalizations for the same crew can
// observe the same number. Accepted for the single-operator-per-crew
// usage pattern.
func (s *ReportService) Finalize(ctx context.Context, session *domain.Session) (*domain.Report, error) {
	existing, err := s.repo.ListByCrew(ctx, session.Header.Crew)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for crew %s: %w", session.Header.Crew, err)
	}

	now := s.now().UTC()
	actor := fmt.Sprintf("operator-%d", session.UserID)
	rep := report.Assemble(session, report.NextNumber(existing), actor, now)

	id, err := s.repo.Persist(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}
	rep.ID = id

	entry := domain.ChangeLogEntry{
		ReportID:  id,
		Actor:     actor,
		Action:    fmt.Sprintf("created report #%d for crew %s with %d operations", rep.Number, rep.Crew, len(rep.Operations)),
		Timestamp: now,
	}
	if err := s.repo.AppendLog(ctx, entry); err != nil {
		// The report itself is safely persisted; a missing audit entry
		// is not worth failing the finalize over.
		logging.Logger.Warn("failed to append change log entry",
			"report_id", id,
			"error", err)
	}

	return &rep, nil
}

// ListByCrew returns a crew's reports ordered by report number
func (s *ReportService) ListByCrew(ctx context.Context, crew string) ([]domain.Report, error) {
	return s.repo.ListByCrew(ctx, crew)
}

// ListByCrewSince filters a crew's reports to those created on or after
// the given day
func (s *ReportService) ListByCrewSince(ctx context.Context, crew string, since time.Time) ([]domain.Report, error) {
	reports, err := s.repo.ListByCrew(ctx, crew)
	if err != nil {
		return nil, err
	}

	cutoff := since.Truncate(24 * time.Hour)
	filtered := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if !r.CreatedAt.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Get returns one report by id
func (s *ReportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	return s.repo.Get(ctx, id)
}

// Log returns a report's change-log entries ordered by timestamp
func (s *ReportService) Log(ctx context.Context, reportID string) ([]domain.ChangeLogEntry, error) {
	return s.repo.LoadLog(ctx, reportID)
}

// Export renders a report to its exportable byte stream and suggested
// file name
func (s *ReportService) Export(ctx context.Context, reportID string) (string, []byte, error) {
	rep, err := s.repo.Get(ctx, reportID)
	if err != nil {
		return "", nil, err
	}

	data, err := s.exporter.Export(*rep, report.RenderRecords(*rep))
	if err != nil {
		return "", nil, fmt.Errorf("failed to export report %s: %w", reportID, err)
	}
	return s.exporter.Filename(*rep), data, nil
}
