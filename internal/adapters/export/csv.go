// Package export renders report record rows into downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"shiftbot/internal/domain"
	"shiftbot/internal/ports"
	"shiftbot/internal/report"
)

// CSVExporter writes the record-per-operation layout as CSV with a
// header row. The byte stream is opaque to the core.
type CSVExporter struct{}

var _ ports.Exporter = (*CSVExporter)(nil)

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export implements ports.Exporter.Export
func (e *CSVExporter) Export(r domain.Report, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	meta := [][]string{
		{"report", fmt.Sprintf("%d", r.Number)},
		{"crew", r.Crew},
		{"well", r.Well},
		{"field", r.Field},
		{"created", r.CreatedAt.UTC().Format("02.01.2006 15:04")},
		{"created_by", r.CreatedBy},
		{},
	}
	for _, row := range meta {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write metadata row: %w", err)
		}
	}

	if err := w.Write(report.RecordHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for _, row := range records {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write record row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename implements ports.Exporter.Filename
func (e *CSVExporter) Filename(r domain.Report) string {
	return fmt.Sprintf("shift-report-crew%s-%d.csv", r.Crew, r.Number)
}
