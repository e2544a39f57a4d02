package ports

import "shiftbot/internal/domain"

// Exporter renders a report's record rows into an opaque byte stream
// (e.g. a spreadsheet-compatible file). The format is the exporter's
// concern; callers only attach the bytes to a message.
type Exporter interface {
	Export(report domain.Report, records [][]string) ([]byte, error)

	// Filename suggests a file name for the exported report
	Filename(report domain.Report) string
}
