// Package report assembles finalized shift reports from completed
// dialogue sessions and renders them for chat delivery and export.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shiftbot/internal/domain"
)

// RecordHeader is the column layout produced by RenderRecords
var RecordHeader = []string{"index", "name", "start", "end", "equipment", "representative", "materials"}

// Assemble builds an immutable Report from a completed session. The
// session is only read, never mutated. A session with zero operations is
// valid and produces a report with an empty operation list.
func Assemble(session *domain.Session, number int, createdBy string, now time.Time) domain.Report {
	operations := make([]domain.Operation, len(session.Operations))
	copy(operations, session.Operations)

	return domain.Report{
		Number:     number,
		Crew:       session.Header.Crew,
		Well:       session.Header.Well,
		Field:      session.Header.Field,
		Operations: operations,
		CreatedBy:  createdBy,
		CreatedAt:  now,
	}
}

// RenderText produces the human-readable summary: a header block
// followed by one block per operation in insertion order. Identical
// reports always render identical text.
func RenderText(r domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Shift report #%d\n", r.Number)
	fmt.Fprintf(&b, "Crew: %s\n", r.Crew)
	fmt.Fprintf(&b, "Well/object: %s\n", r.Well)
	fmt.Fprintf(&b, "Field: %s\n", r.Field)
	fmt.Fprintf(&b, "Created: %s by %s\n", r.CreatedAt.UTC().Format("02.01.2006 15:04"), r.CreatedBy)

	if len(r.Operations) == 0 {
		b.WriteString("\nNo operations recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nOperations (%d):\n", len(r.Operations))
	for i, op := range r.Operations {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, op.Name)
		fmt.Fprintf(&b, "   %s - %s (%s shift)\n", op.StartTime, op.EndTime, op.Shift)
		fmt.Fprintf(&b, "   Equipment: %s\n", op.Equipment)
		fmt.Fprintf(&b, "   Representative: %s\n", op.Representative)
		fmt.Fprintf(&b, "   Materials: %s\n", op.Materials)
	}

	return b.String()
}

// RenderRecords flattens the report into export rows, one per operation,
// in the RecordHeader column order. Indexes are 1-based.
func RenderRecords(r domain.Report) [][]string {
	records := make([][]string, 0, len(r.Operations))
	for i, op := range r.Operations {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			op.Name,
			op.StartTime,
			op.EndTime,
			op.Equipment,
			op.Representative,
			op.Materials,
		})
	}
	return records
}
