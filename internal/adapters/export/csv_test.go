package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/domain"
	"shiftbot/internal/report"
)

func TestCSVExporter_Export(t *testing.T) {
	rep := domain.Report{
		ID:     "r-1",
		Number: 3,
		Crew:   "12",
		Well:   "Well 45",
		Field:  "FieldX",
		Operations: []domain.Operation{{
			Shift: domain.ShiftDay, Name: "Repair pump",
			StartTime: "09:00", EndTime: "11:00",
			Equipment: "Crane", Representative: "Ivanov", Materials: "Seals",
		}},
		CreatedBy: "operator-42",
		CreatedAt: time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC),
	}

	data, err := NewCSVExporter().Export(rep, report.RenderRecords(rep))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "crew,12")
	assert.Contains(t, out, "index,name,start,end,equipment,representative,materials")
	assert.Contains(t, out, "1,Repair pump,09:00,11:00,Crane,Ivanov,Seals")
}

func TestCSVExporter_EmptyReportStillHasHeader(t *testing.T) {
	rep := domain.Report{Number: 1, Crew: "7"}

	data, err := NewCSVExporter().Export(rep, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), strings.Join(report.RecordHeader, ","))
}

func TestCSVExporter_Filename(t *testing.T) {
	rep := domain.Report{Number: 3, Crew: "12"}
	assert.Equal(t, "shift-report-crew12-3.csv", NewCSVExporter().Filename(rep))
}
