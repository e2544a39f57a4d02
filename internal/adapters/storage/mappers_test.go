package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		ID:     "r-1",
		Number: 3,
		Crew:   "12",
		Well:   "Well 45",
		Field:  "FieldX",
		Operations: []domain.Operation{
			{
				Shift:          domain.ShiftDay,
				Name:           "Repair pump",
				StartTime:      "09:00",
				EndTime:        "11:00",
				Equipment:      "Crane",
				Representative: "Ivanov",
				Materials:      "Seals",
			},
			{
				Shift:     domain.ShiftNight,
				Name:      "Flush well",
				StartTime: "21:00",
				EndTime:   "23:30",
			},
		},
		CreatedBy: "operator-42",
		CreatedAt: time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC),
	}
}

func TestReportMapping_RoundTrip(t *testing.T) {
	original := sampleReport()

	model := domainToReportModel(original)
	back := reportModelToDomain(model)

	assert.Equal(t, original, back)
}

func TestDomainToReportModel_AssignsSequence(t *testing.T) {
	model := domainToReportModel(sampleReport())

	require.Len(t, model.Operations, 2)
	assert.Equal(t, 1, model.Operations[0].Seq)
	assert.Equal(t, 2, model.Operations[1].Seq)
	assert.Equal(t, "r-1", model.Operations[0].ReportID)
	assert.Equal(t, "day", model.Operations[0].Shift)
	assert.Equal(t, "night", model.Operations[1].Shift)
}

func TestChangeLogMapping_RoundTrip(t *testing.T) {
	entry := domain.ChangeLogEntry{
		ReportID:  "r-1",
		Actor:     "operator-42",
		Action:    "created report #3 for crew 12 with 2 operations",
		Timestamp: time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC),
	}

	back := changeLogModelToDomain(domainToChangeLogModel(entry))

	assert.Equal(t, entry, back)
}
