package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/domain"
)

func completedSession() *domain.Session {
	s := domain.NewSession(42, 100, time.Date(2026, 2, 18, 8, 30, 0, 0, time.UTC))
	s.Header = domain.Header{Crew: "12", Well: "Well 45", Field: "FieldX"}
	s.Operations = []domain.Operation{
		{
			Name:           "Repair pump",
			StartTime:      "09:00",
			EndTime:        "11:00",
			Equipment:      "Crane",
			Representative: "Ivanov",
			Materials:      "Seals",
			Shift:          domain.ShiftDay,
		},
	}
	return s
}

func TestAssemble_CopiesSessionData(t *testing.T) {
	sess := completedSession()
	now := time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC)

	rep := Assemble(sess, 3, "operator-42", now)

	assert.Equal(t, 3, rep.Number)
	assert.Equal(t, "12", rep.Crew)
	assert.Equal(t, "Well 45", rep.Well)
	assert.Equal(t, "FieldX", rep.Field)
	assert.Equal(t, "operator-42", rep.CreatedBy)
	assert.Equal(t, now, rep.CreatedAt)
	require.Len(t, rep.Operations, 1)

	// The report must be independent of the session it was built from
	sess.Operations[0].Name = "mutated"
	assert.Equal(t, "Repair pump", rep.Operations[0].Name)
}

func TestAssemble_ZeroOperationsIsValid(t *testing.T) {
	sess := domain.NewSession(1, 1, time.Now())
	sess.Header.Crew = "7"

	rep := Assemble(sess, 1, "operator-1", time.Now())

	assert.Empty(t, rep.Operations)
	assert.Contains(t, RenderText(rep), "No operations recorded")
}

func TestRenderText_FullScenario(t *testing.T) {
	rep := Assemble(completedSession(), 1, "operator-42", time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC))

	text := RenderText(rep)

	assert.Contains(t, text, "Crew: 12")
	assert.Contains(t, text, "Well/object: Well 45")
	assert.Contains(t, text, "Field: FieldX")
	assert.Equal(t, 1, strings.Count(text, "1. Repair pump"))

	// Operation field values appear in the documented order
	order := []string{"Repair pump", "09:00", "11:00", "Crane", "Ivanov", "Seals"}
	pos := -1
	for _, v := range order {
		next := strings.Index(text, v)
		require.GreaterOrEqual(t, next, 0, "missing %q", v)
		assert.Greater(t, next, pos, "%q out of order", v)
		pos = next
	}
}

func TestRenderText_Deterministic(t *testing.T) {
	rep := Assemble(completedSession(), 1, "operator-42", time.Date(2026, 2, 18, 17, 45, 0, 0, time.UTC))
	assert.Equal(t, RenderText(rep), RenderText(rep))
}

func TestRenderRecords_OneRowPerOperation(t *testing.T) {
	rep := Assemble(completedSession(), 1, "operator-42", time.Now())

	records := RenderRecords(rep)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"1", "Repair pump", "09:00", "11:00", "Crane", "Ivanov", "Seals"}, records[0])
}

func TestRenderRecords_PreservesInsertionOrder(t *testing.T) {
	sess := domain.NewSession(1, 1, time.Now())
	for i := 0; i < 5; i++ {
		sess.Operations = append(sess.Operations, domain.Operation{
			Name:      fmt.Sprintf("op-%d", i),
			StartTime: "09:00",
			EndTime:   "10:00",
		})
	}

	records := RenderRecords(Assemble(sess, 1, "x", time.Now()))

	require.Len(t, records, 5)
	for i, row := range records {
		assert.Equal(t, fmt.Sprintf("%d", i+1), row[0])
		assert.Equal(t, fmt.Sprintf("op-%d", i), row[1])
	}
}
