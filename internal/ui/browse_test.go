package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/domain"
)

func sampleReports() []domain.Report {
	return []domain.Report{
		{Number: 1, Crew: "12", Well: "Well 45", CreatedAt: time.Date(2026, 2, 18, 9, 0, 0, 0, time.UTC)},
		{Number: 2, Crew: "12", Well: "Well 46", CreatedAt: time.Date(2026, 2, 19, 9, 0, 0, 0, time.UTC),
			Operations: []domain.Operation{{Name: "Repair pump", StartTime: "09:00", EndTime: "11:00"}}},
	}
}

func pressKey(m Model, keyType tea.KeyType, runes ...rune) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType, Runes: runes})
	return updated.(Model)
}

func TestBrowse_CursorMovement(t *testing.T) {
	m := NewModel("12", sampleReports())
	require.Equal(t, 0, m.cursor)

	m = pressKey(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)

	// Cursor stops at the last report
	m = pressKey(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)

	m = pressKey(m, tea.KeyUp)
	assert.Equal(t, 0, m.cursor)

	m = pressKey(m, tea.KeyUp)
	assert.Equal(t, 0, m.cursor)
}

func TestBrowse_DetailViewShowsReport(t *testing.T) {
	m := NewModel("12", sampleReports())

	m = pressKey(m, tea.KeyDown)
	m = pressKey(m, tea.KeyEnter)
	assert.True(t, m.viewing)
	assert.Contains(t, m.View(), "Repair pump")

	m = pressKey(m, tea.KeyEsc)
	assert.False(t, m.viewing)
	assert.Contains(t, m.View(), "Shift reports for crew 12")
}

func TestBrowse_EmptyList(t *testing.T) {
	m := NewModel("7", nil)

	assert.Contains(t, m.View(), "No reports")

	// Enter with no reports must not open the detail view
	m = pressKey(m, tea.KeyEnter)
	assert.False(t, m.viewing)
}
