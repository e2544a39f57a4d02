// Package ui provides a small read-only terminal browser over persisted
// shift reports.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shiftbot/internal/domain"
	"shiftbot/internal/report"
	"shiftbot/internal/theme"
)

// keyMap holds the browser key bindings
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous report")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next report")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view report")),
	Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the report browser: a list of one crew's reports with a
// detail view showing the rendered summary.
type Model struct {
	crew     string
	reports  []domain.Report
	cursor   int
	viewing  bool
	quitting bool
}

// NewModel creates a browser over the given crew's reports
func NewModel(crew string, reports []domain.Report) Model {
	return Model{crew: crew, reports: reports}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Back):
		m.viewing = false

	case key.Matches(keyMsg, keys.Enter):
		if len(m.reports) > 0 {
			m.viewing = true
		}

	case key.Matches(keyMsg, keys.Up):
		if !m.viewing && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if !m.viewing && m.cursor < len(m.reports)-1 {
			m.cursor++
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.viewing {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Shift reports for crew %s", m.crew)))
	b.WriteString("\n")

	if len(m.reports) == 0 {
		b.WriteString(theme.MutedStyle.Render("No reports for this crew yet."))
		b.WriteString("\n")
	}

	for i, r := range m.reports {
		line := fmt.Sprintf("#%-3d %-24s %2d operations  %s",
			r.Number, truncate(r.Well, 24), len(r.Operations), r.CreatedAt.UTC().Format("02.01.2006 15:04"))
		if i == m.cursor {
			b.WriteString(theme.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(theme.NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render("↑/↓ navigate · enter view · q quit"))
	return b.String()
}

func (m Model) detailView() string {
	r := m.reports[m.cursor]

	var b strings.Builder
	b.WriteString(theme.NormalStyle.Render(report.RenderText(r)))
	b.WriteString(theme.HelpStyle.Render("esc back · q quit"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Run starts the browser and blocks until the user quits
func Run(crew string, reports []domain.Report) error {
	_, err := tea.NewProgram(NewModel(crew, reports)).Run()
	return err
}
