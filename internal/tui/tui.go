// Package tui provides the interactive dashboard for the punch application.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/summary"
	"github.com/hglund/punch/internal/timeutil"
	"github.com/hglund/punch/internal/tui/ui"
)

// summaryMsg carries a refreshed day summary
type summaryMsg struct {
	day service.DaySummary
	err error
}

// tickMsg triggers a periodic refresh
type tickMsg time.Time

// Model is the dashboard model
type Model struct {
	services *service.Services

	styles ui.Styles
	keys   ui.KeyMap

	width  int
	height int

	day service.DaySummary
	err error

	inputMode bool
	input     textinput.Model
	progress  progress.Model

	refresh time.Duration
}

// New creates a new dashboard model
func New(services *service.Services) Model {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 200

	return Model{
		services: services,
		styles:   ui.DefaultStyles(),
		keys:     ui.DefaultKeyMap(),
		input:    input,
		progress: progress.New(progress.WithDefaultGradient()),
		refresh:  services.Tracker.Config().Refresh(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSummary(), m.tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			if !m.day.Status.Running {
				m.inputMode = true
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case key.Matches(msg, m.keys.Stop):
			return m, m.stopEntry()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadSummary()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(m.width-8, 50)
		return m, nil

	case summaryMsg:
		m.day = msg.day
		m.err = msg.err
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.loadSummary(), m.tick())
	}

	return m, nil
}

// updateInput handles key presses while the start prompt is open
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.inputMode = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.input.Value())
		m.inputMode = false
		m.input.Blur()
		if text == "" {
			return m, nil
		}
		return m, m.startEntry(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("punch"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	for _, w := range m.day.Warnings {
		b.WriteString(m.styles.Warning.Render("Warning: " + w))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.renderEntries())
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n\n")

	if m.inputMode {
		b.WriteString(m.styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderHelp())
	}

	return m.styles.App.Render(b.String())
}

// renderStatus renders the running/idle status line
func (m Model) renderStatus() string {
	if m.day.Status.Running {
		return fmt.Sprintf("%s %s %s",
			m.styles.StatusRunning.Render("● running"),
			m.styles.EntryDesc.Render(m.day.Status.Entry.Text),
			m.styles.StatusElapsed.Render(summary.FormatClock(m.day.Status.Elapsed)))
	}
	return m.styles.StatusIdle.Render("○ idle")
}

// renderEntries renders today's entries, clipped to the day window
func (m Model) renderEntries() string {
	if len(m.day.Entries) == 0 {
		return m.styles.StatusIdle.Render("No entries yet today")
	}

	loc, err := m.services.Tracker.Config().Location()
	if err != nil {
		loc = time.Local
	}
	now := timeutil.UTCNow()

	var b strings.Builder
	for _, e := range m.day.Entries {
		endStr := "…    "
		if e.End != nil {
			endStr = e.End.In(loc).Format("15:04")
		}
		span := fmt.Sprintf("%s - %s", e.Start.In(loc).Format("15:04"), endStr)
		clipped := summary.Clip(e, m.day.WindowStart, m.day.WindowEnd, now)

		b.WriteString(m.styles.EntryTime.Render(span))
		b.WriteString(m.styles.EntryDuration.Render(summary.FormatDuration(clipped)))
		b.WriteString("  ")
		b.WriteString(m.styles.EntryDesc.Render(e.Text))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTotals renders the day total, remaining time, and the progress bar
func (m Model) renderTotals() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("Worked"))
	b.WriteString(m.styles.StatValue.Render(summary.FormatDuration(m.day.Total)))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Remaining"))
	b.WriteString(m.styles.StatValue.Render(summary.FormatClock(m.day.Remaining)))
	b.WriteString("\n")

	if m.day.Target > 0 {
		pct := float64(m.day.Total) / float64(m.day.Target)
		if pct > 1 {
			pct = 1
		}
		b.WriteString(m.progress.ViewAs(pct))
	}
	return b.String()
}

// renderHelp renders the key hints at the bottom
func (m Model) renderHelp() string {
	parts := []string{
		m.renderKeyHelp("s", "start"),
		m.renderKeyHelp("x", "stop"),
		m.renderKeyHelp("r", "refresh"),
		m.renderKeyHelp("q", "quit"),
	}
	return strings.Join(parts, "  ")
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(k, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.HelpKey.Render(k),
		m.styles.HelpDesc.Render(desc))
}

// loadSummary fetches today's summary
func (m Model) loadSummary() tea.Cmd {
	return func() tea.Msg {
		day, err := m.services.Tracker.Today(timeutil.LocalNow())
		return summaryMsg{day: day, err: err}
	}
}

// startEntry starts a new entry and reloads the summary
func (m Model) startEntry(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Tracker.Start(text, timeutil.LocalNow())
		if err != nil && !errors.Is(err, service.ErrAlreadyRunning) {
			return summaryMsg{day: m.day, err: err}
		}
		day, err := m.services.Tracker.Today(timeutil.LocalNow())
		return summaryMsg{day: day, err: err}
	}
}

// stopEntry stops the running entry and reloads the summary
func (m Model) stopEntry() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Tracker.Stop(timeutil.LocalNow())
		if err != nil && !errors.Is(err, service.ErrNothingRunning) {
			return summaryMsg{day: m.day, err: err}
		}
		day, err := m.services.Tracker.Today(timeutil.LocalNow())
		return summaryMsg{day: day, err: err}
	}
}

// tick schedules the next periodic refresh
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
