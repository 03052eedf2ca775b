// Package ui renders the countdown as a full Bubble Tea program.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paucazou/wait-until/internal/clock"
	"github.com/paucazou/wait-until/internal/progress"
)

const (
	padding  = 2
	maxWidth = 80
)

// ErrInterrupted is returned by Run when the user quits before the target.
var ErrInterrupted = errors.New("countdown interrupted")

var (
	summaryStyle   = lipgloss.NewStyle().Bold(true)
	remainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

type tickMsg time.Time

// Model owns the Bubble Tea state of a running countdown.
type Model struct {
	countdown progress.Countdown
	now       func() time.Time

	meter bar.Model
	help  help.Model
	quit  key.Binding

	width       int
	remaining   time.Duration
	done        bool
	interrupted bool
}

// NewModel prepares a model counting down to c.Target.
func NewModel(c progress.Countdown) Model {
	return newModel(c, time.Now)
}

func newModel(c progress.Countdown, now func() time.Time) Model {
	return Model{
		countdown: c,
		now:       now,
		meter:     bar.New(bar.WithDefaultGradient(), bar.WithoutPercentage()),
		help:      help.New(),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		remaining: c.Total(),
	}
}

// Init starts the once-per-second tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update advances the countdown on every tick and quits once the target passes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		m.remaining = m.countdown.Target.Sub(m.now())
		if m.remaining < 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, tick()
	default:
		return m, nil
	}
}

// View renders the summary, the bar and the time left.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(summaryStyle.Render(m.countdown.Summary()))
	b.WriteString("\n\n")

	elapsed := m.countdown.Total() - m.remaining
	percent := progress.Percent(elapsed, m.countdown.Total())
	suffix := fmt.Sprintf(" %d%% %s", percent, clock.FormatDuration(m.remaining))

	line := m.meter
	line.Width = m.barWidth(len(suffix))
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(line.ViewAs(float64(percent) / 100))
	b.WriteString(remainingStyle.Render(suffix))
	b.WriteString("\n")

	if m.done {
		b.WriteString("\n")
		b.WriteString(doneStyle.Render("Time's up!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.quit}))
	b.WriteString("\n")
	return b.String()
}

// Done reports whether the target time was reached.
func (m Model) Done() bool { return m.done }

// Interrupted reports whether the user quit before the target time.
func (m Model) Interrupted() bool { return m.interrupted }

func (m Model) barWidth(suffix int) int {
	width := m.width
	if width == 0 || width > maxWidth {
		width = maxWidth
	}
	width -= padding + suffix
	if width < 1 {
		return 1
	}
	return width
}

func tick() tea.Cmd {
	return tea.Tick(progress.DefaultInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run drives the interactive countdown until the target passes or the user quits.
func Run(ctx context.Context, c progress.Countdown) error {
	final, err := tea.NewProgram(NewModel(c), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	if m, ok := final.(Model); ok && m.Interrupted() {
		return ErrInterrupted
	}
	return nil
}
