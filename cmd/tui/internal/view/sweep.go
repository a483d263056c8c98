package view

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

type Sweeper interface {
	RunOnce(ctx context.Context) (*sweep.Summary, error)
}

// SweepModel runs one status sweep as soon as it is opened and shows what changed.
type SweepModel struct {
	CommonModel
	sweeper Sweeper

	spinner spinner.Model
	running bool
	summary *sweep.Summary
	err     error
}

func NewSweepModel(s Sweeper) SweepModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return SweepModel{sweeper: s, spinner: sp, running: true}
}

func (m SweepModel) Title() string     { return "Status Sweep" }
func (m SweepModel) ShortHelp() string { return "r: run again | Esc: back" }

func (m SweepModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCmd())
}

func (m SweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			if !m.running {
				m.running = true
				return m, tea.Batch(m.spinner.Tick, m.runCmd())
			}
		}

	case sweepDoneMsg:
		m.running = false
		m.summary = msg.summary
		m.err = msg.err

		return m, nil

	case spinner.TickMsg:
		if m.running {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}
	}

	return m, nil
}

func (m SweepModel) View() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.running {
		return style.Render(m.spinner.View() + " Recomputing statuses...")
	}

	if m.err != nil {
		return style.Render(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(r to retry, Esc to back)")
	}

	if m.summary.Skipped {
		return style.Render("Another sweep is already running.\n\n(r to retry, Esc to back)")
	}

	names := make([]string, 0, len(m.summary.Updated))
	for name := range m.summary.Updated {
		names = append(names, name)
	}

	sort.Strings(names)

	s := fmt.Sprintf("Sweep for %s\n\n", FormatDate(m.summary.Today))
	for _, name := range names {
		s += fmt.Sprintf("  %-10s %d updated\n", name, m.summary.Updated[name])
	}

	return style.Render(s + "\n(r to run again, Esc to back)")
}

type sweepDoneMsg struct {
	summary *sweep.Summary
	err     error
}

func (m SweepModel) runCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		summary, err := m.sweeper.RunOnce(ctx)

		return sweepDoneMsg{summary: summary, err: err}
	}
}
