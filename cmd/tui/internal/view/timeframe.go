package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
)

// Timeframe is a preset or custom invoice date range. Quarters and years follow
// the April to March financial year.
type Timeframe int

const (
	TimeframeThisQuarter Timeframe = iota
	TimeframeLastQuarter
	TimeframeThisFY
	TimeframeLastFY
	TimeframeAll
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisQuarter:
		return "This Quarter"
	case TimeframeLastQuarter:
		return "Last Quarter"
	case TimeframeThisFY:
		return "This Financial Year"
	case TimeframeLastFY:
		return "Last Financial Year"
	case TimeframeAll:
		return "All Time"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// displayDate is how dates are typed and shown on the desk.
const displayDate = "02-01-2006"

// fyStart returns 1 April of the financial year containing day.
func fyStart(day time.Time) time.Time {
	year := day.Year()
	if day.Month() < time.April {
		year--
	}

	return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
}

func quarterStart(day time.Time) time.Time {
	fy := fyStart(day)
	elapsed := (int(day.Month()) - int(time.April) + 12) % 12

	return fy.AddDate(0, elapsed/3*3, 0)
}

// fyLabel names the financial year starting at start, e.g. "FY 2025-26".
func fyLabel(start time.Time) string {
	return fmt.Sprintf("FY %d-%02d", start.Year(), (start.Year()+1)%100)
}

// frameRange returns the inclusive date range of tf as of today. Ranges that
// include today end on today.
func frameRange(tf Timeframe, today time.Time) (time.Time, time.Time) {
	today = clock.DateOf(today)

	switch tf {
	case TimeframeThisQuarter:
		return quarterStart(today), today
	case TimeframeLastQuarter:
		start := quarterStart(today)
		return start.AddDate(0, -3, 0), start.AddDate(0, 0, -1)
	case TimeframeThisFY:
		return fyStart(today), today
	case TimeframeLastFY:
		start := fyStart(today)
		return start.AddDate(-1, 0, 0), start.AddDate(0, 0, -1)
	}

	return time.Time{}, time.Time{}
}

// TimeframeSelectedMsg is emitted when the user has selected a valid date range.
// Start and End are zero values when All is true.
type TimeframeSelectedMsg struct {
	Start time.Time
	End   time.Time
	All   bool
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker selects a date range relative to the business calendar's today.
type TimeframePicker struct {
	cal clock.Calendar

	state    timeframeState
	selected Timeframe
	minFrame Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func dateInput(prompt string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "DD-MM-YYYY"
	in.CharLimit = 10
	in.Width = 12
	in.Prompt = prompt

	return in
}

func NewTimeframePicker(cal clock.Calendar, minFrame Timeframe) TimeframePicker {
	return TimeframePicker{
		cal:        cal,
		state:      timeframeStateSelect,
		selected:   minFrame,
		minFrame:   minFrame,
		startInput: dateInput("From: "),
		endInput:   dateInput("To:   "),
	}
}

func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case timeframeStateSelect:
			return m.updateSelect(keyMsg)
		case timeframeStateCustom:
			if next, cmd, handled := m.updateCustom(keyMsg); handled {
				return next, cmd
			}
		}
	}

	if m.state == timeframeStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func selectRange(start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		return TimeframeSelectedMsg{Start: start, End: end}
	}
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > m.minFrame {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		switch m.selected {
		case TimeframeCustom:
			m.state = timeframeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		case TimeframeAll:
			return m, func() tea.Msg {
				return TimeframeSelectedMsg{All: true}
			}
		}

		return m, selectRange(frameRange(m.selected, m.cal.Today()))
	}

	return m, nil
}

// parseCustom reads the typed range. Both ends are inclusive calendar dates.
func parseCustom(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(displayDate, strings.TrimSpace(from))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date (DD-MM-YYYY)")
	}

	end, err := time.Parse(displayDate, strings.TrimSpace(to))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date (DD-MM-YYYY)")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("to date is before from date")
	}

	return start, end, nil
}

// updateCustom handles the keys the custom form owns. Other keys go to the inputs.
func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink, true

	case "enter":
		start, end, err := parseCustom(m.startInput.Value(), m.endInput.Value())
		if err != nil {
			m.err = err
			return m, nil, true
		}

		m.err = nil

		return m, selectRange(start, end), true

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil, true
	}

	return m, nil, false
}

func (m TimeframePicker) updateInputs(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	var startCmd, endCmd tea.Cmd

	m.startInput, startCmd = m.startInput.Update(msg)
	m.endInput, endCmd = m.endInput.Update(msg)

	return m, tea.Batch(startCmd, endCmd)
}

func (m TimeframePicker) describe(tf Timeframe, today time.Time) string {
	switch tf {
	case TimeframeAll, TimeframeCustom:
		return ""
	}

	start, end := frameRange(tf, today)
	hint := start.Format(displayDate) + " to " + end.Format(displayDate)

	if tf == TimeframeThisFY || tf == TimeframeLastFY {
		hint = fyLabel(start) + ", " + hint
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("  " + hint)
}

func (m TimeframePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == timeframeStateCustom {
		return fmt.Sprintf(
			"Enter Invoice Date Range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	today := m.cal.Today()

	var b strings.Builder

	b.WriteString("Select Invoice Dates:\n\n")

	for tf := m.minFrame; tf <= TimeframeCustom; tf++ {
		cursor := " "
		if m.selected == tf {
			cursor = ">"
		}

		fmt.Fprintf(&b, "%s %s%s\n", cursor, tf, m.describe(tf, today))
	}

	b.WriteString("\n(Enter to select, Esc to back)")

	return b.String() + errStr
}

// IsSelecting reports whether the picker shows the preset list rather than the custom form.
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = m.minFrame
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
