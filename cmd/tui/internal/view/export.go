package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/export"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

type Exporter interface {
	AMCRegister(ctx context.Context, filter amc.ListFilter, w io.Writer) error
	InvoiceRegister(ctx context.Context, filter invoice.ListFilter, w io.Writer) error
}

type exportState int

const (
	exportStateRegister exportState = iota
	exportStateTimeframe
	exportStatePath
	exportStateExporting
	exportStateResult
)

var registers = []string{"amc", "invoice"}

type ExportModel struct {
	CommonModel
	exportService Exporter
	cal           clock.Calendar

	state           exportState
	err             error
	registerCursor  int
	timeframePicker TimeframePicker

	startDate time.Time
	endDate   time.Time
	allTime   bool

	form    *huh.Form
	path    string
	spinner spinner.Model
	written string
}

func NewExportModel(svc Exporter, cal clock.Calendar) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		exportService:   svc,
		cal:             cal,
		state:           exportStateRegister,
		timeframePicker: NewTimeframePicker(cal, TimeframeThisQuarter),
		path:            "./exports",
		allTime:         true,
		spinner:         s,
	}
}

func (m ExportModel) Title() string { return "Export Register" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) register() string {
	return registers[m.registerCursor]
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tfMsg, ok := msg.(TimeframeSelectedMsg); ok {
		m.startDate = tfMsg.Start
		m.endDate = tfMsg.End
		m.allTime = tfMsg.All
		m.form = m.buildPathForm()
		m.state = exportStatePath

		return m, m.form.Init()
	}

	switch m.state {
	case exportStateRegister:
		return m.updateRegister(msg)
	case exportStateTimeframe:
		return m.updateTimeframe(msg)
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyUp:
		if m.registerCursor > 0 {
			m.registerCursor--
		}
	case tea.KeyDown:
		if m.registerCursor < len(registers)-1 {
			m.registerCursor++
		}
	case tea.KeyEnter:
		// The AMC register is a snapshot; only invoices are filtered by issue date.
		if m.register() == "amc" {
			m.allTime = true
			m.form = m.buildPathForm()
			m.state = exportStatePath

			return m, m.form.Init()
		}

		m.timeframePicker.Reset()
		m.state = exportStateTimeframe
	}

	return m, nil
}

func (m ExportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			m.state = exportStateRegister
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = exportStateRegister
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if p := m.form.GetString("path"); p != "" {
		m.path = p
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd())
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.written = result.path

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m *ExportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateRegister:
		return lipgloss.NewStyle().Padding(1).Render(m.viewRegister())

	case exportStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case exportStatePath:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Writing %s register...", m.spinner.View(), m.register()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewRegister() string {
	labels := map[string]string{"amc": "AMC register", "invoice": "Invoice register"}

	s := "Select Register:\n\n"
	for i, r := range registers {
		cursor := " "
		if i == m.registerCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, labels[r])
	}

	return s + "\n(Enter to select, Esc to back)"
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", "Written to "+m.written),
	)
}

type exportResultMsg struct {
	path string
	err  error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd() tea.Cmd {
	register := m.register()
	dir := m.path
	start, end, all := m.startDate, m.endDate, m.allTime

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: err}
		}

		path := filepath.Join(dir, export.Filename(register, m.cal.Today()))

		f, err := os.Create(path)
		if err != nil {
			return exportResultMsg{err: err}
		}
		defer f.Close()

		if register == "amc" {
			err = m.exportService.AMCRegister(ctx, amc.ListFilter{}, f)
		} else {
			filter := invoice.ListFilter{}
			if !all {
				filter.From = &start
				filter.To = &end
			}

			err = m.exportService.InvoiceRegister(ctx, filter, f)
		}

		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{path: path}
	}
}
