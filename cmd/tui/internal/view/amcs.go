package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
)

type AMCService interface {
	List(ctx context.Context, filter amc.ListFilter) ([]*amc.AMC, error)
	SetOverride(ctx context.Context, id uuid.UUID, status derive.ContractStatus, reason string) (*amc.AMC, error)
	ClearOverride(ctx context.Context, id uuid.UUID) (*amc.AMC, error)
}

type amcState int

const (
	amcStateBrowse amcState = iota
	amcStateEdit
)

var amcStatusFilters = []*derive.ContractStatus{
	nil,
	new(derive.ContractActive),
	new(derive.ContractExpired),
	new(derive.ContractOnHold),
}

type AMCModel struct {
	CommonModel
	amcService AMCService

	state amcState
	table table.Model
	amcs  []*amc.AMC
	form  *huh.Form

	statusFilterIdx int

	filter  amc.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formStatus string
	formReason string
}

func NewAMCModel(svc AMCService) AMCModel {
	columns := []table.Column{
		{Title: "Ref", Width: 7},
		{Title: "Lift", Width: 28},
		{Title: "Start", Width: 11},
		{Title: "End", Width: 11},
		{Title: "Total", Width: 11},
		{Title: "Due", Width: 11},
		{Title: "Status", Width: 10},
		{Title: "Override", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AMCModel{
		amcService: svc,
		table:      t,
		loading:    true,
	}
}

func (m AMCModel) Title() string { return "AMC Register" }

func (m AMCModel) ShortHelp() string {
	if m.state == amcStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: override status | s: status filter | r: refresh"
}

func (m AMCModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AMCModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAMCsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.amcs = msg.amcs
		m.refreshTable()

		return m, nil

	case amcSaveMsg:
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = amcStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case amcStateBrowse:
		return m.updateBrowse(msg)
	case amcStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m AMCModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(amcStatusFilters)
			m.filter.Status = amcStatusFilters[m.statusFilterIdx]

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AMCModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.amcs) {
		return m, nil
	}

	a := m.amcs[idx]
	m.formStatus = ""
	m.formReason = a.OverrideReason

	if a.StatusOverride != nil {
		m.formStatus = string(*a.StatusOverride)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Derived from dates", ""),
					huh.NewOption("Active", string(derive.ContractActive)),
					huh.NewOption("Expired", string(derive.ContractExpired)),
					huh.NewOption("On hold", string(derive.ContractOnHold)),
				).
				Value(&m.formStatus),

			huh.NewInput().
				Key("reason").
				Title("Reason").
				Placeholder("e.g. site closed for renovation").
				Value(&m.formReason),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = amcStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m AMCModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = amcStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m AMCModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading contracts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Active", "Expired", "On hold"}

	header := fmt.Sprintf("Filter: [s] Status: %s | %d contracts",
		activeStyle(statusLabels[m.statusFilterIdx]), len(m.amcs))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == amcStateEdit && m.form != nil {
		idx := m.table.Cursor()

		derived := ""
		if idx >= 0 && idx < len(m.amcs) {
			derived = fmt.Sprintf("%s (derived: %s)", m.amcs[idx].ReferenceID, m.amcs[idx].DerivedStatus)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Override Status\n\n%s\n\n%s", derived, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *AMCModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.amcs))
	for _, a := range m.amcs {
		override := ""
		if a.StatusOverride != nil {
			override = a.OverrideReason
		}

		rows = append(rows, table.Row{
			a.ReferenceID,
			a.LiftDescription,
			FormatDate(a.StartDate),
			FormatDate(a.EndDate),
			FormatMoney(a.Total),
			FormatMoney(a.AmountDue),
			string(a.Status()),
			override,
		})
	}

	m.table.SetRows(rows)
}

type loadAMCsMsg struct {
	amcs []*amc.AMC
	err  error
}

func (m AMCModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amcs, err := m.amcService.List(ctx, filter)

		return loadAMCsMsg{amcs: amcs, err: err}
	}
}

type amcSaveMsg struct {
	err error
}

func (m AMCModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.amcs) {
		return nil
	}

	// Read back through the form: the bound fields belong to an earlier copy of the model.
	id := m.amcs[idx].ID
	status := m.form.GetString("status")
	reason := strings.TrimSpace(m.form.GetString("reason"))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if status == "" {
			_, err = m.amcService.ClearOverride(ctx, id)
		} else {
			_, err = m.amcService.SetOverride(ctx, id, derive.ContractStatus(status), reason)
		}

		return amcSaveMsg{err: err}
	}
}
