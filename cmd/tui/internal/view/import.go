package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/liftdesk/internal/bulk"
	"github.com/MrJamesThe3rd/liftdesk/internal/importer"
)

const importTimeout = 2 * time.Minute

type Importer interface {
	Import(ctx context.Context, kind bulk.Kind, filename string, r io.Reader) (*importer.Report, error)
}

type importState int

const (
	importStateKindSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService Importer

	state        importState
	filePicker   filepicker.Model
	selectedKind bulk.Kind
	kindOptions  []bulk.Kind
	kindCursor   int

	report    *importer.Report
	errorList list.Model

	status string
	err    error
}

func NewImportModel(svc Importer) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".xlsx"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: svc,
		filePicker:    fp,
		kindOptions:   bulk.Kinds(),
	}
}

func (m ImportModel) Title() string { return "Import Spreadsheet" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Up/Down: scroll errors | Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return nil
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateKindSelect:
			return m.updateKindSelect(msg)
		case importStateResult:
			var cmd tea.Cmd
			m.errorList, cmd = m.errorList.Update(msg)

			return m, cmd
		}

	case importResultMsg:
		m.state = importStateResult

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.report = msg.report
		m.status = fmt.Sprintf("%d rows: %d imported, %d failed.",
			msg.report.Total, msg.report.Succeeded, msg.report.Failed)

		items := make([]list.Item, len(msg.report.Errors))
		for i, e := range msg.report.Errors {
			items[i] = rowErrorItem{err: e}
		}

		m.errorList = list.New(items, rowErrorDelegate{}, 80, 15)
		m.errorList.Title = "Rejected rows"
		m.errorList.SetShowStatusBar(false)
		m.errorList.SetFilteringEnabled(false)
		m.errorList.SetShowHelp(false)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing %s from %s...", m.selectedKind, path)

		return m, m.importCmd(m.selectedKind, path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateKindSelect
		return m, nil
	case importStateResult:
		m.state = importStateKindSelect
		m.err = nil
		m.report = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateKindSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.kindCursor > 0 {
			m.kindCursor--
		}
	case tea.KeyDown:
		if m.kindCursor < len(m.kindOptions)-1 {
			m.kindCursor++
		}
	case tea.KeyEnter:
		m.selectedKind = m.kindOptions[m.kindCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateKindSelect:
		return m.viewKindSelect()
	case importStateFilePick:
		return m.viewFilePick()
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewKindSelect() string {
	s := "What are you importing?\n\n"

	for i, kind := range m.kindOptions {
		cursor := " "
		if i == m.kindCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, string(kind))
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewFilePick() string {
	return lipgloss.NewStyle().Padding(1).Render(
		fmt.Sprintf("Select a CSV or XLSX file (%s):\n\n%s", m.selectedKind, m.filePicker.View()),
	)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	color := lipgloss.Color("46")
	if m.report.Failed > 0 {
		color = lipgloss.Color("214")
	}

	out := lipgloss.NewStyle().Foreground(color).Render(m.status)

	if len(m.report.Errors) > 0 {
		out += "\n\n" + m.errorList.View()

		if m.report.Truncated {
			out += "\n" + lipgloss.NewStyle().Faint(true).Render("More errors were found than are listed.")
		}
	}

	return style.Render(out + "\n\n(Esc to go back)")
}

type importResultMsg struct {
	report *importer.Report
	err    error
}

func (m ImportModel) importCmd(kind bulk.Kind, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		report, err := m.importService.Import(ctx, kind, filepath.Base(path), f)

		return importResultMsg{report: report, err: err}
	}
}

type rowErrorItem struct {
	err importer.RowError
}

func (i rowErrorItem) Title() string       { return "" }
func (i rowErrorItem) Description() string { return "" }
func (i rowErrorItem) FilterValue() string { return "" }

type rowErrorDelegate struct{}

func (d rowErrorDelegate) Height() int                             { return 2 }
func (d rowErrorDelegate) Spacing() int                            { return 0 }
func (d rowErrorDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowErrorDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(rowErrorItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	e := item.err

	line1 := fmt.Sprintf("%sRow %d  [%s]  %s", cursor, e.Row, e.Code, e.Message)

	line2 := ""
	if e.Column != "" {
		line2 = lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("      %s = %q", e.Column, e.Value))
	}

	fmt.Fprintf(w, "%s\n%s\n", line1, line2)
}
