package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/liftdesk/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/liftdesk/internal/app"
	"github.com/MrJamesThe3rd/liftdesk/internal/config"
	"github.com/MrJamesThe3rd/liftdesk/internal/logging"
)

type model struct {
	app *app.App

	currentView View

	importView    view.ImportModel
	amcView       view.AMCModel
	invoiceView   view.InvoiceModel
	complaintView view.ComplaintModel
	exportView    view.ExportModel
	sweepView     view.SweepModel
}

type View int

const (
	ViewMenu      View = 0
	ViewImport    View = 1
	ViewAMC       View = 2
	ViewInvoice   View = 3
	ViewComplaint View = 4
	ViewExport    View = 5
	ViewSweep     View = 6
)

func initialModel(a *app.App) model {
	return model{
		app:         a,
		currentView: ViewMenu,
		importView:  view.NewImportModel(a.Import),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.app.Import)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewAMC
				m.amcView = view.NewAMCModel(m.app.AMCs)

				return m, m.amcView.Init()
			case "3":
				m.currentView = ViewInvoice
				m.invoiceView = view.NewInvoiceModel(m.app.Invoices, m.app.Payments)

				return m, m.invoiceView.Init()
			case "4":
				m.currentView = ViewComplaint
				m.complaintView = view.NewComplaintModel(m.app.Complaints)

				return m, m.complaintView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.app.Export, m.app.Calendar)

				return m, m.exportView.Init()
			case "6":
				m.currentView = ViewSweep
				m.sweepView = view.NewSweepModel(m.app.Sweep)

				return m, m.sweepView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewAMC:
		var newModel tea.Model
		newModel, cmd = m.amcView.Update(msg)
		m.amcView = newModel.(view.AMCModel)
	case ViewInvoice:
		var newModel tea.Model
		newModel, cmd = m.invoiceView.Update(msg)
		m.invoiceView = newModel.(view.InvoiceModel)
	case ViewComplaint:
		var newModel tea.Model
		newModel, cmd = m.complaintView.Update(msg)
		m.complaintView = newModel.(view.ComplaintModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewSweep:
		var newModel tea.Model
		newModel, cmd = m.sweepView.Update(msg)
		m.sweepView = newModel.(view.SweepModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"LiftDesk\n\n" +
				"1. Import Spreadsheet\n" +
				"2. AMC Register\n" +
				"3. Receivables\n" +
				"4. Open Complaints\n" +
				"5. Export Register\n" +
				"6. Run Status Sweep\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewAMC:
		return m.amcView.View()
	case ViewInvoice:
		return m.invoiceView.View()
	case ViewComplaint:
		return m.complaintView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewSweep:
		return m.sweepView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea; only warnings and above reach stderr.
	logging.Setup(os.Stderr, logging.Options{Level: "warn", AppName: "liftdesk-tui"})

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(initialModel(a))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		a.Close()
		os.Exit(1)
	}
}
