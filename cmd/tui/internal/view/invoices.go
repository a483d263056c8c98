package view

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/money"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
)

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type PaymentRecorder interface {
	Create(ctx context.Context, params payment.Params) (*payment.Payment, error)
}

var paymentModes = []payment.Mode{
	payment.ModeCash,
	payment.ModeCheque,
	payment.ModeBankTransfer,
	payment.ModeUPI,
}

// InvoiceModel walks through every invoice with money outstanding, oldest due date first,
// and records payments against them.
type InvoiceModel struct {
	CommonModel
	invoices InvoiceLister
	payments PaymentRecorder

	queue   []*invoice.Invoice
	current *invoice.Invoice

	amountInput textinput.Model
	modeIdx     int

	loading    bool
	status     string
	totalCount int
}

func NewInvoiceModel(invoices InvoiceLister, payments PaymentRecorder) InvoiceModel {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Width = 20

	return InvoiceModel{
		invoices:    invoices,
		payments:    payments,
		amountInput: ti,
		loading:     true,
	}
}

func (m InvoiceModel) Title() string { return "Receivables" }

func (m InvoiceModel) ShortHelp() string {
	return "Enter: record payment | Tab: mode | Ctrl+N: skip | Esc: back"
}

func (m InvoiceModel) Init() tea.Cmd {
	return m.loadOutstandingCmd()
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.modeIdx = (m.modeIdx + 1) % len(paymentModes)
			return m, nil
		case "ctrl+n":
			m.next()
			return m, nil
		case "enter":
			if m.current == nil {
				return m, nil
			}

			amount, err := money.ParseAmount(m.amountInput.Value())
			if err != nil || !amount.IsPositive() {
				m.status = "Enter a positive amount."
				return m, nil
			}

			return m, m.recordPaymentCmd(m.current, payment.Params{
				CustomerID: m.current.CustomerID,
				TargetKind: payment.TargetInvoice,
				TargetID:   m.current.ID,
				Amount:     amount,
				Mode:       paymentModes[m.modeIdx],
			})
		}

	case loadOutstandingMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.queue = msg.invoices
		m.totalCount = len(m.queue)
		m.next()

		return m, textinput.Blink

	case paymentRecordedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			break
		}

		m.next()
		m.status = fmt.Sprintf("Recorded %s against %s.", msg.payment.ReferenceID, msg.invoiceRef)
	}

	m.amountInput, cmd = m.amountInput.Update(msg)

	return m, cmd
}

func (m InvoiceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading outstanding invoices...")
	}

	if m.current == nil {
		if m.totalCount == 0 {
			return lipgloss.NewStyle().Padding(2).Render("Nothing outstanding.\n\n(Esc to back)")
		}

		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nAll done!\n\n(Esc to back)")
	}

	inv := m.current

	statusStyle := lipgloss.NewStyle()
	if inv.Status == derive.PaymentOverdue {
		statusStyle = statusStyle.Foreground(lipgloss.Color("196"))
	}

	info := fmt.Sprintf(
		"Invoice: %s  %s\nIssued:  %s\nDue:     %s\nTotal:   %s\nPaid:    %s\nOwed:    %s\n",
		inv.ReferenceID,
		statusStyle.Render(string(inv.Status)),
		FormatDate(inv.IssueDate),
		FormatDate(inv.DueDate),
		FormatMoney(inv.Total),
		FormatMoney(inv.TotalPaid),
		FormatMoney(inv.AmountDue),
	)

	out := fmt.Sprintf("Outstanding Invoice (%d remaining)\n\n%s\nAmount received:\n%s\nMode: %s\n",
		len(m.queue)+1, info, m.amountInput.View(), activeStyle(string(paymentModes[m.modeIdx])))

	if m.status != "" {
		out += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(out)
}

func (m *InvoiceModel) next() {
	if len(m.queue) == 0 {
		m.current = nil
		m.amountInput.SetValue("")

		return
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.modeIdx = 0
	m.amountInput.SetValue(FormatMoney(m.current.AmountDue))
	m.amountInput.Focus()
}

type loadOutstandingMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoiceModel) loadOutstandingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		all, err := m.invoices.List(ctx, invoice.ListFilter{})
		if err != nil {
			return loadOutstandingMsg{err: err}
		}

		outstanding := make([]*invoice.Invoice, 0, len(all))
		for _, inv := range all {
			if inv.AmountDue.IsPositive() {
				outstanding = append(outstanding, inv)
			}
		}

		sort.SliceStable(outstanding, func(i, j int) bool {
			return outstanding[i].DueDate.Before(outstanding[j].DueDate)
		})

		return loadOutstandingMsg{invoices: outstanding}
	}
}

type paymentRecordedMsg struct {
	payment    *payment.Payment
	invoiceRef string
	err        error
}

func (m InvoiceModel) recordPaymentCmd(inv *invoice.Invoice, params payment.Params) tea.Cmd {
	ref := inv.ReferenceID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.payments.Create(ctx, params)

		return paymentRecordedMsg{payment: p, invoiceRef: ref, err: err}
	}
}
