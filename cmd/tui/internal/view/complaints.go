package view

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
)

type ComplaintService interface {
	List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next complaint.Status) (*complaint.Complaint, error)
}

// ComplaintModel steps through unresolved complaints, oldest first.
type ComplaintModel struct {
	CommonModel
	complaints ComplaintService

	queue   []*complaint.Complaint
	current *complaint.Complaint

	loading    bool
	status     string
	totalCount int
}

func NewComplaintModel(svc ComplaintService) ComplaintModel {
	return ComplaintModel{complaints: svc, loading: true}
}

func (m ComplaintModel) Title() string { return "Open Complaints" }

func (m ComplaintModel) ShortHelp() string {
	return "p: in progress | r: resolve | n: next | Esc: back"
}

func (m ComplaintModel) Init() tea.Cmd {
	return m.loadOpenCmd()
}

func (m ComplaintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "n":
			m.next()
		case "p":
			if m.current != nil {
				return m, m.moveCmd(m.current.ID, complaint.StatusInProgress)
			}
		case "r":
			if m.current != nil {
				return m, m.moveCmd(m.current.ID, complaint.StatusResolved)
			}
		}

	case loadComplaintsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading complaints: %v", msg.err)
			break
		}

		m.queue = msg.complaints
		m.totalCount = len(m.queue)
		m.next()

	case complaintMovedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			break
		}

		m.status = fmt.Sprintf("%s is now %s.", msg.complaint.ReferenceID, msg.complaint.Status)

		if msg.complaint.Status == complaint.StatusResolved {
			m.next()
			break
		}

		m.current = msg.complaint
	}

	return m, nil
}

func (m ComplaintModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading complaints...")
	}

	if m.current == nil {
		if m.totalCount == 0 {
			return lipgloss.NewStyle().Padding(2).Render("No open complaints.\n\n(Esc to back)")
		}

		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nAll caught up!\n\n(Esc to back)")
	}

	c := m.current

	info := fmt.Sprintf(
		"%s  %s\nReported: %s\n\n%s\n\n%s\n",
		c.ReferenceID,
		activeStyle(string(c.Status)),
		FormatDate(c.ReportedOn),
		lipgloss.NewStyle().Bold(true).Render(c.Subject),
		c.Description,
	)

	out := fmt.Sprintf("Complaint (%d more in queue)\n\n%s", len(m.queue), info)

	if m.status != "" {
		out += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(out + "\n\n(p: in progress, r: resolve, n: next, Esc: back)")
}

func (m *ComplaintModel) next() {
	if len(m.queue) == 0 {
		m.current = nil
		return
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
}

type loadComplaintsMsg struct {
	complaints []*complaint.Complaint
	err        error
}

func (m ComplaintModel) loadOpenCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var out []*complaint.Complaint

		for _, st := range []complaint.Status{complaint.StatusOpen, complaint.StatusInProgress} {
			list, err := m.complaints.List(ctx, complaint.ListFilter{Status: &st})
			if err != nil {
				return loadComplaintsMsg{err: err}
			}

			out = append(out, list...)
		}

		return loadComplaintsMsg{complaints: out}
	}
}

type complaintMovedMsg struct {
	complaint *complaint.Complaint
	err       error
}

func (m ComplaintModel) moveCmd(id uuid.UUID, next complaint.Status) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.complaints.UpdateStatus(ctx, id, next)

		return complaintMovedMsg{complaint: c, err: err}
	}
}
