package view

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
)

type fakeInvoices struct{ list []*invoice.Invoice }

func (f fakeInvoices) List(_ context.Context, _ invoice.ListFilter) ([]*invoice.Invoice, error) {
	return f.list, nil
}

type fakePayments struct{ got []payment.Params }

func (f *fakePayments) Create(_ context.Context, p payment.Params) (*payment.Payment, error) {
	f.got = append(f.got, p)
	return &payment.Payment{ReferenceID: "PAY001"}, nil
}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestInvoiceModel_QueueAndRecord(t *testing.T) {
	paid := &invoice.Invoice{ReferenceID: "INV001", DueDate: day(1), AmountDue: decimal.Zero}
	later := &invoice.Invoice{ID: uuid.New(), ReferenceID: "INV002", DueDate: day(20), AmountDue: decimal.NewFromInt(500)}
	earlier := &invoice.Invoice{ID: uuid.New(), CustomerID: uuid.New(), ReferenceID: "INV003", DueDate: day(5), AmountDue: decimal.RequireFromString("1180.50")}

	payments := &fakePayments{}
	m := NewInvoiceModel(fakeInvoices{list: []*invoice.Invoice{paid, later, earlier}}, payments)

	model, _ := m.Update(m.Init()())
	m = model.(InvoiceModel)

	require.NotNil(t, m.current)
	assert.Equal(t, "INV003", m.current.ReferenceID)
	assert.Equal(t, 2, m.totalCount)
	assert.Equal(t, "1180.50", m.amountInput.Value())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(InvoiceModel)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(InvoiceModel)
	require.NotNil(t, cmd)

	model, _ = m.Update(cmd())
	m = model.(InvoiceModel)

	require.Len(t, payments.got, 1)
	assert.Equal(t, payment.TargetInvoice, payments.got[0].TargetKind)
	assert.Equal(t, earlier.ID, payments.got[0].TargetID)
	assert.Equal(t, earlier.CustomerID, payments.got[0].CustomerID)
	assert.Equal(t, payment.ModeCheque, payments.got[0].Mode)
	assert.True(t, decimal.RequireFromString("1180.50").Equal(payments.got[0].Amount))

	assert.Equal(t, "INV002", m.current.ReferenceID)
	assert.Contains(t, m.status, "PAY001")
}

type fakeComplaints struct {
	byStatus map[complaint.Status][]*complaint.Complaint
}

func (f fakeComplaints) List(_ context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error) {
	return f.byStatus[*filter.Status], nil
}

func (f fakeComplaints) UpdateStatus(_ context.Context, id uuid.UUID, next complaint.Status) (*complaint.Complaint, error) {
	return &complaint.Complaint{ID: id, ReferenceID: "CMP001", Status: next}, nil
}

func TestComplaintModel_ResolveAdvances(t *testing.T) {
	first := &complaint.Complaint{ID: uuid.New(), ReferenceID: "CMP001", Status: complaint.StatusOpen}
	second := &complaint.Complaint{ID: uuid.New(), ReferenceID: "CMP002", Status: complaint.StatusInProgress}

	m := NewComplaintModel(fakeComplaints{byStatus: map[complaint.Status][]*complaint.Complaint{
		complaint.StatusOpen:       {first},
		complaint.StatusInProgress: {second},
	}})

	model, _ := m.Update(m.Init()())
	m = model.(ComplaintModel)

	assert.Equal(t, 2, m.totalCount)
	assert.Equal(t, "CMP001", m.current.ReferenceID)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = model.(ComplaintModel)

	model, _ = m.Update(cmd())
	m = model.(ComplaintModel)

	assert.Equal(t, "CMP001", m.current.ReferenceID)
	assert.Equal(t, complaint.StatusInProgress, m.current.Status)

	model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = model.(ComplaintModel)

	model, _ = m.Update(cmd())
	m = model.(ComplaintModel)

	assert.Equal(t, "CMP002", m.current.ReferenceID)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "05-06-2025", FormatDate(day(5)))
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "-", FormatOptionalMoney(nil))
	assert.Equal(t, "10.50", FormatMoney(decimal.RequireFromString("10.5")))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFrameRange(t *testing.T) {
	type testCase struct {
		name      string
		frame     Timeframe
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}

	tests := []testCase{
		{
			name:      "ThisQuarterFirstOfFY",
			frame:     TimeframeThisQuarter,
			today:     date(2025, time.June, 15),
			wantStart: date(2025, time.April, 1),
			wantEnd:   date(2025, time.June, 15),
		},
		{
			name:      "ThisQuarterJanuaryToMarch",
			frame:     TimeframeThisQuarter,
			today:     date(2026, time.February, 10),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.February, 10),
		},
		{
			name:      "LastQuarterCrossesFY",
			frame:     TimeframeLastQuarter,
			today:     date(2025, time.May, 2),
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.March, 31),
		},
		{
			name:      "ThisFYBeforeApril",
			frame:     TimeframeThisFY,
			today:     date(2026, time.March, 31),
			wantStart: date(2025, time.April, 1),
			wantEnd:   date(2026, time.March, 31),
		},
		{
			name:      "LastFY",
			frame:     TimeframeLastFY,
			today:     date(2025, time.April, 1),
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2025, time.March, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := frameRange(tt.frame, tt.today)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}

	assert.Equal(t, "FY 2025-26", fyLabel(date(2025, time.April, 1)))
	assert.Equal(t, "FY 2099-00", fyLabel(date(2099, time.April, 1)))
}

func TestTimeframePicker_UsesBusinessCalendar(t *testing.T) {
	// 20:00 UTC on 31 March is already the new financial year in Kolkata.
	kolkata := time.FixedZone("IST", 5*3600+1800)
	cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 3, 31, 20, 0, 0, 0, time.UTC)), Location: kolkata}

	m := NewTimeframePicker(cal, TimeframeThisQuarter)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(TimeframeSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.April, 1), msg.Start)
	assert.Equal(t, date(2025, time.April, 1), msg.End)
	assert.False(t, msg.All)
	assert.Contains(t, m.View(), "FY 2025-26")
}

func TestTimeframePicker_Custom(t *testing.T) {
	type testCase struct {
		name    string
		from    string
		to      string
		wantErr string
	}

	tests := []testCase{
		{name: "Valid", from: "01-04-2025", to: "30-06-2025"},
		{name: "IsoRejected", from: "2025-04-01", to: "30-06-2025", wantErr: "invalid from date"},
		{name: "Reversed", from: "30-06-2025", to: "01-04-2025", wantErr: "before"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)), Location: time.UTC}

			m := NewTimeframePicker(cal, TimeframeThisQuarter)
			for range TimeframeCustom {
				m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
			}

			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.False(t, m.IsSelecting())

			m.startInput.SetValue(tt.from)
			m.endInput.SetValue(tt.to)

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			if tt.wantErr != "" {
				assert.Nil(t, cmd)
				require.Error(t, m.err)
				assert.Contains(t, m.err.Error(), tt.wantErr)

				return
			}

			require.NotNil(t, cmd)

			msg := cmd().(TimeframeSelectedMsg)
			assert.Equal(t, date(2025, time.April, 1), msg.Start)
			assert.Equal(t, date(2025, time.June, 30), msg.End)

			m.Reset()
			assert.True(t, m.IsSelecting())
			assert.Empty(t, m.startInput.Value())
		})
	}
}
