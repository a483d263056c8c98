// Package export renders the AMC and invoice registers as XLSX workbooks.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

// ContentType is the MIME type of every workbook this package writes.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//go:generate mockgen -source=service.go -destination=service_mock.go -package=export
type AMCLister interface {
	List(ctx context.Context, filter amc.ListFilter) ([]*amc.AMC, error)
}

type InvoiceLister interface {
	List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error)
}

type CustomerLister interface {
	List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error)
}

type Service struct {
	amcs      AMCLister
	invoices  InvoiceLister
	customers CustomerLister
}

func NewService(amcs AMCLister, invoices InvoiceLister, customers CustomerLister) *Service {
	return &Service{amcs: amcs, invoices: invoices, customers: customers}
}

// Filename is the suggested download name, e.g. amc-register-20250601.xlsx.
func Filename(register string, day time.Time) string {
	return fmt.Sprintf("%s-register-%s.xlsx", register, day.Format("20060102"))
}

var amcColumns = []column{
	{title: "Reference", width: 12},
	{title: "Customer", width: 32},
	{title: "Lift", width: 32},
	{title: "Start", width: 12},
	{title: "End", width: 12},
	{title: "Units", width: 8, kind: cellNumber},
	{title: "Price", width: 14},
	{title: "GST %", width: 8, kind: cellNumber},
	{title: "Total", width: 14, total: true},
	{title: "Paid", width: 14, total: true},
	{title: "Due", width: 14, total: true},
	{title: "Credit", width: 14, total: true},
	{title: "Status", width: 12},
	{title: "Override reason", width: 30},
}

// AMCRegister writes one row per contract with its effective status.
func (s *Service) AMCRegister(ctx context.Context, filter amc.ListFilter, w io.Writer) error {
	amcs, err := s.amcs.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing amcs: %w", err)
	}

	names, err := s.customerNames(ctx)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(amcs))
	for _, a := range amcs {
		rows = append(rows, []any{
			a.ReferenceID,
			names[a.CustomerID],
			a.LiftDescription,
			a.StartDate,
			a.EndDate,
			a.UnitCount,
			a.Price,
			a.GSTPercent,
			a.Total,
			a.TotalPaid,
			a.AmountDue,
			a.Credit,
			string(a.Status()),
			a.OverrideReason,
		})
	}

	return write(w, sheet{name: "AMC Register", columns: amcColumns, rows: rows})
}

var invoiceColumns = []column{
	{title: "Reference", width: 12},
	{title: "Customer", width: 32},
	{title: "Issued", width: 12},
	{title: "Due date", width: 12},
	{title: "Subtotal", width: 14, total: true},
	{title: "Tax", width: 14, total: true},
	{title: "Total", width: 14, total: true},
	{title: "Paid", width: 14, total: true},
	{title: "Due", width: 14, total: true},
	{title: "Credit", width: 14, total: true},
	{title: "Status", width: 16},
}

func (s *Service) InvoiceRegister(ctx context.Context, filter invoice.ListFilter, w io.Writer) error {
	invoices, err := s.invoices.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing invoices: %w", err)
	}

	names, err := s.customerNames(ctx)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []any{
			inv.ReferenceID,
			names[inv.CustomerID],
			inv.IssueDate,
			inv.DueDate,
			inv.Subtotal,
			inv.TaxTotal,
			inv.Total,
			inv.TotalPaid,
			inv.AmountDue,
			inv.Credit,
			string(inv.Status),
		})
	}

	return write(w, sheet{name: "Invoice Register", columns: invoiceColumns, rows: rows})
}

// customerNames labels customers as "CUST001 Shanti Apartments".
func (s *Service) customerNames(ctx context.Context) (map[uuid.UUID]string, error) {
	customers, err := s.customers.List(ctx, customer.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.ReferenceID + " " + c.Name
	}

	return names, nil
}
