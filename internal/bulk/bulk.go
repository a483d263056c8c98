// Package bulk binds the generic importer to the entity services, so every imported
// row allocates its reference and recomputes its totals exactly like a manual create.
package bulk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/importer"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

type Kind string

const (
	KindCustomers    Kind = "customers"
	KindItems        Kind = "items"
	KindAMCs         Kind = "amcs"
	KindRequisitions Kind = "requisitions"
	KindQuotations   Kind = "quotations"
	KindPayments     Kind = "payments"
)

// Kinds lists the importable kinds in the order they usually need to be loaded.
func Kinds() []Kind {
	return []Kind{KindCustomers, KindItems, KindAMCs, KindRequisitions, KindQuotations, KindPayments}
}

//go:generate mockgen -source=bulk.go -destination=services_mock.go -package=bulk
type Customers interface {
	Create(ctx context.Context, params customer.Params) (*customer.Customer, error)
	GetByReference(ctx context.Context, ref string) (*customer.Customer, error)
}

type Items interface {
	Create(ctx context.Context, params item.Params) (*item.Item, error)
	GetByCode(ctx context.Context, code string) (*item.Item, error)
}

type AMCs interface {
	Create(ctx context.Context, params amc.Params) (*amc.AMC, error)
	GetByReference(ctx context.Context, ref string) (*amc.AMC, error)
}

type Invoices interface {
	GetByReference(ctx context.Context, ref string) (*invoice.Invoice, error)
}

type Requisitions interface {
	Create(ctx context.Context, params requisition.Params) (*requisition.Requisition, error)
}

type Quotations interface {
	Create(ctx context.Context, params quotation.Params) (*quotation.Quotation, error)
}

type Payments interface {
	Create(ctx context.Context, params payment.Params) (*payment.Payment, error)
}

type Aliases interface {
	Suggest(ctx context.Context, raw string) (string, error)
}

type Deps struct {
	Customers    Customers
	Items        Items
	AMCs         AMCs
	Invoices     Invoices
	Requisitions Requisitions
	Quotations   Quotations
	Payments     Payments
	Aliases      Aliases
}

type Service struct {
	deps   Deps
	runner importer.Runner
}

func NewService(deps Deps, maxErrors int) *Service {
	return &Service{deps: deps, runner: importer.Runner{MaxErrors: maxErrors}}
}

// ParseKind accepts the plural kind names, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	names := make([]string, 0, len(Kinds()))
	for _, known := range Kinds() {
		names = append(names, string(known))
	}

	return "", apperr.Invalid("kind", "must be one of: "+strings.Join(names, " "))
}

// Import reads a CSV or XLSX upload, picking the reader from filename.
func (s *Service) Import(ctx context.Context, kind Kind, filename string, r io.Reader) (*importer.Report, error) {
	format, err := importer.FormatFor(filename)
	if err != nil {
		return nil, err
	}

	rows, err := importer.Read(r, format)
	if err != nil {
		return nil, err
	}

	return s.ImportRows(ctx, kind, rows)
}

// ImportRows applies already-read rows; rows[0] is the header.
func (s *Service) ImportRows(ctx context.Context, kind Kind, rows [][]string) (*importer.Report, error) {
	k, ok := s.kinds()[kind]
	if !ok {
		return nil, apperr.Invalid("kind", fmt.Sprintf("unknown import kind %q", kind))
	}

	report, err := s.runner.Run(ctx, rows, k.schema, k.apply)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", kind, err)
	}

	slog.Info("import finished",
		"kind", kind,
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)

	return report, nil
}
