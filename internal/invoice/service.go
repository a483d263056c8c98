package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	GetInvoiceByReference(ctx context.Context, ref string) (*Invoice, error)
	// ListInvoices returns headers only; Lines is left empty.
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	// MutateInvoice locks the invoice, applies fn inside that transaction and saves the result.
	MutateInvoice(ctx context.Context, id uuid.UUID, fn func(q database.Querier, inv *Invoice) error) (*Invoice, error)

	ListStatusInputs(ctx context.Context) ([]StatusInput, error)
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.PaymentStatus) (bool, error)
}

type Service struct {
	repo Repository
	refs reference.Allocator
	calc *derive.Calculator
	cal  clock.Calendar
}

func NewService(repo Repository, refs reference.Allocator, calc *derive.Calculator, cal clock.Calendar) *Service {
	return &Service{repo: repo, refs: refs, calc: calc, cal: cal}
}

type Params struct {
	CustomerID uuid.UUID
	AMCID      *uuid.UUID
	// IssueDate defaults to today.
	IssueDate time.Time
	DueDate   time.Time
	Lines     []lineitem.Line
}

type ListFilter struct {
	CustomerID *uuid.UUID
	AMCID      *uuid.UUID
	Status     *derive.PaymentStatus
	From       *time.Time
	To         *time.Time
}

func validate(p Params) error {
	v := apperr.NewValidation()

	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	if !p.DueDate.IsZero() && !p.IssueDate.IsZero() && p.DueDate.Before(p.IssueDate) {
		v.Add("due_date", "must not be before issue_date")
	}

	lineitem.Validate(v, p.Lines)

	return v.OrNil()
}

func (p Params) apply(inv *Invoice, today time.Time) {
	inv.CustomerID = p.CustomerID
	inv.AMCID = p.AMCID
	inv.IssueDate = p.IssueDate
	inv.DueDate = p.DueDate

	if inv.IssueDate.IsZero() {
		inv.IssueDate = today
	}

	inv.Lines = make([]lineitem.Line, len(p.Lines))
	for i, l := range p.Lines {
		l.Description = strings.TrimSpace(l.Description)
		inv.Lines[i] = l
	}
}

func (s *Service) Create(ctx context.Context, params Params) (*Invoice, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityInvoice)
	if err != nil {
		return nil, fmt.Errorf("allocating invoice reference: %w", err)
	}

	today := s.cal.Today()

	inv := &Invoice{ReferenceID: ref, TotalPaid: decimal.Zero}
	params.apply(inv, today)
	inv.Recompute(s.calc, today)

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	s.warnDefaulted(inv)

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Invoice, error) {
	return s.repo.GetInvoiceByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// Update replaces the header and every line, then recomputes. The paid total is kept.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Invoice, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	today := s.cal.Today()

	inv, err := s.repo.MutateInvoice(ctx, id, func(_ database.Querier, inv *Invoice) error {
		params.apply(inv, today)
		inv.Recompute(s.calc, today)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.warnDefaulted(inv)

	return inv, nil
}

// ApplyPaid sets the paid total from the payment ledger while the invoice row is locked.
func (s *Service) ApplyPaid(ctx context.Context, id uuid.UUID, paid func(ctx context.Context, q database.Querier, owner uuid.UUID) (decimal.Decimal, error)) error {
	today := s.cal.Today()

	_, err := s.repo.MutateInvoice(ctx, id, func(q database.Querier, inv *Invoice) error {
		total, err := paid(ctx, q, inv.CustomerID)
		if err != nil {
			return err
		}

		inv.TotalPaid = total
		inv.Recompute(s.calc, today)

		return nil
	})

	return err
}

func (s *Service) Name() string { return "invoice" }

func (s *Service) RefreshStatuses(ctx context.Context, today time.Time) (int, error) {
	inputs, err := s.repo.ListStatusInputs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing invoice statuses: %w", err)
	}

	updated := 0

	for _, in := range inputs {
		next := derive.PaymentStatusOn(today, in.DueDate, in.Total, in.TotalPaid)
		if next == in.Status {
			continue
		}

		ok, err := s.repo.CompareAndSetStatus(ctx, in.ID, in.Status, next)
		if err != nil {
			return updated, fmt.Errorf("updating invoice %s status: %w", in.ID, err)
		}

		if ok {
			updated++
		}
	}

	return updated, nil
}

func (s *Service) warnDefaulted(inv *Invoice) {
	if len(inv.Defaulted) == 0 {
		return
	}

	slog.Warn("invoice total computed with missing inputs", "reference", inv.ReferenceID, "defaulted", inv.Defaulted)
}
