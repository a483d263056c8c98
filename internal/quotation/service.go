package quotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quotation
type Repository interface {
	CreateQuotation(ctx context.Context, q *Quotation) error
	GetQuotation(ctx context.Context, id uuid.UUID) (*Quotation, error)
	GetQuotationByReference(ctx context.Context, ref string) (*Quotation, error)
	ListQuotations(ctx context.Context, filter ListFilter) ([]*Quotation, error)
	MutateQuotation(ctx context.Context, id uuid.UUID, fn func(q *Quotation) error) (*Quotation, error)

	ListStatusInputs(ctx context.Context) ([]StatusInput, error)
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.QuoteStatus) (bool, error)
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
	// QuoteDate defaults to today.
	QuoteDate time.Time
	// ValidUntil of zero means the quote never lapses.
	ValidUntil time.Time
	Lines      []lineitem.Line
}

type ListFilter struct {
	CustomerID *uuid.UUID
	Status     *derive.QuoteStatus
}

func validate(p Params) error {
	v := apperr.NewValidation()

	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	if !p.ValidUntil.IsZero() && !p.QuoteDate.IsZero() && p.ValidUntil.Before(p.QuoteDate) {
		v.Add("valid_until", "must not be before quote_date")
	}

	lineitem.Validate(v, p.Lines)

	return v.OrNil()
}

func (s *Service) Create(ctx context.Context, params Params) (*Quotation, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityQuotation)
	if err != nil {
		return nil, fmt.Errorf("allocating quotation reference: %w", err)
	}

	today := s.cal.Today()

	q := &Quotation{
		ReferenceID: ref,
		CustomerID:  params.CustomerID,
		QuoteDate:   params.QuoteDate,
		ValidUntil:  params.ValidUntil,
		Lines:       make([]lineitem.Line, len(params.Lines)),
	}

	if q.QuoteDate.IsZero() {
		q.QuoteDate = today
	}

	for i, l := range params.Lines {
		l.Description = strings.TrimSpace(l.Description)
		q.Lines[i] = l
	}

	q.Recompute(s.calc, today)

	if err := s.repo.CreateQuotation(ctx, q); err != nil {
		return nil, err
	}

	if len(q.Defaulted) > 0 {
		slog.Warn("quotation total computed with missing inputs", "reference", q.ReferenceID, "defaulted", q.Defaulted)
	}

	return q, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	return s.repo.GetQuotation(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Quotation, error) {
	return s.repo.GetQuotationByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Quotation, error) {
	return s.repo.ListQuotations(ctx, filter)
}

// Accept marks the quote accepted. Accepting twice is a no-op; an expired quote cannot be accepted.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	now := s.cal.Now()
	today := s.cal.Today()

	return s.repo.MutateQuotation(ctx, id, func(q *Quotation) error {
		if q.AcceptedAt != nil {
			return nil
		}

		if derive.QuoteStatusOn(today, q.ValidUntil, false) == derive.QuoteExpired {
			return apperr.Invalid("status", "quotation expired on "+q.ValidUntil.Format(time.DateOnly))
		}

		q.AcceptedAt = &now
		q.Recompute(s.calc, today)

		return nil
	})
}

func (s *Service) Name() string { return "quotation" }

func (s *Service) RefreshStatuses(ctx context.Context, today time.Time) (int, error) {
	inputs, err := s.repo.ListStatusInputs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing quotation statuses: %w", err)
	}

	updated := 0

	for _, in := range inputs {
		next := derive.QuoteStatusOn(today, in.ValidUntil, in.Accepted)
		if next == in.Status {
			continue
		}

		ok, err := s.repo.CompareAndSetStatus(ctx, in.ID, in.Status, next)
		if err != nil {
			return updated, fmt.Errorf("updating quotation %s status: %w", in.ID, err)
		}

		if ok {
			updated++
		}
	}

	return updated, nil
}
