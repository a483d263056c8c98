package amc

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
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=amc
type Repository interface {
	CreateAMC(ctx context.Context, a *AMC) error
	GetAMC(ctx context.Context, id uuid.UUID) (*AMC, error)
	GetAMCByReference(ctx context.Context, ref string) (*AMC, error)
	ListAMCs(ctx context.Context, filter ListFilter) ([]*AMC, error)
	// MutateAMC locks the row, applies fn and writes the result back in one transaction.
	// fn receives that transaction so related writes commit or roll back with the AMC.
	MutateAMC(ctx context.Context, id uuid.UUID, fn func(q database.Querier, a *AMC) error) (*AMC, error)

	ListStatusInputs(ctx context.Context) ([]StatusInput, error)
	// CompareAndSetStatus updates derived_status only if it still equals from.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to derive.ContractStatus) (bool, error)
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
	CustomerID       uuid.UUID
	LiftDescription  string
	StartDate        time.Time
	EndDate          time.Time
	Price            *decimal.Decimal
	UnitCount        *decimal.Decimal
	GSTPercent       *decimal.Decimal
	GenerateContract bool
}

type ListFilter struct {
	CustomerID *uuid.UUID
	// Status filters on the effective status (override, else derived).
	Status *derive.ContractStatus
}

var hundred = decimal.NewFromInt(100)

func validate(p Params) error {
	v := apperr.NewValidation()

	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		v.Add("end_date", "must not be before start_date")
	}

	if p.Price != nil && p.Price.IsNegative() {
		v.Add("price", "must not be negative")
	}

	if p.UnitCount != nil && p.UnitCount.IsNegative() {
		v.Add("unit_count", "must not be negative")
	}

	if p.GSTPercent != nil && (p.GSTPercent.IsNegative() || p.GSTPercent.GreaterThan(hundred)) {
		v.Add("gst_percent", "must be between 0 and 100")
	}

	return v.OrNil()
}

func (p Params) apply(a *AMC) {
	a.CustomerID = p.CustomerID
	a.LiftDescription = strings.TrimSpace(p.LiftDescription)
	a.StartDate = p.StartDate
	a.EndDate = p.EndDate
	a.Price = p.Price
	a.UnitCount = p.UnitCount
	a.GSTPercent = p.GSTPercent
	a.GenerateContract = p.GenerateContract
}

// Create allocates the reference, derives totals and status, then inserts.
func (s *Service) Create(ctx context.Context, params Params) (*AMC, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityAMC)
	if err != nil {
		return nil, fmt.Errorf("allocating amc reference: %w", err)
	}

	a := &AMC{ReferenceID: ref, TotalPaid: decimal.Zero}
	params.apply(a)
	a.Recompute(s.calc, s.cal.Today())

	if err := s.repo.CreateAMC(ctx, a); err != nil {
		return nil, err
	}

	s.warnDefaulted(a)

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*AMC, error) {
	return s.repo.GetAMC(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*AMC, error) {
	return s.repo.GetAMCByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*AMC, error) {
	return s.repo.ListAMCs(ctx, filter)
}

// Update replaces the inputs and recomputes every derived field.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*AMC, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	today := s.cal.Today()

	a, err := s.repo.MutateAMC(ctx, id, func(_ database.Querier, a *AMC) error {
		params.apply(a)
		a.Recompute(s.calc, today)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.warnDefaulted(a)

	return a, nil
}

// SetOverride pins the displayed status. The derived status keeps being maintained underneath.
func (s *Service) SetOverride(ctx context.Context, id uuid.UUID, status derive.ContractStatus, reason string) (*AMC, error) {
	v := apperr.NewValidation()

	if !status.IsValid() {
		v.Add("status", "must be one of: active expired on_hold")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		v.Add("reason", "is required")
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	today := s.cal.Today()

	return s.repo.MutateAMC(ctx, id, func(_ database.Querier, a *AMC) error {
		a.StatusOverride = &status
		a.OverrideReason = reason
		a.Recompute(s.calc, today)

		return nil
	})
}

func (s *Service) ClearOverride(ctx context.Context, id uuid.UUID) (*AMC, error) {
	today := s.cal.Today()

	return s.repo.MutateAMC(ctx, id, func(_ database.Querier, a *AMC) error {
		a.StatusOverride = nil
		a.OverrideReason = ""
		a.Recompute(s.calc, today)

		return nil
	})
}

// ApplyPaid sets the paid total from the payment ledger and recomputes the amount due.
// paid runs inside the AMC's locked transaction, so concurrent payments cannot interleave.
func (s *Service) ApplyPaid(ctx context.Context, id uuid.UUID, paid func(ctx context.Context, q database.Querier, owner uuid.UUID) (decimal.Decimal, error)) error {
	today := s.cal.Today()

	_, err := s.repo.MutateAMC(ctx, id, func(q database.Querier, a *AMC) error {
		total, err := paid(ctx, q, a.CustomerID)
		if err != nil {
			return err
		}

		a.TotalPaid = total
		a.Recompute(s.calc, today)

		return nil
	})

	return err
}

func (s *Service) Name() string { return "amc" }

// RefreshStatuses re-derives the status of every AMC for today and writes
// only the ones that changed. Rows edited concurrently are left alone.
func (s *Service) RefreshStatuses(ctx context.Context, today time.Time) (int, error) {
	inputs, err := s.repo.ListStatusInputs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing amc statuses: %w", err)
	}

	updated := 0

	for _, in := range inputs {
		next := derive.ContractStatusOn(today, in.StartDate, in.EndDate)
		if next == in.DerivedStatus {
			continue
		}

		ok, err := s.repo.CompareAndSetStatus(ctx, in.ID, in.DerivedStatus, next)
		if err != nil {
			return updated, fmt.Errorf("updating amc %s status: %w", in.ID, err)
		}

		if ok {
			updated++
		}
	}

	return updated, nil
}

func (s *Service) warnDefaulted(a *AMC) {
	if len(a.Defaulted) == 0 {
		return
	}

	slog.Warn("amc total computed with missing inputs", "reference", a.ReferenceID, "defaulted", a.Defaulted)
}
