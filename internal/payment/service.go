package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	// CreatePayment and TotalFor run on q, the transaction holding the target's row lock.
	CreatePayment(ctx context.Context, q database.Querier, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetPaymentByReference(ctx context.Context, ref string) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	// TotalFor sums every payment recorded against one target.
	TotalFor(ctx context.Context, q database.Querier, kind TargetKind, id uuid.UUID) (decimal.Decimal, error)
}

// Target is a payable record that recomputes its amount due from the ledger.
// paid is called while the target row is locked; q is that transaction and owner
// the target's customer. Everything written through q commits with the target.
type Target interface {
	ApplyPaid(ctx context.Context, id uuid.UUID, paid func(ctx context.Context, q database.Querier, owner uuid.UUID) (decimal.Decimal, error)) error
}

type Service struct {
	repo    Repository
	refs    reference.Allocator
	cal     clock.Calendar
	targets map[TargetKind]Target
}

func NewService(repo Repository, refs reference.Allocator, cal clock.Calendar, targets map[TargetKind]Target) *Service {
	return &Service{repo: repo, refs: refs, cal: cal, targets: targets}
}

type Params struct {
	CustomerID uuid.UUID
	TargetKind TargetKind
	TargetID   uuid.UUID
	Amount     decimal.Decimal
	// ReceivedOn defaults to today.
	ReceivedOn time.Time
	Mode       Mode
	Note       string
}

type ListFilter struct {
	CustomerID *uuid.UUID
	TargetKind *TargetKind
	TargetID   *uuid.UUID
}

func (s *Service) validate(p Params) error {
	v := apperr.NewValidation()

	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	if _, ok := s.targets[p.TargetKind]; !ok {
		v.Add("target_kind", "must be one of: invoice amc")
	}

	if p.TargetID == uuid.Nil {
		v.Add("target_id", "is required")
	}

	if !p.Amount.IsPositive() {
		v.Add("amount", "must be greater than 0")
	}

	if !p.Mode.IsValid() {
		v.Add("mode", "must be one of: cash cheque bank_transfer upi")
	}

	return v.OrNil()
}

// Create records the payment and recomputes the target from its full ledger.
// The insert, the ledger sum and the target update share the target's transaction:
// concurrent payments against one target are serialised, and a missing target or
// a customer mismatch rejects the payment before it is written.
func (s *Service) Create(ctx context.Context, params Params) (*Payment, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityPayment)
	if err != nil {
		return nil, fmt.Errorf("allocating payment reference: %w", err)
	}

	p := &Payment{
		ReferenceID: ref,
		CustomerID:  params.CustomerID,
		TargetKind:  params.TargetKind,
		TargetID:    params.TargetID,
		Amount:      params.Amount,
		ReceivedOn:  params.ReceivedOn,
		Mode:        params.Mode,
		Note:        strings.TrimSpace(params.Note),
	}

	if p.ReceivedOn.IsZero() {
		p.ReceivedOn = s.cal.Today()
	}

	err = s.targets[p.TargetKind].ApplyPaid(ctx, p.TargetID, func(ctx context.Context, q database.Querier, owner uuid.UUID) (decimal.Decimal, error) {
		if owner != p.CustomerID {
			return decimal.Zero, apperr.Invalid("customer_id", fmt.Sprintf("does not own %s %s", p.TargetKind, p.TargetID))
		}

		if err := s.repo.CreatePayment(ctx, q, p); err != nil {
			return decimal.Zero, err
		}

		return s.repo.TotalFor(ctx, q, p.TargetKind, p.TargetID)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Resync recomputes a target from the ledger without recording anything.
func (s *Service) Resync(ctx context.Context, kind TargetKind, id uuid.UUID) error {
	target, ok := s.targets[kind]
	if !ok {
		return apperr.Invalid("target_kind", "must be one of: invoice amc")
	}

	return target.ApplyPaid(ctx, id, func(ctx context.Context, q database.Querier, _ uuid.UUID) (decimal.Decimal, error) {
		return s.repo.TotalFor(ctx, q, kind, id)
	})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Payment, error) {
	return s.repo.GetPaymentByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}
