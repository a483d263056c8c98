package requisition

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=requisition
type Repository interface {
	CreateRequisition(ctx context.Context, r *Requisition) error
	GetRequisition(ctx context.Context, id uuid.UUID) (*Requisition, error)
	GetRequisitionByReference(ctx context.Context, ref string) (*Requisition, error)
	ListRequisitions(ctx context.Context, filter ListFilter) ([]*Requisition, error)
}

type Service struct {
	repo Repository
	refs reference.Allocator
	cal  clock.Calendar
}

func NewService(repo Repository, refs reference.Allocator, cal clock.Calendar) *Service {
	return &Service{repo: repo, refs: refs, cal: cal}
}

type Params struct {
	CustomerID  uuid.UUID
	AMCID       *uuid.UUID
	RequestedOn time.Time
	Note        string
	Lines       []Line
}

type ListFilter struct {
	CustomerID *uuid.UUID
	AMCID      *uuid.UUID
}

func validate(p Params) error {
	v := apperr.NewValidation()

	if p.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	if len(p.Lines) == 0 {
		v.Add("lines", "must have at least one line")
	}

	for i, l := range p.Lines {
		if l.ItemID == uuid.Nil {
			v.Add(fmt.Sprintf("lines[%d].item_id", i), "is required")
		}

		if !l.Quantity.IsPositive() {
			v.Add(fmt.Sprintf("lines[%d].quantity", i), "must be greater than 0")
		}
	}

	return v.OrNil()
}

func (s *Service) Create(ctx context.Context, params Params) (*Requisition, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityRequisition)
	if err != nil {
		return nil, fmt.Errorf("allocating requisition reference: %w", err)
	}

	req := &Requisition{
		ReferenceID: ref,
		CustomerID:  params.CustomerID,
		AMCID:       params.AMCID,
		RequestedOn: params.RequestedOn,
		Note:        strings.TrimSpace(params.Note),
		Lines:       params.Lines,
	}

	if req.RequestedOn.IsZero() {
		req.RequestedOn = s.cal.Today()
	}

	if err := s.repo.CreateRequisition(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Requisition, error) {
	return s.repo.GetRequisition(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Requisition, error) {
	return s.repo.GetRequisitionByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Requisition, error) {
	return s.repo.ListRequisitions(ctx, filter)
}
