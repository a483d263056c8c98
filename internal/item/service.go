package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	CreateItem(ctx context.Context, it *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	GetItemByCode(ctx context.Context, code string) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, it *Item) error
}

type Service struct {
	repo Repository
	refs reference.Allocator
}

func NewService(repo Repository, refs reference.Allocator) *Service {
	return &Service{repo: repo, refs: refs}
}

type Params struct {
	Code       string
	Name       string
	Unit       string
	Rate       *decimal.Decimal
	TaxPercent *decimal.Decimal
}

type ListFilter struct {
	Search string
}

var hundred = decimal.NewFromInt(100)

// NormaliseCode upper-cases and trims a catalogue code so lookups are case-insensitive.
func NormaliseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validate(p Params) (Params, error) {
	v := apperr.NewValidation()

	p.Code = NormaliseCode(p.Code)
	if p.Code == "" {
		v.Add("code", "is required")
	}

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		v.Add("name", "is required")
	}

	if p.Unit = strings.TrimSpace(p.Unit); p.Unit == "" {
		p.Unit = "nos"
	}

	if p.Rate != nil && p.Rate.IsNegative() {
		v.Add("rate", "must not be negative")
	}

	if p.TaxPercent != nil && (p.TaxPercent.IsNegative() || p.TaxPercent.GreaterThan(hundred)) {
		v.Add("tax_percent", "must be between 0 and 100")
	}

	return p, v.OrNil()
}

func (s *Service) Create(ctx context.Context, params Params) (*Item, error) {
	params, err := validate(params)
	if err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityItem)
	if err != nil {
		return nil, fmt.Errorf("allocating item reference: %w", err)
	}

	it := &Item{
		ReferenceID: ref,
		Code:        params.Code,
		Name:        params.Name,
		Unit:        params.Unit,
		Rate:        params.Rate,
		TaxPercent:  params.TaxPercent,
	}

	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*Item, error) {
	return s.repo.GetItemByCode(ctx, NormaliseCode(code))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Item, error) {
	params, err := validate(params)
	if err != nil {
		return nil, err
	}

	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	it.Code = params.Code
	it.Name = params.Name
	it.Unit = params.Unit
	it.Rate = params.Rate
	it.TaxPercent = params.TaxPercent

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}
