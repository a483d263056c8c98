package customer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

// PhoneRegion is the default region for numbers written without a country code.
const PhoneRegion = "IN"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetCustomerByReference(ctx context.Context, ref string) (*Customer, error)
	ListCustomers(ctx context.Context, filter ListFilter) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
}

type Service struct {
	repo  Repository
	refs  reference.Allocator
	email *validator.Validate
}

func NewService(repo Repository, refs reference.Allocator) *Service {
	return &Service{repo: repo, refs: refs, email: validator.New()}
}

type Params struct {
	Name    string
	Phone   string
	Email   string
	Address string
	GSTIN   string
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{13}$`)

func (s *Service) normalise(p Params) (Params, error) {
	v := apperr.NewValidation()

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		v.Add("name", "is required")
	}

	if p.Phone = strings.TrimSpace(p.Phone); p.Phone != "" {
		phone, err := NormalisePhone(p.Phone)
		if err != nil {
			v.Add("phone", err.Error())
		}

		p.Phone = phone
	}

	if p.Email = strings.TrimSpace(p.Email); p.Email != "" {
		if err := s.email.Var(p.Email, "email"); err != nil {
			v.Add("email", "must be a valid email address")
		}
	}

	if p.GSTIN = strings.ToUpper(strings.TrimSpace(p.GSTIN)); p.GSTIN != "" && !gstinPattern.MatchString(p.GSTIN) {
		v.Add("gstin", "must be 15 characters starting with the state code")
	}

	p.Address = strings.TrimSpace(p.Address)

	return p, v.OrNil()
}

// NormalisePhone parses a phone number, defaulting to India, and formats it as E.164.
func NormalisePhone(raw string) (string, error) {
	num, err := libphonenumber.Parse(raw, PhoneRegion)
	if err != nil {
		return "", errors.New("is not a phone number")
	}

	if !libphonenumber.IsValidNumber(num) {
		return "", errors.New("is not a valid phone number")
	}

	return libphonenumber.Format(num, libphonenumber.E164), nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Customer, error) {
	params, err := s.normalise(params)
	if err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityCustomer)
	if err != nil {
		return nil, fmt.Errorf("allocating customer reference: %w", err)
	}

	c := &Customer{
		ReferenceID: ref,
		Name:        params.Name,
		Phone:       params.Phone,
		Email:       params.Email,
		Address:     params.Address,
		GSTIN:       params.GSTIN,
	}

	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Customer, error) {
	return s.repo.GetCustomerByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, filter)
}

// Update replaces the editable fields. The reference never changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Customer, error) {
	params, err := s.normalise(params)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = params.Name
	c.Phone = params.Phone
	c.Email = params.Email
	c.Address = params.Address
	c.GSTIN = params.GSTIN

	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
