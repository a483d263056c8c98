package complaint

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

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=complaint
type Repository interface {
	CreateComplaint(ctx context.Context, c *Complaint) error
	GetComplaint(ctx context.Context, id uuid.UUID) (*Complaint, error)
	GetComplaintByReference(ctx context.Context, ref string) (*Complaint, error)
	ListComplaints(ctx context.Context, filter ListFilter) ([]*Complaint, error)
	MutateComplaint(ctx context.Context, id uuid.UUID, fn func(c *Complaint) error) (*Complaint, error)
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
	Subject     string
	Description string
	// ReportedOn defaults to today.
	ReportedOn time.Time
}

type ListFilter struct {
	CustomerID *uuid.UUID
	AMCID      *uuid.UUID
	Status     *Status
}

func (s *Service) Create(ctx context.Context, params Params) (*Complaint, error) {
	v := apperr.NewValidation()

	if params.CustomerID == uuid.Nil {
		v.Add("customer_id", "is required")
	}

	subject := strings.TrimSpace(params.Subject)
	if subject == "" {
		v.Add("subject", "is required")
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	ref, err := s.refs.Allocate(ctx, reference.EntityComplaint)
	if err != nil {
		return nil, fmt.Errorf("allocating complaint reference: %w", err)
	}

	c := &Complaint{
		ReferenceID: ref,
		CustomerID:  params.CustomerID,
		AMCID:       params.AMCID,
		Subject:     subject,
		Description: strings.TrimSpace(params.Description),
		Status:      StatusOpen,
		ReportedOn:  params.ReportedOn,
	}

	if c.ReportedOn.IsZero() {
		c.ReportedOn = s.cal.Today()
	}

	if err := s.repo.CreateComplaint(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Complaint, error) {
	return s.repo.GetComplaint(ctx, id)
}

func (s *Service) GetByReference(ctx context.Context, ref string) (*Complaint, error) {
	return s.repo.GetComplaintByReference(ctx, strings.TrimSpace(ref))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Complaint, error) {
	return s.repo.ListComplaints(ctx, filter)
}

// UpdateStatus moves the complaint through the workflow. Resolving stamps today's date;
// reopening clears it.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*Complaint, error) {
	if !next.IsValid() {
		return nil, apperr.Invalid("status", "must be one of: open in_progress resolved")
	}

	today := s.cal.Today()

	return s.repo.MutateComplaint(ctx, id, func(c *Complaint) error {
		if !c.Status.CanMoveTo(next) {
			return apperr.Invalid("status", fmt.Sprintf("cannot move from %s to %s", c.Status, next))
		}

		if c.Status == next {
			return nil
		}

		c.Status = next

		if next == StatusResolved {
			c.ResolvedOn = today
		} else {
			c.ResolvedOn = time.Time{}
		}

		return nil
	})
}
