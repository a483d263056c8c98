// Package servicelog merges breakdown calls and maintenance contracts into one
// per-customer service history.
package servicelog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
)

type Kind string

const (
	KindRegular  Kind = "regular"
	KindContract Kind = "contract"
)

// Entry is either a Regular or a Contract. Switch on Kind or on the concrete type.
type Entry interface {
	Kind() Kind
	Date() time.Time
	Reference() string
}

// Regular is an on-call service visit raised by a complaint.
type Regular struct {
	Complaint *complaint.Complaint
}

func (Regular) Kind() Kind          { return KindRegular }
func (r Regular) Date() time.Time   { return r.Complaint.ReportedOn }
func (r Regular) Reference() string { return r.Complaint.ReferenceID }

// Contract is scheduled service under an AMC.
type Contract struct {
	AMC *amc.AMC
}

func (Contract) Kind() Kind          { return KindContract }
func (c Contract) Date() time.Time   { return c.AMC.StartDate }
func (c Contract) Reference() string { return c.AMC.ReferenceID }

//go:generate mockgen -source=servicelog.go -destination=servicelog_mock.go -package=servicelog
type ComplaintLister interface {
	List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error)
}

type AMCLister interface {
	List(ctx context.Context, filter amc.ListFilter) ([]*amc.AMC, error)
}

type Service struct {
	complaints ComplaintLister
	amcs       AMCLister
}

func NewService(complaints ComplaintLister, amcs AMCLister) *Service {
	return &Service{complaints: complaints, amcs: amcs}
}

// List returns the customer's history oldest first. Entries on the same day keep
// contracts ahead of complaints, then order by reference.
func (s *Service) List(ctx context.Context, customerID uuid.UUID) ([]Entry, error) {
	cs, err := s.complaints.List(ctx, complaint.ListFilter{CustomerID: &customerID})
	if err != nil {
		return nil, fmt.Errorf("listing complaints: %w", err)
	}

	as, err := s.amcs.List(ctx, amc.ListFilter{CustomerID: &customerID})
	if err != nil {
		return nil, fmt.Errorf("listing amcs: %w", err)
	}

	entries := make([]Entry, 0, len(cs)+len(as))

	for _, a := range as {
		entries = append(entries, Contract{AMC: a})
	}

	for _, c := range cs {
		entries = append(entries, Regular{Complaint: c})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].Date(), entries[j].Date()
		if !di.Equal(dj) {
			return di.Before(dj)
		}

		if entries[i].Kind() != entries[j].Kind() {
			return entries[i].Kind() == KindContract
		}

		return entries[i].Reference() < entries[j].Reference()
	})

	return entries, nil
}
