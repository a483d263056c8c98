// Package reference allocates the prefixed, per-entity sequential identifiers
// (CUST001, AMC01, INV003, ...) given to business records on first save.
package reference

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reference
type Repository interface {
	// BeginAllocation opens a unit of work that is serialized per entity:
	// no other allocation for the same entity can run until it commits or rolls back.
	BeginAllocation(ctx context.Context, entity Entity) (AllocationTx, error)
	// Counters returns the last value handed out for every entity that has a counter.
	Counters(ctx context.Context) (map[Entity]int64, error)
}

type AllocationTx interface {
	// Counter returns the last value handed out, or false if the entity has no counter yet.
	Counter(ctx context.Context) (int64, bool, error)
	// LastReference returns the reference of the most recently inserted record, if any.
	LastReference(ctx context.Context) (string, bool, error)
	SetCounter(ctx context.Context, value int64) error
	Commit() error
	Rollback() error
}

// Allocator is the part of Service that record-creating services depend on.
type Allocator interface {
	Allocate(ctx context.Context, entity Entity) (string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Allocate consumes and returns the next reference for entity.
func (s *Service) Allocate(ctx context.Context, entity Entity) (string, error) {
	scheme, err := SchemeFor(entity)
	if err != nil {
		return "", err
	}

	return s.AllocateScheme(ctx, scheme)
}

// AllocateScheme is Allocate for a caller-supplied prefix and padding.
// The sequence is still keyed by scheme.Entity.
func (s *Service) AllocateScheme(ctx context.Context, scheme Scheme) (string, error) {
	atx, err := s.repo.BeginAllocation(ctx, scheme.Entity)
	if err != nil {
		return "", fmt.Errorf("begin allocation: %w", err)
	}
	defer atx.Rollback()

	current, err := s.current(ctx, atx, scheme)
	if err != nil {
		return "", err
	}

	next := current + 1

	if err := atx.SetCounter(ctx, next); err != nil {
		return "", fmt.Errorf("store counter: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return "", fmt.Errorf("commit allocation: %w", err)
	}

	return scheme.Format(next), nil
}

// Peek returns the reference the next Allocate would produce, without consuming it.
func (s *Service) Peek(ctx context.Context, entity Entity) (string, error) {
	scheme, err := SchemeFor(entity)
	if err != nil {
		return "", err
	}

	atx, err := s.repo.BeginAllocation(ctx, scheme.Entity)
	if err != nil {
		return "", fmt.Errorf("begin allocation: %w", err)
	}
	defer atx.Rollback()

	current, err := s.current(ctx, atx, scheme)
	if err != nil {
		return "", err
	}

	return scheme.Format(current + 1), nil
}

// Counters reports the last allocated value per entity. Entities never
// allocated through the counter are absent.
func (s *Service) Counters(ctx context.Context) (map[Entity]int64, error) {
	counters, err := s.repo.Counters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}

	return counters, nil
}

// current reads the counter, seeding it from the newest existing record when
// the entity has never been allocated through the counter before.
func (s *Service) current(ctx context.Context, atx AllocationTx, scheme Scheme) (int64, error) {
	value, ok, err := atx.Counter(ctx)
	if err != nil {
		return 0, fmt.Errorf("read counter: %w", err)
	}

	if ok {
		return value, nil
	}

	ref, found, err := atx.LastReference(ctx)
	if err != nil {
		return 0, fmt.Errorf("read last reference: %w", err)
	}

	if !found {
		return scheme.Base, nil
	}

	n, err := scheme.Parse(ref)
	if err != nil {
		slog.Warn("unparseable reference, seeding from base",
			"entity", scheme.Entity, "reference", ref, "base", scheme.Base, "error", err)

		return scheme.Base, nil
	}

	return max(n, scheme.Base), nil
}
