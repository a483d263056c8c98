// Package sweep periodically re-derives date-driven statuses: contracts that ran
// out, invoices that went overdue and quotations that lapsed.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
)

//go:generate mockgen -source=sweep.go -destination=sweep_mock.go -package=sweep
type Refresher interface {
	Name() string
	// RefreshStatuses moves stale statuses to their value as of today and
	// reports how many records changed.
	RefreshStatuses(ctx context.Context, today time.Time) (int, error)
}

// Locker keeps two processes from sweeping at once.
type Locker interface {
	// TryLock returns ok=false without waiting when another runner holds the lock.
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

type Summary struct {
	Today   time.Time      `json:"today"`
	Skipped bool           `json:"skipped"`
	Updated map[string]int `json:"updated"`
}

type Service struct {
	refreshers []Refresher
	locker     Locker
	cal        clock.Calendar
}

func NewService(locker Locker, cal clock.Calendar, refreshers ...Refresher) *Service {
	return &Service{refreshers: refreshers, locker: locker, cal: cal}
}

// RunOnce runs every refresher under the sweep lock. A failing refresher does not
// stop the others; their errors are joined. When another runner holds the lock the
// sweep is skipped and reported as such.
func (s *Service) RunOnce(ctx context.Context) (*Summary, error) {
	summary := &Summary{Today: s.cal.Today(), Updated: make(map[string]int, len(s.refreshers))}

	release, ok, err := s.locker.TryLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring sweep lock: %w", err)
	}

	if !ok {
		slog.Info("status sweep skipped, another runner holds the lock")

		summary.Skipped = true

		return summary, nil
	}
	defer release()

	var errs []error

	for _, r := range s.refreshers {
		n, err := r.RefreshStatuses(ctx, summary.Today)
		if err != nil {
			slog.Error("status sweep failed", "refresher", r.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))

			continue
		}

		summary.Updated[r.Name()] = n
		slog.Info("status sweep", "refresher", r.Name(), "updated", n, "today", summary.Today.Format(time.DateOnly))
	}

	return summary, errors.Join(errs...)
}

type Runner struct {
	svc      *Service
	interval time.Duration
}

func NewRunner(svc *Service, interval time.Duration) *Runner {
	return &Runner{svc: svc, interval: interval}
}

// Start sweeps immediately and then every interval. It blocks until ctx is done.
func (r *Runner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		if _, err := r.svc.RunOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("status sweep run failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
