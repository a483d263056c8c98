package alias

import (
	"context"
	"strings"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=alias
type Repository interface {
	// FindMatch returns the item code of the longest pattern contained in raw,
	// ignoring case, or "" when nothing matches.
	FindMatch(ctx context.Context, raw string) (string, error)
	UpsertAlias(ctx context.Context, a *Alias) error
	ListAliases(ctx context.Context) ([]*Alias, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// minPatternLength keeps one- and two-letter patterns from matching every row.
const minPatternLength = 3

// Suggest returns the item code learned for raw, or "" if none applies.
func (s *Service) Suggest(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	return s.repo.FindMatch(ctx, raw)
}

// Learn maps pattern to itemCode. Learning an existing pattern again repoints it.
func (s *Service) Learn(ctx context.Context, pattern, itemCode string) (*Alias, error) {
	v := apperr.NewValidation()

	pattern = strings.Join(strings.Fields(pattern), " ")
	if len([]rune(pattern)) < minPatternLength {
		v.Add("pattern", "must be at least 3 characters")
	}

	itemCode = item.NormaliseCode(itemCode)
	if itemCode == "" {
		v.Add("item_code", "is required")
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	a := &Alias{Pattern: pattern, ItemCode: itemCode}
	if err := s.repo.UpsertAlias(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) List(ctx context.Context) ([]*Alias, error) {
	return s.repo.ListAliases(ctx)
}
