package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/liftdesk/internal/alias"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatch uses strpos rather than ILIKE so '%' and '_' in learned patterns stay literal.
func (s *Store) FindMatch(ctx context.Context, raw string) (string, error) {
	query := `
		SELECT item_code
		FROM item_aliases
		WHERE strpos(lower($1), lower(pattern)) > 0
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var code string

	err := s.db.QueryRowContext(ctx, query, raw).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding alias: %w", err)
	}

	return code, nil
}

func (s *Store) UpsertAlias(ctx context.Context, a *alias.Alias) error {
	query := `
		INSERT INTO item_aliases (pattern, item_code, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (pattern) DO UPDATE SET item_code = EXCLUDED.item_code
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, a.Pattern, a.ItemCode).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err, "item_aliases_item_code_fkey") {
			return apperr.NotFound("item", a.ItemCode)
		}

		return fmt.Errorf("saving alias: %w", err)
	}

	return nil
}

func (s *Store) ListAliases(ctx context.Context) ([]*alias.Alias, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pattern, item_code, created_at
		FROM item_aliases
		ORDER BY item_code ASC, pattern ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}
	defer rows.Close()

	var out []*alias.Alias

	for rows.Next() {
		var a alias.Alias
		if err := rows.Scan(&a.ID, &a.Pattern, &a.ItemCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}

		out = append(out, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aliases: %w", err)
	}

	return out, nil
}
