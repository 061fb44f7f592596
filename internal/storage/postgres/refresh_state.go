package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sportsreader/internal/domain"
)

type RefreshStateStore struct {
	db *sqlx.DB
}

func NewRefreshStateStore(db *sqlx.DB) *RefreshStateStore {
	return &RefreshStateStore{db: db}
}

// Get returns the refresh bookkeeping row for a topic group. A group that
// has never been refreshed yields a zero-valued state, not an error.
func (s *RefreshStateStore) Get(ctx context.Context, groupLabel string) (*domain.RefreshState, error) {
	var state domain.RefreshState
	err := s.db.GetContext(ctx, &state,
		"SELECT id, group_label, last_refreshed_at, total_ingested FROM refresh_state WHERE group_label = $1",
		groupLabel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.RefreshState{GroupLabel: groupLabel}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get refresh state for %q: %w", groupLabel, err)
	}
	return &state, nil
}

func (s *RefreshStateStore) Update(ctx context.Context, state *domain.RefreshState) error {
	query := `
		INSERT INTO refresh_state (group_label, last_refreshed_at, total_ingested)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_label) DO UPDATE SET
			last_refreshed_at = EXCLUDED.last_refreshed_at,
			total_ingested = EXCLUDED.total_ingested`

	_, err := s.db.ExecContext(ctx, query, state.GroupLabel, state.LastRefreshed, state.TotalIngested)
	if err != nil {
		return fmt.Errorf("update refresh state for %q: %w", state.GroupLabel, err)
	}
	return nil
}
