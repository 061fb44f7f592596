package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"sportsreader/internal/domain"
)

// InterestStore persists subscriber interests as a wide row with one
// populated entity reference (or the Olympics pair). The sum-type mapping
// lives here; everything above storage sees domain.Target.
type InterestStore struct {
	db *sqlx.DB
}

func NewInterestStore(db *sqlx.DB) *InterestStore {
	return &InterestStore{db: db}
}

type interestRow struct {
	ID              int64         `db:"id"`
	SubscriberID    string        `db:"subscriber_id"`
	SportID         sql.NullInt64 `db:"sport_id"`
	LeagueID        sql.NullInt64 `db:"league_id"`
	TeamID          sql.NullInt64 `db:"team_id"`
	SchoolID        sql.NullInt64 `db:"school_id"`
	CountryID       sql.NullInt64 `db:"country_id"`
	PersonID        sql.NullInt64 `db:"person_id"`
	ContextLeagueID sql.NullInt64 `db:"context_league_id"`
	IsOlympics      bool          `db:"is_olympics"`
	IsFocused       bool          `db:"is_focused"`
	CreatedAt       time.Time     `db:"created_at"`
}

func (s *InterestStore) ListBySubscriber(ctx context.Context, subscriberID string) ([]domain.Interest, error) {
	query := `
		SELECT id, subscriber_id, sport_id, league_id, team_id, school_id,
		       country_id, person_id, context_league_id, is_olympics,
		       is_focused, created_at
		FROM interests
		WHERE subscriber_id = $1
		ORDER BY created_at, id`

	var rows []interestRow
	if err := s.db.SelectContext(ctx, &rows, query, subscriberID); err != nil {
		return nil, err
	}

	interests := make([]domain.Interest, 0, len(rows))
	for _, r := range rows {
		in, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		interests = append(interests, in)
	}
	return interests, nil
}

func (s *InterestStore) Insert(ctx context.Context, interest *domain.Interest) (int64, error) {
	r := rowFromTarget(interest.Target)

	query := `
		INSERT INTO interests (
			subscriber_id, sport_id, league_id, team_id, school_id,
			country_id, person_id, context_league_id, is_olympics, is_focused
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		interest.SubscriberID,
		r.SportID, r.LeagueID, r.TeamID, r.SchoolID,
		r.CountryID, r.PersonID, r.ContextLeagueID,
		r.IsOlympics, interest.Focused,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *InterestStore) Delete(ctx context.Context, subscriberID string, interestID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM interests WHERE id = $1 AND subscriber_id = $2",
		interestID, subscriberID,
	)
	return err
}

// ToggleFocus flips is_focused in a single statement and returns the new
// state. Concurrent toggles are last-writer-wins.
func (s *InterestStore) ToggleFocus(ctx context.Context, subscriberID string, interestID int64) (bool, error) {
	var focused bool
	err := s.db.QueryRowContext(ctx,
		`UPDATE interests SET is_focused = NOT is_focused
		 WHERE id = $1 AND subscriber_id = $2
		 RETURNING is_focused`,
		interestID, subscriberID,
	).Scan(&focused)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("interest %d: %w", interestID, domain.ErrNotFound)
	}
	if err != nil {
		return false, err
	}
	return focused, nil
}

func (r interestRow) toDomain() (domain.Interest, error) {
	in := domain.Interest{
		ID:           r.ID,
		SubscriberID: r.SubscriberID,
		Focused:      r.IsFocused,
		CreatedAt:    r.CreatedAt,
	}

	switch {
	case r.IsOlympics:
		in.Target = domain.OlympicsTarget{
			SportID:   nullToPtr(r.SportID),
			CountryID: nullToPtr(r.CountryID),
		}
	case r.SportID.Valid:
		in.Target = domain.SportTarget{SportID: r.SportID.Int64}
	case r.LeagueID.Valid:
		in.Target = domain.LeagueTarget{LeagueID: r.LeagueID.Int64}
	case r.TeamID.Valid:
		in.Target = domain.TeamTarget{TeamID: r.TeamID.Int64}
	case r.SchoolID.Valid:
		in.Target = domain.SchoolTarget{
			SchoolID: r.SchoolID.Int64,
			LeagueID: nullToPtr(r.ContextLeagueID),
		}
	case r.CountryID.Valid:
		in.Target = domain.CountryTarget{
			CountryID: r.CountryID.Int64,
			LeagueID:  nullToPtr(r.ContextLeagueID),
		}
	case r.PersonID.Valid:
		in.Target = domain.PersonTarget{PersonID: r.PersonID.Int64}
	default:
		return domain.Interest{}, fmt.Errorf("interest %d has no entity reference", r.ID)
	}
	return in, nil
}

func rowFromTarget(target domain.Target) interestRow {
	var r interestRow
	switch t := target.(type) {
	case domain.SportTarget:
		r.SportID = validInt(t.SportID)
	case domain.LeagueTarget:
		r.LeagueID = validInt(t.LeagueID)
	case domain.TeamTarget:
		r.TeamID = validInt(t.TeamID)
	case domain.PersonTarget:
		r.PersonID = validInt(t.PersonID)
	case domain.SchoolTarget:
		r.SchoolID = validInt(t.SchoolID)
		r.ContextLeagueID = ptrToNull(t.LeagueID)
	case domain.CountryTarget:
		r.CountryID = validInt(t.CountryID)
		r.ContextLeagueID = ptrToNull(t.LeagueID)
	case domain.OlympicsTarget:
		r.IsOlympics = true
		r.SportID = ptrToNull(t.SportID)
		r.CountryID = ptrToNull(t.CountryID)
	}
	return r
}

func nullToPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func ptrToNull(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func validInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
