package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sportsreader/internal/domain"
)

// CatalogStore reads the external entity catalog: reference tables for
// sports, leagues, teams, schools, countries and people, plus the secondary
// menu-logo table. This engine never writes to any of them.
type CatalogStore struct {
	db *sqlx.DB
}

func NewCatalogStore(db *sqlx.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Entity looks up one catalog row by type and id. A missing row is
// (nil, nil), not an error; the resolver degrades from there.
func (s *CatalogStore) Entity(ctx context.Context, t domain.EntityType, id int64) (*domain.Entity, error) {
	ent := domain.Entity{Type: t, ID: id}
	var err error

	switch t {
	case domain.EntitySport:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, logo_url FROM sports WHERE id = $1", id,
		).Scan(&ent.Name, &ent.LogoURL)
	case domain.EntityLeague:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, code, kind, logo_url FROM leagues WHERE id = $1", id,
		).Scan(&ent.Name, &ent.Code, &ent.Kind, &ent.LogoURL)
	case domain.EntityTeam:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, logo_url FROM teams WHERE id = $1", id,
		).Scan(&ent.Name, &ent.LogoURL)
	case domain.EntitySchool:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, short_name, logo_url FROM schools WHERE id = $1", id,
		).Scan(&ent.Name, &ent.ShortName, &ent.LogoURL)
	case domain.EntityCountry:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, flag_url FROM countries WHERE id = $1", id,
		).Scan(&ent.Name, &ent.LogoURL)
	case domain.EntityPerson:
		err = s.db.QueryRowContext(ctx,
			"SELECT name, headshot_url FROM people WHERE id = $1", id,
		).Scan(&ent.Name, &ent.LogoURL)
	default:
		return nil, fmt.Errorf("no catalog table for entity type %q", t)
	}

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// MenuLogo reads the secondary logo table keyed by (entity type, entity
// id), used when the catalog row itself carries no logo.
func (s *CatalogStore) MenuLogo(ctx context.Context, t domain.EntityType, id int64) (*string, error) {
	var logo *string
	err := s.db.QueryRowContext(ctx,
		"SELECT logo_url FROM menu_logos WHERE entity_type = $1 AND entity_id = $2",
		string(t), id,
	).Scan(&logo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return logo, nil
}

// Person returns a person row with the relation ids the resolver's logo
// cascade walks.
func (s *CatalogStore) Person(ctx context.Context, id int64) (*domain.Person, error) {
	p := domain.Person{ID: id}
	err := s.db.QueryRowContext(ctx,
		"SELECT name, team_id, school_id, league_id, sport_id FROM people WHERE id = $1", id,
	).Scan(&p.Name, &p.TeamID, &p.SchoolID, &p.LeagueID, &p.SportID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
