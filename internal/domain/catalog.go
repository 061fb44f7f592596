package domain

// Entity is a catalog row: display metadata for one sport, league, team,
// school, country or person. The catalog is external reference data; this
// engine only reads it.
type Entity struct {
	Type      EntityType
	ID        int64
	Name      string
	ShortName *string // schools
	LogoURL   *string
	Code      *string // leagues, e.g. "NCAAB"
	Kind      *string // leagues: "league" or "topic"
}

// DisplayName prefers the short name when present.
func (e Entity) DisplayName() string {
	if e.ShortName != nil && *e.ShortName != "" {
		return *e.ShortName
	}
	return e.Name
}

// Person carries the relation ids used by the resolver's logo cascade
// (team, then school, then league, then sport).
type Person struct {
	ID       int64
	Name     string
	TeamID   *int64
	SchoolID *int64
	LeagueID *int64
	SportID  *int64
}
