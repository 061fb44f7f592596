package domain

import "time"

// Interest is a subscriber's declaration to follow one catalog entity (or an
// Olympics sport/country combination). The targeted entity never changes over
// the interest's lifetime; retargeting is delete + insert.
type Interest struct {
	ID           int64
	SubscriberID string
	Target       Target
	Focused      bool
	CreatedAt    time.Time
}

// Target is the followed entity. Exactly one concrete type is set per
// interest; school and country targets carry an optional league id that
// scopes them to a single league's coverage. A (school, league) target and a
// (school, nil) target are distinct interests.
type Target interface {
	// EntityType returns the target's kind.
	EntityType() EntityType
	// TagMatch returns the article tags an article must carry, all of them,
	// to match this target.
	TagMatch() []EntityRef
}

type SportTarget struct {
	SportID int64
}

type LeagueTarget struct {
	LeagueID int64
}

type TeamTarget struct {
	TeamID int64
}

type PersonTarget struct {
	PersonID int64
}

type SchoolTarget struct {
	SchoolID int64
	LeagueID *int64 // scoping context, not a second followed entity
}

type CountryTarget struct {
	CountryID int64
	LeagueID  *int64
}

// OlympicsTarget follows Olympics coverage. Sport and country are
// independently optional; both nil means all Olympics coverage.
type OlympicsTarget struct {
	SportID   *int64
	CountryID *int64
}

func (t SportTarget) EntityType() EntityType  { return EntitySport }
func (t LeagueTarget) EntityType() EntityType { return EntityLeague }
func (t TeamTarget) EntityType() EntityType   { return EntityTeam }
func (t PersonTarget) EntityType() EntityType { return EntityPerson }
func (t SchoolTarget) EntityType() EntityType { return EntitySchool }
func (t CountryTarget) EntityType() EntityType {
	return EntityCountry
}
func (t OlympicsTarget) EntityType() EntityType { return EntityOlympics }

func (t SportTarget) TagMatch() []EntityRef {
	return []EntityRef{{EntitySport, t.SportID}}
}

func (t LeagueTarget) TagMatch() []EntityRef {
	return []EntityRef{{EntityLeague, t.LeagueID}}
}

func (t TeamTarget) TagMatch() []EntityRef {
	return []EntityRef{{EntityTeam, t.TeamID}}
}

func (t PersonTarget) TagMatch() []EntityRef {
	return []EntityRef{{EntityPerson, t.PersonID}}
}

func (t SchoolTarget) TagMatch() []EntityRef {
	refs := []EntityRef{{EntitySchool, t.SchoolID}}
	if t.LeagueID != nil {
		refs = append(refs, EntityRef{EntityLeague, *t.LeagueID})
	}
	return refs
}

func (t CountryTarget) TagMatch() []EntityRef {
	refs := []EntityRef{{EntityCountry, t.CountryID}}
	if t.LeagueID != nil {
		refs = append(refs, EntityRef{EntityLeague, *t.LeagueID})
	}
	return refs
}

func (t OlympicsTarget) TagMatch() []EntityRef {
	refs := []EntityRef{{EntityOlympics, 0}}
	if t.SportID != nil {
		refs = append(refs, EntityRef{EntitySport, *t.SportID})
	}
	if t.CountryID != nil {
		refs = append(refs, EntityRef{EntityCountry, *t.CountryID})
	}
	return refs
}

// PrimaryID returns the id of the target's primary entity reference, or 0
// for Olympics targets, which have no single primary entity.
func PrimaryID(t Target) int64 {
	switch v := t.(type) {
	case SportTarget:
		return v.SportID
	case LeagueTarget:
		return v.LeagueID
	case TeamTarget:
		return v.TeamID
	case PersonTarget:
		return v.PersonID
	case SchoolTarget:
		return v.SchoolID
	case CountryTarget:
		return v.CountryID
	}
	return 0
}

// ScopeLeagueID returns the league scoping context for school and country
// targets, nil otherwise.
func ScopeLeagueID(t Target) *int64 {
	switch v := t.(type) {
	case SchoolTarget:
		return v.LeagueID
	case CountryTarget:
		return v.LeagueID
	}
	return nil
}
