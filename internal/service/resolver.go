package service

import (
	"context"
	"log/slog"

	"sportsreader/internal/domain"
)

// interestPriority is the order in which a focused interest's populated
// reference is checked. A row has exactly one reference except Olympics, so
// the order only matters for defense against inconsistent data.
var interestPriority = []domain.EntityType{
	domain.EntitySport,
	domain.EntityLeague,
	domain.EntityTeam,
	domain.EntityOlympics,
	domain.EntityPerson,
	domain.EntitySchool,
	domain.EntityCountry,
}

// targetFinder tries to turn a selector into a concrete target using the
// subscriber's loaded interest set. Finders run in order; the first hit wins.
type targetFinder func(sel domain.Selector, interests []domain.Interest) (domain.Target, bool)

// Resolver expands a view selector into a display-ready entity descriptor.
// It never fails: unknown entities degrade to a label-only descriptor and a
// selector that matches nothing degrades to the combined sentinel.
type Resolver struct {
	interests InterestStore
	catalog   Catalog
	finders   []targetFinder
	logger    *slog.Logger
}

func NewResolver(interests InterestStore, catalog Catalog, logger *slog.Logger) *Resolver {
	return &Resolver{
		interests: interests,
		catalog:   catalog,
		finders: []targetFinder{
			findByInterestID,
			findByEntityRef,
			targetFromSelector,
		},
		logger: logger.With("component", "resolver"),
	}
}

func (r *Resolver) Resolve(ctx context.Context, subscriberID string, sel domain.Selector) domain.Descriptor {
	if sel.IsCombined() {
		return domain.CombinedDescriptor()
	}

	interests, err := r.interests.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		// Resolution must not crash the requesting flow; fall through to the
		// catalog with an empty interest set.
		r.logger.Warn("listing interests failed, resolving from catalog only",
			"subscriber", subscriberID, "error", err)
	}

	for _, find := range r.finders {
		if target, ok := find(sel, interests); ok {
			return r.describe(ctx, target)
		}
	}

	// A focus id that matches no saved interest: the feed is not focused.
	return domain.CombinedDescriptor()
}

func findByInterestID(sel domain.Selector, interests []domain.Interest) (domain.Target, bool) {
	if sel.InterestID == nil {
		return nil, false
	}
	for _, t := range interestPriority {
		for _, in := range interests {
			if in.ID == *sel.InterestID && in.Target.EntityType() == t {
				return in.Target, true
			}
		}
	}
	return nil, false
}

func findByEntityRef(sel domain.Selector, interests []domain.Interest) (domain.Target, bool) {
	if sel.EntityID == nil {
		return nil, false
	}
	for _, in := range interests {
		if in.Target.EntityType() != sel.EntityType {
			continue
		}
		if domain.PrimaryID(in.Target) != *sel.EntityID {
			continue
		}
		if !sameScope(domain.ScopeLeagueID(in.Target), sel.LeagueID) {
			continue
		}
		return in.Target, true
	}
	return nil, false
}

// targetFromSelector supports viewing an entity's feed without it being a
// saved interest.
func targetFromSelector(sel domain.Selector, _ []domain.Interest) (domain.Target, bool) {
	if sel.EntityID == nil {
		return nil, false
	}
	id := *sel.EntityID
	switch sel.EntityType {
	case domain.EntitySport:
		return domain.SportTarget{SportID: id}, true
	case domain.EntityLeague:
		return domain.LeagueTarget{LeagueID: id}, true
	case domain.EntityTeam:
		return domain.TeamTarget{TeamID: id}, true
	case domain.EntityPerson:
		return domain.PersonTarget{PersonID: id}, true
	case domain.EntitySchool:
		return domain.SchoolTarget{SchoolID: id, LeagueID: sel.LeagueID}, true
	case domain.EntityCountry:
		return domain.CountryTarget{CountryID: id, LeagueID: sel.LeagueID}, true
	case domain.EntityOlympics:
		// Olympics has no single entity id; an ad-hoc olympics selector
		// means all Olympics coverage.
		return domain.OlympicsTarget{}, true
	}
	return nil, false
}

func sameScope(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// describe renders a target as a descriptor, degrading step by step: catalog
// row, then the menu-logo table, then (for people) the team-school-league-
// sport cascade. Every step may fail; the worst case is a label-only
// descriptor.
func (r *Resolver) describe(ctx context.Context, target domain.Target) domain.Descriptor {
	switch t := target.(type) {
	case domain.OlympicsTarget:
		return r.describeOlympics(ctx, t)
	case domain.PersonTarget:
		return r.describePerson(ctx, t)
	case domain.SchoolTarget:
		d := r.describeEntity(ctx, domain.EntitySchool, t.SchoolID)
		r.applyLeagueScope(ctx, &d, t.LeagueID)
		return d
	case domain.CountryTarget:
		d := r.describeEntity(ctx, domain.EntityCountry, t.CountryID)
		r.applyLeagueScope(ctx, &d, t.LeagueID)
		return d
	default:
		return r.describeEntity(ctx, target.EntityType(), domain.PrimaryID(target))
	}
}

func (r *Resolver) describeEntity(ctx context.Context, t domain.EntityType, id int64) domain.Descriptor {
	d := domain.Descriptor{Label: fallbackLabel(t)}

	ent, err := r.catalog.Entity(ctx, t, id)
	if err != nil {
		r.logger.Warn("catalog lookup failed", "type", t, "id", id, "error", err)
	}
	if ent != nil {
		d.Label = ent.DisplayName()
		if ent.LogoURL != nil {
			d.LogoURL = *ent.LogoURL
		}
	}
	if d.LogoURL == "" {
		if logo := r.menuLogo(ctx, t, id); logo != "" {
			d.LogoURL = logo
		}
	}
	return d
}

func (r *Resolver) describePerson(ctx context.Context, t domain.PersonTarget) domain.Descriptor {
	d := r.describeEntity(ctx, domain.EntityPerson, t.PersonID)
	if d.LogoURL != "" {
		return d
	}

	person, err := r.catalog.Person(ctx, t.PersonID)
	if err != nil || person == nil {
		return d
	}

	// Logo cascade: team, then school, then league, then sport. First
	// non-empty logo wins.
	cascade := []struct {
		t  domain.EntityType
		id *int64
	}{
		{domain.EntityTeam, person.TeamID},
		{domain.EntitySchool, person.SchoolID},
		{domain.EntityLeague, person.LeagueID},
		{domain.EntitySport, person.SportID},
	}
	for _, step := range cascade {
		if step.id == nil {
			continue
		}
		ent, err := r.catalog.Entity(ctx, step.t, *step.id)
		if err != nil || ent == nil {
			continue
		}
		if ent.LogoURL != nil && *ent.LogoURL != "" {
			d.LogoURL = *ent.LogoURL
			return d
		}
	}
	return d
}

func (r *Resolver) describeOlympics(ctx context.Context, t domain.OlympicsTarget) domain.Descriptor {
	sportLabel := "All Sports"
	countryLabel := "All Countries"
	var d domain.Descriptor

	if t.SportID != nil {
		if ent, err := r.catalog.Entity(ctx, domain.EntitySport, *t.SportID); err == nil && ent != nil {
			sportLabel = ent.Name
			if ent.LogoURL != nil {
				d.LogoURL = *ent.LogoURL
			}
		}
	}
	if t.CountryID != nil {
		if ent, err := r.catalog.Entity(ctx, domain.EntityCountry, *t.CountryID); err == nil && ent != nil {
			countryLabel = ent.Name
			if ent.LogoURL != nil {
				d.BadgeURL = *ent.LogoURL
			}
		}
	}

	d.Label = sportLabel + " - " + countryLabel
	return d
}

// applyLeagueScope decorates a scoped school/country descriptor with the
// scoping league's gender indicator and code.
func (r *Resolver) applyLeagueScope(ctx context.Context, d *domain.Descriptor, leagueID *int64) {
	if leagueID == nil {
		return
	}
	league, err := r.catalog.Entity(ctx, domain.EntityLeague, *leagueID)
	if err != nil || league == nil || league.Code == nil {
		return
	}
	d.Badge = GenderBadge(*league.Code)
	d.Sublabel = *league.Code
}

// GenderBadge maps a league code to its gender indicator: "M", "W", or
// empty when the code carries no gender.
func GenderBadge(code string) string {
	switch code {
	case "NCAAB", "NCAAM", "NCAAMH", "NCAAMSOC":
		return "M"
	case "NCAAW", "NCAAWH", "NCAAWSOC", "NCAASB":
		return "W"
	}
	return ""
}

func (r *Resolver) menuLogo(ctx context.Context, t domain.EntityType, id int64) string {
	logo, err := r.catalog.MenuLogo(ctx, t, id)
	if err != nil || logo == nil {
		return ""
	}
	return *logo
}

func fallbackLabel(t domain.EntityType) string {
	switch t {
	case domain.EntitySport:
		return "Sport"
	case domain.EntityLeague:
		return "League"
	case domain.EntityTeam:
		return "Team"
	case domain.EntitySchool:
		return "School"
	case domain.EntityCountry:
		return "Country"
	case domain.EntityPerson:
		return "Athlete"
	}
	return "Feed"
}
