package domain

// Selector identifies which view of the feed a caller wants. The zero value
// is the combined feed over all of the subscriber's interests. A selector
// carries either an interest id (focus on a saved interest) or an entity
// type + id, optionally scoped by a league id; the latter form also works
// for entities the subscriber never saved.
type Selector struct {
	InterestID *int64
	EntityType EntityType
	EntityID   *int64
	LeagueID   *int64
}

// IsCombined reports whether the selector asks for the combined feed.
func (s Selector) IsCombined() bool {
	return s.InterestID == nil && s.EntityID == nil
}

// Descriptor is the display-ready projection of a followed entity: label,
// logo and optional badges. Computed on demand, never stored.
type Descriptor struct {
	Label    string `json:"label"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Badge    string `json:"badge,omitempty"`     // textual badge, e.g. gender indicator
	BadgeURL string `json:"badgeUrl,omitempty"`  // image badge, e.g. country flag
	Sublabel string `json:"sublabel,omitempty"`
	// Combined marks the no-selector sentinel: the feed is not focused on
	// any single entity.
	Combined bool `json:"combined,omitempty"`
}

// CombinedDescriptor is the sentinel returned when no focus selector is
// given.
func CombinedDescriptor() Descriptor {
	return Descriptor{Combined: true}
}
