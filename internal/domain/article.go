package domain

import "time"

// EntityType identifies a kind of catalog entity an article can be tagged
// with or an interest can target.
type EntityType string

const (
	EntitySport    EntityType = "sport"
	EntityLeague   EntityType = "league"
	EntityTeam     EntityType = "team"
	EntitySchool   EntityType = "school"
	EntityCountry  EntityType = "country"
	EntityPerson   EntityType = "person"
	EntityOlympics EntityType = "olympics"
)

// ValidEntityType reports whether s names a known entity type.
func ValidEntityType(s string) bool {
	switch EntityType(s) {
	case EntitySport, EntityLeague, EntityTeam, EntitySchool, EntityCountry, EntityPerson, EntityOlympics:
		return true
	}
	return false
}

// EntityRef points at one catalog entity. Olympics coverage is marked with
// {EntityOlympics, 0} alongside the sport/country tags of the event.
type EntityRef struct {
	Type EntityType `json:"type"`
	ID   int64      `json:"id"`
}

// Article is one ingested content item. The canonical URL is the dedup key;
// PublishedAt is the authoritative ordering timestamp. Tags are the entities
// extracted during ingestion, treated as given by the feed assembler.
type Article struct {
	ID          int64       `json:"id"`
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Source      string      `json:"source"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	PublishedAt time.Time   `json:"publishedAt"`
	Paywalled   bool        `json:"paywalled"`
	Tags        []EntityRef `json:"-"`
	CreatedAt   time.Time   `json:"-"`
}
