package domain

// TagMatch is a conjunction: an article matches when it carries every ref.
// A plain interest contributes a single ref; a league-scoped school or
// country contributes the entity ref AND the league ref.
type TagMatch []EntityRef

// FeedQuery selects a page of articles whose tag set satisfies at least one
// of the matches, ordered (published_at DESC, id DESC), strictly after the
// cursor position.
type FeedQuery struct {
	Matches []TagMatch
	Cursor  *Cursor
	Limit   int
}
