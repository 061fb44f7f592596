package service

import (
	"context"
	"fmt"
	"log/slog"

	"sportsreader/internal/domain"
)

// MaxPageSize caps the number of articles returned per feed page.
const MaxPageSize = 100

// FeedPage is one page of the article stream plus the cursor for the next
// one. NextCursor is empty when the page was not full.
type FeedPage struct {
	Articles   []domain.Article `json:"articles"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

// FeedService assembles the deduplicated, recency-ordered article stream for
// a subscriber's interests. Reads only; a request never mutates stored
// state, so concurrent requests need no coordination.
type FeedService struct {
	interests InterestStore
	articles  ArticleStore
	logger    *slog.Logger
}

func NewFeedService(interests InterestStore, articles ArticleStore, logger *slog.Logger) *FeedService {
	return &FeedService{
		interests: interests,
		articles:  articles,
		logger:    logger.With("component", "feed"),
	}
}

// GetFeed returns the page of articles matching the selector. Without a
// selector the match is an OR across all of the subscriber's interests; with
// one it is restricted to the single selected entity (AND-ed with its league
// qualifier when present). An unknown subscriber yields an empty page, not
// an error; storage failures propagate to the caller, which owns retry.
func (s *FeedService) GetFeed(ctx context.Context, subscriberID string, sel domain.Selector, cursorToken string, limit int) (*FeedPage, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	cursor, err := domain.DecodeCursor(cursorToken)
	if err != nil {
		// Cursors are opaque to clients; a mangled one restarts from the
		// first page rather than failing the request.
		s.logger.Debug("ignoring malformed cursor", "error", err)
		cursor = nil
	}

	matches, err := s.resolveMatches(ctx, subscriberID, sel)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return &FeedPage{Articles: []domain.Article{}}, nil
	}

	articles, err := s.articles.FeedPage(ctx, domain.FeedQuery{
		Matches: matches,
		Cursor:  cursor,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("feed query: %w", err)
	}

	page := &FeedPage{Articles: articles}
	if page.Articles == nil {
		page.Articles = []domain.Article{}
	}
	if len(articles) == limit {
		last := articles[len(articles)-1]
		page.NextCursor = domain.Cursor{
			PublishedAt: last.PublishedAt,
			ArticleID:   last.ID,
		}.Encode()
	}
	return page, nil
}

func (s *FeedService) resolveMatches(ctx context.Context, subscriberID string, sel domain.Selector) ([]domain.TagMatch, error) {
	if sel.IsCombined() {
		interests, err := s.interests.ListBySubscriber(ctx, subscriberID)
		if err != nil {
			return nil, fmt.Errorf("list interests: %w", err)
		}
		matches := make([]domain.TagMatch, 0, len(interests))
		for _, in := range interests {
			matches = append(matches, in.Target.TagMatch())
		}
		return matches, nil
	}

	if sel.InterestID != nil {
		interests, err := s.interests.ListBySubscriber(ctx, subscriberID)
		if err != nil {
			return nil, fmt.Errorf("list interests: %w", err)
		}
		for _, in := range interests {
			if in.ID == *sel.InterestID {
				return []domain.TagMatch{in.Target.TagMatch()}, nil
			}
		}
		// Focused interest no longer exists: empty feed, not an error.
		return nil, nil
	}

	if target, ok := targetFromSelector(sel, nil); ok {
		return []domain.TagMatch{target.TagMatch()}, nil
	}
	return nil, nil
}
