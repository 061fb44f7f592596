package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"sportsreader/internal/domain"
)

// FeedSource is one structured feed endpoint. Its own scope is trusted:
// items that pass topic matching are not re-filtered after merge.
type FeedSource interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Article, error)
}

// SearchSource is an API-style provider queried with a combined OR string.
// Its relevance ranking is untrusted: results are topic-matched at fetch
// time and again after merge.
type SearchSource interface {
	Name() string
	Search(ctx context.Context, query string, from time.Time) ([]domain.Article, error)
}

// Pipeline fans out to every configured source in parallel, filters by
// recency and topic, deduplicates by canonical URL and tags paywalled items.
// Individual source failures are logged and skipped; a bad endpoint never
// aborts the aggregation.
type Pipeline struct {
	feeds     []FeedSource
	searchers []SearchSource
	timeout   time.Duration
	logger    *slog.Logger
}

func New(feeds []FeedSource, searchers []SearchSource, perSourceTimeout time.Duration, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		feeds:     feeds,
		searchers: searchers,
		timeout:   perSourceTimeout,
		logger:    logger.With("component", "aggregate"),
	}
}

// Aggregate fetches, filters and merges articles for the topic set. The
// recency cutoff is computed here, per call, from the supplied window. The
// caller's context deadline propagates into every branch; each branch also
// gets its own per-source timeout so one slow upstream cannot stall the
// whole run.
//
// Merge order is deterministic regardless of network completion order:
// feeds in registry order, then search sources. First URL wins, so the feed
// copy of a story is preferred over the API copy.
func (p *Pipeline) Aggregate(ctx context.Context, topics []string, window time.Duration) []domain.Article {
	if len(topics) == 0 {
		return nil
	}

	query := BuildQuery(topics)
	cutoff := time.Now().Add(-window)

	nf := len(p.feeds)
	results := make([][]domain.Article, nf+len(p.searchers))

	var wg sync.WaitGroup
	for i, f := range p.feeds {
		wg.Add(1)
		go func(i int, f FeedSource) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			articles, err := f.Fetch(branchCtx)
			if err != nil {
				p.logger.Warn("feed source failed", "source", f.Name(), "error", err)
				return
			}
			results[i] = p.filter(articles, topics, cutoff)
		}(i, f)
	}
	for i, s := range p.searchers {
		wg.Add(1)
		go func(i int, s SearchSource) {
			defer wg.Done()
			branchCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			articles, err := s.Search(branchCtx, query, cutoff)
			if err != nil {
				p.logger.Warn("search source failed", "source", s.Name(), "error", err)
				return
			}
			results[nf+i] = p.filter(articles, topics, cutoff)
		}(i, s)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var merged []domain.Article
	for i, branch := range results {
		for _, a := range branch {
			if i >= nf && !MatchesTopics(a.Title, deref(a.Description), a.URL, topics) {
				// Second pass over API results only; feed items are trusted.
				continue
			}
			if _, dup := seen[a.URL]; dup {
				continue
			}
			seen[a.URL] = struct{}{}
			a.Paywalled = IsPaywalled(a.URL)
			merged = append(merged, a)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	p.logger.Info("aggregation complete",
		"topics", len(topics),
		"sources", len(results),
		"articles", len(merged),
	)
	return merged
}

// filter drops items outside the recency window or matching no topic.
// Items without a parseable published timestamp were already excluded by
// the sources; a zero timestamp here is dropped for the same reason.
func (p *Pipeline) filter(articles []domain.Article, topics []string, cutoff time.Time) []domain.Article {
	var kept []domain.Article
	for _, a := range articles {
		if a.PublishedAt.IsZero() || a.PublishedAt.Before(cutoff) {
			continue
		}
		if !MatchesTopics(a.Title, deref(a.Description), a.URL, topics) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
