package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportsreader/internal/domain"
)

// sparseThreshold is the cache hit size below which an on-demand
// aggregation bypasses the cache and goes back to the sources.
const sparseThreshold = 10

type RefreshService struct {
	aggregator Aggregator
	articles   ArticleStore
	cache      ArticleCache
	state      RefreshStateStore
	txManager  TransactionManager
	publisher  Publisher
	window     WindowProvider
	groups     []domain.TopicGroup
	logger     *slog.Logger
}

func NewRefreshService(
	aggregator Aggregator,
	articles ArticleStore,
	cache ArticleCache,
	state RefreshStateStore,
	txManager TransactionManager,
	publisher Publisher,
	window WindowProvider,
	groups []domain.TopicGroup,
	logger *slog.Logger,
) *RefreshService {
	return &RefreshService{
		aggregator: aggregator,
		articles:   articles,
		cache:      cache,
		state:      state,
		txManager:  txManager,
		publisher:  publisher,
		window:     window,
		groups:     groups,
		logger:     logger.With("component", "refresh"),
	}
}

// Refresh runs one aggregation pass over every configured topic group,
// ingesting articles that are not yet stored. A failing group is counted
// and skipped; it never aborts the run.
func (s *RefreshService) Refresh(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()
	s.logger.Info("starting refresh", "groups", len(s.groups))

	stats := &domain.RefreshStats{Groups: len(s.groups)}

	for _, group := range s.groups {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.refreshGroup(ctx, group, stats); err != nil {
			stats.Errors++
			s.logger.Error("group refresh failed", "group", group.Label, "error", err)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("refresh completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *RefreshService) refreshGroup(ctx context.Context, group domain.TopicGroup, stats *domain.RefreshStats) error {
	articles := s.aggregator.Aggregate(ctx, group.Topics, s.window.RecencyWindow())
	stats.Fetched += len(articles)

	s.logger.Debug("aggregated group", "group", group.Label, "count", len(articles))

	if err := s.cache.Put(ctx, group.Topics, articles); err != nil {
		s.logger.Warn("cache write failed", "group", group.Label, "error", err)
	}

	toIngest, err := s.filterNew(ctx, articles)
	if err != nil {
		return fmt.Errorf("filter new articles: %w", err)
	}
	stats.Skipped += len(articles) - len(toIngest)

	var ingested int64
	for i := range toIngest {
		article := &toIngest[i]
		article.Tags = groupTags(group)

		if err := s.saveArticle(ctx, article); err != nil {
			stats.Errors++
			s.logger.Error("save article failed", "url", article.URL, "error", err)
			continue
		}
		stats.New++
		ingested++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, article); err != nil {
				stats.Errors++
				s.logger.Error("publish failed", "url", article.URL, "error", err)
			} else {
				stats.Published++
			}
		}
	}

	if err := s.updateState(ctx, group.Label, ingested); err != nil {
		return fmt.Errorf("update refresh state: %w", err)
	}

	return nil
}

// AggregateTopics serves ad-hoc topic requests. The cache is consulted
// first; a miss or a sparse hit (fewer than sparseThreshold articles)
// triggers a fresh aggregation whose result replaces the cached set.
func (s *RefreshService) AggregateTopics(ctx context.Context, topics []string) ([]domain.Article, error) {
	cached, err := s.cache.Get(ctx, topics)
	if err != nil {
		s.logger.Warn("cache read failed", "error", err)
	}
	if len(cached) >= sparseThreshold {
		return cached, nil
	}

	articles := s.aggregator.Aggregate(ctx, topics, s.window.RecencyWindow())
	if len(articles) == 0 && len(cached) > 0 {
		return cached, nil
	}

	if err := s.cache.Put(ctx, topics, articles); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}

	return articles, nil
}

// SearchCached scans all cached topic sets for articles matching a free
// text query. Nothing is fetched from upstream.
func (s *RefreshService) SearchCached(ctx context.Context, query string) ([]domain.Article, error) {
	articles, err := s.cache.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}
	return articles, nil
}

func (s *RefreshService) filterNew(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	urls := make([]string, len(articles))
	for i, a := range articles {
		urls[i] = a.URL
	}

	existing, err := s.articles.ExistingURLs(ctx, urls)
	if err != nil {
		return nil, err
	}

	var fresh []domain.Article
	for _, a := range articles {
		if _, ok := existing[a.URL]; !ok {
			fresh = append(fresh, a)
		}
	}

	return fresh, nil
}

func (s *RefreshService) saveArticle(ctx context.Context, article *domain.Article) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.articles.Upsert(txCtx, article); err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}
		return nil
	})
}

func (s *RefreshService) updateState(ctx context.Context, groupLabel string, ingested int64) error {
	state, err := s.state.Get(ctx, groupLabel)
	if err != nil {
		return err
	}

	state.GroupLabel = groupLabel
	state.LastRefreshed = time.Now()
	state.TotalIngested += ingested

	return s.state.Update(ctx, state)
}

// groupTags builds the entity tags every article ingested for a group
// receives: the group's own entity plus its league when scoped.
func groupTags(group domain.TopicGroup) []domain.EntityRef {
	tags := []domain.EntityRef{group.Entity}
	if group.LeagueID != nil {
		tags = append(tags, domain.EntityRef{Type: domain.EntityLeague, ID: *group.LeagueID})
	}
	return tags
}
