package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sportsreader/internal/aggregate"
	"sportsreader/internal/domain"
)

const keyPrefix = "articles:"

// ArticleCache stores aggregation output in Redis, keyed by normalized
// topic set. Entries expire after the configured TTL; the upsert-on-write
// semantics give the cross-refresh dedup the pipeline itself does not.
type ArticleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ArticleCache {
	return &ArticleCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "cache"),
	}
}

// Key normalizes a topic set into a cache key: lowercased, deduplicated,
// sorted, so topic order never splits the cache.
func Key(topics []string) string {
	seen := make(map[string]struct{}, len(topics))
	norm := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		norm = append(norm, t)
	}
	sort.Strings(norm)
	return keyPrefix + strings.Join(norm, "|")
}

func (c *ArticleCache) Put(ctx context.Context, topics []string, articles []domain.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := c.client.Set(ctx, Key(topics), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Get returns the cached articles for the topic set, or nil on a miss.
func (c *ArticleCache) Get(ctx context.Context, topics []string) ([]domain.Article, error) {
	data, err := c.client.Get(ctx, Key(topics)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("unmarshal articles: %w", err)
	}
	return articles, nil
}

// Search scans every cached topic set and returns the articles matching the
// free-text query, deduplicated by URL, newest first. It only reads what
// previous aggregations produced; it never reaches upstream.
func (c *ArticleCache) Search(ctx context.Context, query string) ([]domain.Article, error) {
	seen := make(map[string]struct{})
	var matched []domain.Article

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := c.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cache get %s: %w", iter.Val(), err)
		}

		var articles []domain.Article
		if err := json.Unmarshal(data, &articles); err != nil {
			c.logger.Warn("skipping undecodable cache entry", "key", iter.Val(), "error", err)
			continue
		}
		for _, a := range articles {
			if _, dup := seen[a.URL]; dup {
				continue
			}
			desc := ""
			if a.Description != nil {
				desc = *a.Description
			}
			if !aggregate.MatchesTopics(a.Title, desc, a.URL, []string{query}) {
				continue
			}
			seen[a.URL] = struct{}{}
			matched = append(matched, a)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("cache scan: %w", err)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})
	return matched, nil
}
