package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"sportsreader/internal/domain"
)

type InterestStore interface {
	ListBySubscriber(ctx context.Context, subscriberID string) ([]domain.Interest, error)
	Insert(ctx context.Context, interest *domain.Interest) (int64, error)
	Delete(ctx context.Context, subscriberID string, interestID int64) error
	ToggleFocus(ctx context.Context, subscriberID string, interestID int64) (bool, error)
}

type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) (int64, error)
	ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error)
	FeedPage(ctx context.Context, q domain.FeedQuery) ([]domain.Article, error)
}

type Catalog interface {
	Entity(ctx context.Context, t domain.EntityType, id int64) (*domain.Entity, error)
	MenuLogo(ctx context.Context, t domain.EntityType, id int64) (*string, error)
	Person(ctx context.Context, id int64) (*domain.Person, error)
}

type ArticleCache interface {
	Put(ctx context.Context, topics []string, articles []domain.Article) error
	Get(ctx context.Context, topics []string) ([]domain.Article, error)
	Search(ctx context.Context, query string) ([]domain.Article, error)
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}

type Aggregator interface {
	Aggregate(ctx context.Context, topics []string, window time.Duration) []domain.Article
}

// WindowProvider yields the recency window. It is consulted once per
// aggregation call rather than at startup, so a config change takes effect
// on the next call.
type WindowProvider interface {
	RecencyWindow() time.Duration
}

type RefreshStateStore interface {
	Get(ctx context.Context, groupLabel string) (*domain.RefreshState, error)
	Update(ctx context.Context, state *domain.RefreshState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
