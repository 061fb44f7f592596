package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"sportsreader/internal/domain"
)

const maxPerFeed = 50

// Source is one configured RSS/Atom endpoint.
type Source struct {
	name   string
	url    string
	logger *slog.Logger
}

func New(name, feedURL string, logger *slog.Logger) *Source {
	if name == "" {
		name = sourceNameFromURL(feedURL)
	}
	return &Source{
		name:   name,
		url:    feedURL,
		logger: logger.With("source", name),
	}
}

func (s *Source) Name() string { return s.name }

// Fetch parses the endpoint and normalizes its items. Items without a link,
// a title or a parseable published timestamp are skipped; a skipped item
// never fails the fetch.
func (s *Source) Fetch(ctx context.Context) ([]domain.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.url, err)
	}

	now := time.Now()
	var articles []domain.Article
	for _, item := range feed.Items {
		if len(articles) >= maxPerFeed {
			break
		}
		a, ok := s.normalize(item, now)
		if ok {
			articles = append(articles, a)
		}
	}

	s.logger.Debug("fetched feed", "items", len(feed.Items), "kept", len(articles))
	return articles, nil
}

func (s *Source) normalize(item *gofeed.Item, now time.Time) (domain.Article, bool) {
	link := item.Link
	if link == "" {
		link = item.GUID
	}
	title := strings.TrimSpace(item.Title)
	if link == "" || title == "" {
		return domain.Article{}, false
	}

	published, ok := itemPublished(item, now)
	if !ok {
		s.logger.Debug("dropping item with unparseable date", "link", link, "date", item.Published)
		return domain.Article{}, false
	}

	a := domain.Article{
		URL:         link,
		Title:       title,
		Source:      s.name,
		PublishedAt: published,
	}
	if desc := itemDescription(item); desc != "" {
		a.Description = &desc
	}
	if item.Image != nil && item.Image.URL != "" {
		img := item.Image.URL
		a.ImageURL = &img
	}
	return a, true
}

func itemDescription(item *gofeed.Item) string {
	desc := item.Description
	if desc == "" {
		desc = item.Content
	}
	return truncate(stripHTML(desc), 300)
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func sourceNameFromURL(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil {
		return feedURL
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "rss.", "feeds.", "feed."} {
		host = strings.TrimPrefix(host, prefix)
	}
	return host
}
