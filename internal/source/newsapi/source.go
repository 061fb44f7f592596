package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"sportsreader/internal/domain"
)

const sourceName = "newsapi"

// Source queries the NewsAPI "everything" endpoint.
type Source struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func New(baseURL, apiKeyEnv string, logger *slog.Logger) *Source {
	return &Source{
		apiKey:  os.Getenv(apiKeyEnv),
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With("source", sourceName),
	}
}

func (s *Source) Name() string { return sourceName }

// Search queries for articles matching the combined query string, published
// at or after from. A missing API key is an ordinary source failure: the
// aggregation skips this source and continues.
func (s *Source) Search(ctx context.Context, query string, from time.Time) ([]domain.Article, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("newsapi: api key not configured")
	}

	params := url.Values{
		"q":        {query},
		"from":     {from.UTC().Format(time.RFC3339)},
		"language": {"en"},
		"pageSize": {"100"},
		"sortBy":   {"publishedAt"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body struct {
		Status   string `json:"status"`
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			URLToImage  string `json:"urlToImage"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("api status: %s", body.Status)
	}

	var articles []domain.Article
	for _, item := range body.Articles {
		if item.URL == "" || item.Title == "" || item.Title == "[Removed]" {
			continue
		}
		published, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			s.logger.Debug("dropping item with unparseable date", "url", item.URL, "date", item.PublishedAt)
			continue
		}

		a := domain.Article{
			URL:         item.URL,
			Title:       strings.TrimSpace(item.Title),
			Source:      item.Source.Name,
			PublishedAt: published,
		}
		if a.Source == "" {
			a.Source = sourceName
		}
		if item.Description != "" {
			desc := strings.TrimSpace(item.Description)
			a.Description = &desc
		}
		if item.URLToImage != "" {
			img := item.URLToImage
			a.ImageURL = &img
		}
		articles = append(articles, a)
	}

	s.logger.Debug("search complete", "returned", len(body.Articles), "kept", len(articles))
	return articles, nil
}
