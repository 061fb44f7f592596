package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sportsreader/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert inserts an article and its entity tags, keyed by canonical URL.
// Articles are immutable once inserted; a URL conflict only merges any new
// tags into the existing row. Honors an open transaction on the context.
func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) (int64, error) {
	ex := GetExecutor(ctx, s.db)

	var id int64
	err := ex.QueryRowxContext(ctx, `
		INSERT INTO articles (url, title, description, source, image_url, published_at, paywalled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (url) DO NOTHING
		RETURNING id`,
		article.URL,
		article.Title,
		article.Description,
		article.Source,
		article.ImageURL,
		article.PublishedAt,
		article.Paywalled,
	).Scan(&id)

	if err == sql.ErrNoRows {
		err = ex.QueryRowxContext(ctx,
			"SELECT id FROM articles WHERE url = $1", article.URL,
		).Scan(&id)
	}
	if err != nil {
		return 0, err
	}

	for _, tag := range article.Tags {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO article_entities (article_id, entity_type, entity_id)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING`,
			id, string(tag.Type), tag.ID,
		)
		if err != nil {
			return 0, fmt.Errorf("tag article %d: %w", id, err)
		}
	}
	return id, nil
}

// ExistingURLs returns which of the given URLs are already stored.
func (s *ArticleStore) ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(urls) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT url FROM articles WHERE url = ANY($1)", pq.Array(urls),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		result[u] = struct{}{}
	}
	return result, rows.Err()
}

// FeedPage runs the derived-relation query behind the feed assembler:
// articles whose tag set satisfies any match, keyset-paginated on
// (published_at, id) descending. The row comparison keeps the cursor stable
// across timestamp collisions.
func (s *ArticleStore) FeedPage(ctx context.Context, q domain.FeedQuery) ([]domain.Article, error) {
	if len(q.Matches) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(`
		SELECT a.id, a.url, a.title, a.description, a.source, a.image_url,
		       a.published_at, a.paywalled, a.created_at
		FROM articles a
		WHERE (`)

	for i, match := range q.Matches {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("(")
		for j, ref := range match {
			if j > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString("EXISTS (SELECT 1 FROM article_entities ae WHERE ae.article_id = a.id")
			sb.WriteString(" AND ae.entity_type = $" + strconv.Itoa(len(args)+1))
			sb.WriteString(" AND ae.entity_id = $" + strconv.Itoa(len(args)+2))
			sb.WriteString(")")
			args = append(args, string(ref.Type), ref.ID)
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")

	if q.Cursor != nil {
		sb.WriteString(" AND (a.published_at, a.id) < ($" + strconv.Itoa(len(args)+1))
		sb.WriteString(", $" + strconv.Itoa(len(args)+2) + ")")
		args = append(args, q.Cursor.PublishedAt, q.Cursor.ArticleID)
	}

	sb.WriteString(" ORDER BY a.published_at DESC, a.id DESC")
	sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)+1))
	args = append(args, q.Limit)

	rows, err := s.db.QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ID, &a.URL, &a.Title, &a.Description, &a.Source,
			&a.ImageURL, &a.PublishedAt, &a.Paywalled, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
