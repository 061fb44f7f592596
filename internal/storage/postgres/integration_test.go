//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"sportsreader/internal/domain"
	"sportsreader/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_articles.up.sql"),
			filepath.Join(migrationsPath, "002_create_interests.up.sql"),
			filepath.Join(migrationsPath, "003_create_catalog.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM article_entities")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM interests")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM refresh_state")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM menu_logos")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM people")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM teams")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM schools")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM countries")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM leagues")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sports")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertArticle(url string, published time.Time, tags ...domain.EntityRef) int64 {
	store := NewArticleStore(s.db)
	id, err := store.Upsert(s.ctx, &domain.Article{
		URL:         url,
		Title:       "Article " + url,
		Source:      "test",
		PublishedAt: published,
		Tags:        tags,
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestArticleStore_Upsert_Insert() {
	store := NewArticleStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	article := &domain.Article{
		URL:         "https://example.com/article",
		Title:       "Test Article",
		Description: utils.Ptr("Test Description"),
		Source:      "ESPN",
		ImageURL:    utils.Ptr("https://example.com/image.jpg"),
		PublishedAt: now,
		Paywalled:   true,
		Tags: []domain.EntityRef{
			{Type: domain.EntityTeam, ID: 5},
			{Type: domain.EntityLeague, ID: 1},
		},
	}

	id, err := store.Upsert(s.ctx, article)
	s.NoError(err)
	s.Greater(id, int64(0))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE url = $1", article.URL)
	s.NoError(err)
	s.Equal(1, count)

	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM article_entities WHERE article_id = $1", id)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Upsert_URLConflictMergesTags() {
	store := NewArticleStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := &domain.Article{
		URL:         "https://example.com/article",
		Title:       "Original Title",
		Source:      "ESPN",
		PublishedAt: now,
		Tags:        []domain.EntityRef{{Type: domain.EntityTeam, ID: 5}},
	}
	id1, err := store.Upsert(s.ctx, first)
	s.NoError(err)

	second := &domain.Article{
		URL:         "https://example.com/article",
		Title:       "Different Title",
		Source:      "BBC",
		PublishedAt: now.Add(time.Hour),
		Tags: []domain.EntityRef{
			{Type: domain.EntityTeam, ID: 5},
			{Type: domain.EntityLeague, ID: 1},
		},
	}
	id2, err := store.Upsert(s.ctx, second)
	s.NoError(err)
	s.Equal(id1, id2)

	var title string
	err = s.db.GetContext(s.ctx, &title, "SELECT title FROM articles WHERE id = $1", id1)
	s.NoError(err)
	s.Equal("Original Title", title)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM article_entities WHERE article_id = $1", id1)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ExistingURLs() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.insertArticle("https://example.com/a", now)
	s.insertArticle("https://example.com/b", now)

	store := NewArticleStore(s.db)
	existing, err := store.ExistingURLs(s.ctx, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/missing",
	})
	s.NoError(err)
	s.Len(existing, 2)
	s.Contains(existing, "https://example.com/a")
	s.Contains(existing, "https://example.com/b")
	s.NotContains(existing, "https://example.com/missing")

	existing, err = store.ExistingURLs(s.ctx, nil)
	s.NoError(err)
	s.Empty(existing)
}

func (s *PostgresIntegrationSuite) TestArticleStore_FeedPage_MatchesAnyGroup() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	teamArticle := s.insertArticle("https://example.com/team", now,
		domain.EntityRef{Type: domain.EntityTeam, ID: 5})
	scopedArticle := s.insertArticle("https://example.com/scoped", now.Add(-time.Minute),
		domain.EntityRef{Type: domain.EntitySchool, ID: 7},
		domain.EntityRef{Type: domain.EntityLeague, ID: 3})
	s.insertArticle("https://example.com/unscoped", now.Add(-2*time.Minute),
		domain.EntityRef{Type: domain.EntitySchool, ID: 7})
	s.insertArticle("https://example.com/other", now.Add(-3*time.Minute),
		domain.EntityRef{Type: domain.EntityTeam, ID: 99})

	store := NewArticleStore(s.db)
	page, err := store.FeedPage(s.ctx, domain.FeedQuery{
		Matches: []domain.TagMatch{
			{{Type: domain.EntityTeam, ID: 5}},
			{{Type: domain.EntitySchool, ID: 7}, {Type: domain.EntityLeague, ID: 3}},
		},
		Limit: 10,
	})
	s.NoError(err)
	s.Require().Len(page, 2)
	s.Equal(teamArticle, page[0].ID)
	s.Equal(scopedArticle, page[1].ID)
}

func (s *PostgresIntegrationSuite) TestArticleStore_FeedPage_NoMatches() {
	store := NewArticleStore(s.db)
	page, err := store.FeedPage(s.ctx, domain.FeedQuery{Limit: 10})
	s.NoError(err)
	s.Nil(page)
}

func (s *PostgresIntegrationSuite) TestArticleStore_FeedPage_KeysetPagination() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.EntityRef{Type: domain.EntityLeague, ID: 1}

	var ids []int64
	for i := 0; i < 5; i++ {
		id := s.insertArticle(
			"https://example.com/page-"+string(rune('a'+i)),
			now.Add(-time.Duration(i)*time.Minute),
			tag,
		)
		ids = append(ids, id)
	}

	store := NewArticleStore(s.db)
	query := domain.FeedQuery{
		Matches: []domain.TagMatch{{tag}},
		Limit:   2,
	}

	page1, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page1, 2)
	s.Equal(ids[0], page1[0].ID)
	s.Equal(ids[1], page1[1].ID)

	query.Cursor = &domain.Cursor{
		PublishedAt: page1[1].PublishedAt,
		ArticleID:   page1[1].ID,
	}
	page2, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page2, 2)
	s.Equal(ids[2], page2[0].ID)
	s.Equal(ids[3], page2[1].ID)

	query.Cursor = &domain.Cursor{
		PublishedAt: page2[1].PublishedAt,
		ArticleID:   page2[1].ID,
	}
	page3, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page3, 1)
	s.Equal(ids[4], page3[0].ID)
}

func (s *PostgresIntegrationSuite) TestArticleStore_FeedPage_TimestampCollision() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.EntityRef{Type: domain.EntitySport, ID: 2}

	idA := s.insertArticle("https://example.com/same-a", now, tag)
	idB := s.insertArticle("https://example.com/same-b", now, tag)

	high, low := idB, idA
	if idA > idB {
		high, low = idA, idB
	}

	store := NewArticleStore(s.db)
	query := domain.FeedQuery{
		Matches: []domain.TagMatch{{tag}},
		Limit:   1,
	}

	page1, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page1, 1)
	s.Equal(high, page1[0].ID)

	query.Cursor = &domain.Cursor{PublishedAt: page1[0].PublishedAt, ArticleID: page1[0].ID}
	page2, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page2, 1)
	s.Equal(low, page2[0].ID)

	query.Cursor = &domain.Cursor{PublishedAt: page2[0].PublishedAt, ArticleID: page2[0].ID}
	page3, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Empty(page3)
}

func (s *PostgresIntegrationSuite) TestArticleStore_FeedPage_SubMillisecondSpacing() {
	base := time.Date(2026, time.July, 10, 12, 0, 0, 123456000, time.UTC)
	tag := domain.EntityRef{Type: domain.EntitySport, ID: 3}

	newer := s.insertArticle("https://example.com/micro-newer", base, tag)
	older := s.insertArticle("https://example.com/micro-older", base.Add(-200*time.Microsecond), tag)

	store := NewArticleStore(s.db)
	query := domain.FeedQuery{
		Matches: []domain.TagMatch{{tag}},
		Limit:   1,
	}

	page1, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page1, 1)
	s.Equal(newer, page1[0].ID)

	// Round-trip through the wire encoding, as the feed service does. The
	// articles differ only below the millisecond; a cursor that truncates
	// would skip the older row entirely.
	cursor, err := domain.DecodeCursor(domain.Cursor{
		PublishedAt: page1[0].PublishedAt,
		ArticleID:   page1[0].ID,
	}.Encode())
	s.Require().NoError(err)

	query.Cursor = cursor
	page2, err := store.FeedPage(s.ctx, query)
	s.NoError(err)
	s.Require().Len(page2, 1)
	s.Equal(older, page2[0].ID)
}

func (s *PostgresIntegrationSuite) TestInterestStore_InsertAndList_AllShapes() {
	store := NewInterestStore(s.db)

	targets := []domain.Target{
		domain.SportTarget{SportID: 2},
		domain.LeagueTarget{LeagueID: 3},
		domain.TeamTarget{TeamID: 5},
		domain.PersonTarget{PersonID: 11},
		domain.SchoolTarget{SchoolID: 7, LeagueID: utils.Ptr(int64(3))},
		domain.CountryTarget{CountryID: 9},
		domain.OlympicsTarget{SportID: utils.Ptr(int64(2)), CountryID: utils.Ptr(int64(9))},
	}
	for _, target := range targets {
		_, err := store.Insert(s.ctx, &domain.Interest{
			SubscriberID: "sub-1",
			Target:       target,
		})
		s.Require().NoError(err)
	}

	interests, err := store.ListBySubscriber(s.ctx, "sub-1")
	s.NoError(err)
	s.Require().Len(interests, len(targets))

	for i, in := range interests {
		s.Equal("sub-1", in.SubscriberID)
		s.Equal(targets[i], in.Target)
		s.False(in.Focused)
		s.False(in.CreatedAt.IsZero())
	}

	other, err := store.ListBySubscriber(s.ctx, "sub-2")
	s.NoError(err)
	s.Empty(other)
}

func (s *PostgresIntegrationSuite) TestInterestStore_ScopedAndUnscopedSchoolAreDistinct() {
	store := NewInterestStore(s.db)

	_, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.SchoolTarget{SchoolID: 7},
	})
	s.NoError(err)

	_, err = store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.SchoolTarget{SchoolID: 7, LeagueID: utils.Ptr(int64(3))},
	})
	s.NoError(err)

	interests, err := store.ListBySubscriber(s.ctx, "sub-1")
	s.NoError(err)
	s.Len(interests, 2)
}

func (s *PostgresIntegrationSuite) TestInterestStore_DuplicateRejected() {
	store := NewInterestStore(s.db)

	_, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.NoError(err)

	_, err = store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.Error(err)

	_, err = store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-2",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestInterestStore_DuplicateOlympicsRejected() {
	store := NewInterestStore(s.db)

	_, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.OlympicsTarget{SportID: utils.Ptr(int64(2))},
	})
	s.NoError(err)

	_, err = store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.OlympicsTarget{SportID: utils.Ptr(int64(2))},
	})
	s.Error(err)

	_, err = store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.OlympicsTarget{},
	})
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestInterestStore_Delete() {
	store := NewInterestStore(s.db)

	id, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.Require().NoError(err)

	// Deleting with the wrong subscriber is a no-op.
	s.NoError(store.Delete(s.ctx, "sub-2", id))
	interests, err := store.ListBySubscriber(s.ctx, "sub-1")
	s.NoError(err)
	s.Len(interests, 1)

	s.NoError(store.Delete(s.ctx, "sub-1", id))
	interests, err = store.ListBySubscriber(s.ctx, "sub-1")
	s.NoError(err)
	s.Empty(interests)
}

func (s *PostgresIntegrationSuite) TestInterestStore_ToggleFocus() {
	store := NewInterestStore(s.db)

	id, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.Require().NoError(err)

	focused, err := store.ToggleFocus(s.ctx, "sub-1", id)
	s.NoError(err)
	s.True(focused)

	focused, err = store.ToggleFocus(s.ctx, "sub-1", id)
	s.NoError(err)
	s.False(focused)
}

func (s *PostgresIntegrationSuite) TestInterestStore_ToggleFocus_NotFound() {
	store := NewInterestStore(s.db)

	_, err := store.ToggleFocus(s.ctx, "sub-1", 12345)
	s.Error(err)
	s.True(errors.Is(err, domain.ErrNotFound))

	id, err := store.Insert(s.ctx, &domain.Interest{
		SubscriberID: "sub-1",
		Target:       domain.TeamTarget{TeamID: 5},
	})
	s.Require().NoError(err)

	_, err = store.ToggleFocus(s.ctx, "sub-2", id)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestRefreshStateStore_GetNew() {
	store := NewRefreshStateStore(s.db)

	state, err := store.Get(s.ctx, "nba")
	s.NoError(err)
	s.NotNil(state)
	s.Equal("nba", state.GroupLabel)
	s.True(state.LastRefreshed.IsZero())
	s.Equal(int64(0), state.TotalIngested)
}

func (s *PostgresIntegrationSuite) TestRefreshStateStore_UpdateAndGet() {
	store := NewRefreshStateStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := store.Update(s.ctx, &domain.RefreshState{
		GroupLabel:    "nba",
		LastRefreshed: now,
		TotalIngested: 42,
	})
	s.NoError(err)

	state, err := store.Get(s.ctx, "nba")
	s.NoError(err)
	s.Equal("nba", state.GroupLabel)
	s.Equal(int64(42), state.TotalIngested)
	s.WithinDuration(now, state.LastRefreshed, time.Second)
}

func (s *PostgresIntegrationSuite) TestRefreshStateStore_UpdateExisting() {
	store := NewRefreshStateStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	state := &domain.RefreshState{GroupLabel: "nba", LastRefreshed: now, TotalIngested: 10}
	s.NoError(store.Update(s.ctx, state))

	state.LastRefreshed = now.Add(time.Hour)
	state.TotalIngested = 25
	s.NoError(store.Update(s.ctx, state))

	retrieved, err := store.Get(s.ctx, "nba")
	s.NoError(err)
	s.Equal(int64(25), retrieved.TotalIngested)
	s.WithinDuration(now.Add(time.Hour), retrieved.LastRefreshed, time.Second)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM refresh_state")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestCatalogStore_Entity() {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO leagues (id, name, code, kind, logo_url) VALUES (3, 'NCAA Women''s Basketball', 'NCAAW', 'league', NULL)")
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx,
		"INSERT INTO schools (id, name, short_name, logo_url) VALUES (7, 'Duke University', 'Duke', 'https://example.com/duke.png')")
	s.Require().NoError(err)

	store := NewCatalogStore(s.db)

	league, err := store.Entity(s.ctx, domain.EntityLeague, 3)
	s.NoError(err)
	s.Require().NotNil(league)
	s.Equal("NCAA Women's Basketball", league.Name)
	s.Require().NotNil(league.Code)
	s.Equal("NCAAW", *league.Code)
	s.Nil(league.LogoURL)

	school, err := store.Entity(s.ctx, domain.EntitySchool, 7)
	s.NoError(err)
	s.Require().NotNil(school)
	s.Equal("Duke", school.DisplayName())
	s.Require().NotNil(school.LogoURL)
	s.Equal("https://example.com/duke.png", *school.LogoURL)

	missing, err := store.Entity(s.ctx, domain.EntityTeam, 999)
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresIntegrationSuite) TestCatalogStore_MenuLogo() {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO menu_logos (entity_type, entity_id, logo_url) VALUES ('sport', 2, 'https://example.com/sport.png')")
	s.Require().NoError(err)

	store := NewCatalogStore(s.db)

	logo, err := store.MenuLogo(s.ctx, domain.EntitySport, 2)
	s.NoError(err)
	s.Require().NotNil(logo)
	s.Equal("https://example.com/sport.png", *logo)

	missing, err := store.MenuLogo(s.ctx, domain.EntitySport, 999)
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresIntegrationSuite) TestCatalogStore_Person() {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO people (id, name, headshot_url, team_id) VALUES (11, 'Jane Athlete', NULL, 5)")
	s.Require().NoError(err)

	store := NewCatalogStore(s.db)

	person, err := store.Person(s.ctx, 11)
	s.NoError(err)
	s.Require().NotNil(person)
	s.Equal("Jane Athlete", person.Name)
	s.Require().NotNil(person.TeamID)
	s.Equal(int64(5), *person.TeamID)
	s.Nil(person.SchoolID)

	missing, err := store.Person(s.ctx, 999)
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	articleStore := NewArticleStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := articleStore.Upsert(ctx, &domain.Article{
			URL:         "https://example.com/tx-article",
			Title:       "Transaction Article",
			Source:      "test",
			PublishedAt: now,
			Tags:        []domain.EntityRef{{Type: domain.EntityTeam, ID: 5}},
		})
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE url = $1", "https://example.com/tx-article")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.insertArticle("https://example.com/pre-existing", now)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		_, err := exec.ExecContext(ctx, `
			INSERT INTO articles (url, title, source, published_at)
			VALUES ($1, $2, $3, $4)
		`, "https://example.com/should-rollback", "Should Rollback", "test", now)
		if err != nil {
			return err
		}

		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE url = $1", "https://example.com/should-rollback")
	s.NoError(err)
	s.Equal(0, count)

	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE url = $1", "https://example.com/pre-existing")
	s.NoError(err)
	s.Equal(1, count)
}
