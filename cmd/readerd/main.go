package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"sportsreader/internal/aggregate"
	"sportsreader/internal/cache"
	"sportsreader/internal/config"
	"sportsreader/internal/domain"
	"sportsreader/internal/publisher"
	"sportsreader/internal/scheduler"
	"sportsreader/internal/server"
	"sportsreader/internal/service"
	"sportsreader/internal/source/gnews"
	"sportsreader/internal/source/newsapi"
	"sportsreader/internal/source/rss"
	"sportsreader/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Stores
	interestStore := postgres.NewInterestStore(db)
	articleStore := postgres.NewArticleStore(db)
	catalogStore := postgres.NewCatalogStore(db)
	refreshStateStore := postgres.NewRefreshStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Aggregation pipeline
	var feeds []aggregate.FeedSource
	for _, f := range cfg.Sources.Feeds {
		if f.Active {
			feeds = append(feeds, rss.New(f.Name, f.URL, logger))
		}
	}
	var searchers []aggregate.SearchSource
	if cfg.Sources.NewsAPI.Enabled {
		searchers = append(searchers, newsapi.New(cfg.Sources.NewsAPI.BaseURL, cfg.Sources.NewsAPI.APIKeyEnv, logger))
	}
	if cfg.Sources.GNews.Enabled {
		searchers = append(searchers, gnews.New(cfg.Sources.GNews.BaseURL, cfg.Sources.GNews.APIKeyEnv, logger))
	}
	pipeline := aggregate.New(feeds, searchers, cfg.Aggregation.SourceTimeout, logger)

	articleCache := cache.New(redisClient, cfg.Redis.TTL, logger)

	// Services
	interestService := service.NewInterestService(interestStore, logger)
	feedService := service.NewFeedService(interestStore, articleStore, logger)
	resolver := service.NewResolver(interestStore, catalogStore, logger)
	refreshService := service.NewRefreshService(
		pipeline,
		articleStore,
		articleCache,
		refreshStateStore,
		txManager,
		pub,
		&cfg.Aggregation,
		topicGroups(cfg.Aggregation.Topics),
		logger,
	)

	sched := scheduler.NewScheduler(refreshService, cfg.Aggregation.RefreshInterval, logger)
	srv := server.New(feedService, interestService, resolver, refreshService, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
		if err := srv.Shutdown(); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	logger.Info("starting reader",
		"addr", cfg.Server.Addr,
		"feeds", len(feeds),
		"searchers", len(searchers),
		"refresh_interval", cfg.Aggregation.RefreshInterval,
	)

	if err := srv.Listen(cfg.Server.Addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// topicGroups maps configured topic groups onto their domain form.
func topicGroups(groups []config.TopicGroup) []domain.TopicGroup {
	out := make([]domain.TopicGroup, 0, len(groups))
	for _, g := range groups {
		if !domain.ValidEntityType(g.EntityType) {
			continue
		}
		out = append(out, domain.TopicGroup{
			Label:    g.Label,
			Entity:   domain.EntityRef{Type: domain.EntityType(g.EntityType), ID: g.EntityID},
			LeagueID: g.LeagueID,
			Topics:   g.Terms,
		})
	}
	return out
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
