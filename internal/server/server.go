package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"sportsreader/internal/service"
)

// Server exposes the reader API over HTTP. All handlers are read paths
// except interest management and the on-demand aggregation trigger.
type Server struct {
	app       *fiber.App
	feed      *service.FeedService
	interests *service.InterestService
	resolver  *service.Resolver
	refresh   *service.RefreshService
	logger    *slog.Logger
}

func New(
	feed *service.FeedService,
	interests *service.InterestService,
	resolver *service.Resolver,
	refresh *service.RefreshService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          30 * time.Second,
			DisableStartupMessage: true,
		}),
		feed:      feed,
		interests: interests,
		resolver:  resolver,
		refresh:   refresh,
		logger:    logger.With("component", "server"),
	}

	api := s.app.Group("/api")
	api.Get("/feed", s.handleFeed)
	api.Get("/interests", s.handleListInterests)
	api.Post("/interests", s.handleCreateInterest)
	api.Delete("/interests/:id", s.handleDeleteInterest)
	api.Post("/interests/:id/focus", s.handleToggleFocus)
	api.Get("/resolve", s.handleResolve)
	api.Post("/aggregate", s.handleAggregate)
	api.Get("/search", s.handleSearch)

	return s
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}
