package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"blogdash/internal/config"
	"blogdash/internal/database"
	"blogdash/internal/handlers"
	"blogdash/internal/middlewares"
	"blogdash/internal/repositories"
	"blogdash/internal/services"
)

type Server struct {
	port        int
	httpServer  *http.Server
	db          database.Service
	logger      zerolog.Logger
	origins     []string
	policy      handlers.StatusPolicy
	limiter     *middlewares.RateLimiter
	stopLimiter context.CancelFunc

	userService     services.UserService
	categoryService services.CategoryService
	blogService     services.BlogService
}

// NewServer wires repositories, services and routes on top of db. It does not
// connect; callers connect db before Start.
func NewServer(cfg *config.Config, db database.Service, logger zerolog.Logger) *Server {
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	limits := services.PageLimits{Default: cfg.API.DefaultPageSize, Max: cfg.API.MaxPageSize}

	s := &Server{
		port:            cfg.Server.Port,
		db:              db,
		logger:          logger,
		origins:         cfg.Server.Origins(),
		policy:          handlers.StatusPolicy{UnifyNotFound: cfg.API.UnifyNotFound},
		userService:     services.NewUserService(db, userRepo),
		categoryService: services.NewCategoryService(db, categoryRepo, userRepo),
		blogService:     services.NewBlogService(db, blogRepo, categoryRepo, userRepo, limits),
	}
	if cfg.RateLimit.Enabled {
		s.limiter = middlewares.NewRateLimiter(cfg.RateLimit)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	if s.limiter != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.stopLimiter = cancel
		go s.limiter.Cleanup(ctx)
	}

	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

// GracefulShutdown waits for SIGINT or SIGTERM, drains the HTTP server and
// closes the database handle.
func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}
	if s.stopLimiter != nil {
		s.stopLimiter()
	}
	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
