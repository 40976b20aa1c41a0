package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"blogdash/internal/config"
	"blogdash/internal/database"
	"blogdash/internal/logger"
	"blogdash/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	appLogger, err := logger.Setup(cfg.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logger")
	}

	db := database.New(cfg.Mongo)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	if err := db.Connect(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure indexes")
	}
	cancel()

	s := server.NewServer(cfg, db, appLogger)

	done := make(chan bool, 1)

	go s.GracefulShutdown(done)

	err = s.Start()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
