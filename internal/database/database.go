package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdash/internal/config"
	"blogdash/internal/utils"
)

// State is the observable connection state of a Service.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// ErrNotConnected is returned by Collection users when Connect has never succeeded.
var ErrNotConnected = errors.New("database is not connected")

type Service interface {
	// Connect ensures a connection exists. It is a no-op while connected or connecting.
	Connect(ctx context.Context) error
	State() State
	Health() map[string]string
	Client() *mongo.Client
	Collection(name string) *mongo.Collection
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}

type service struct {
	cfg config.Mongo

	mu     sync.Mutex
	state  atomic.Int32
	client *mongo.Client
}

// New returns a handle for the configured database. It does not connect.
func New(cfg config.Mongo) Service {
	return &service{cfg: cfg}
}

func (s *service) State() State {
	return State(s.state.Load())
}

func (s *service) Connect(ctx context.Context) error {
	if st := s.State(); st == Connected || st == Connecting {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == Connected {
		return nil
	}
	s.state.Store(int32(Connecting))
	log.Debug().Str("database", s.cfg.Database).Msg("Connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		s.state.Store(int32(Disconnected))
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.connectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		s.state.Store(int32(Disconnected))
		return fmt.Errorf("ping mongodb: %w", err)
	}

	s.client = client
	s.state.Store(int32(Connected))
	utils.DBConnectionsOpen.WithLabelValues(s.cfg.Database).Set(1)
	log.Info().Str("database", s.cfg.Database).Msg("Connected to MongoDB")
	return nil
}

func (s *service) connectTimeout() time.Duration {
	if s.cfg.ConnectTimeout <= 0 {
		return 10 * time.Second
	}
	return s.cfg.ConnectTimeout
}

func (s *service) Health() map[string]string {
	client := s.Client()
	if client == nil {
		return map[string]string{
			"message": "db down",
			"error":   ErrNotConnected.Error(),
			"state":   s.State().String(),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := client.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
			"state":   s.State().String(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
		"state":   s.State().String(),
	}
}

func (s *service) Client() *mongo.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// Collection returns the named collection, or nil before the first successful Connect.
func (s *service) Collection(name string) *mongo.Collection {
	client := s.Client()
	if client == nil {
		return nil
	}
	return client.Database(s.cfg.Database).Collection(name)
}

// EnsureIndexes creates the indexes the list and lookup queries rely on.
func (s *service) EnsureIndexes(ctx context.Context) error {
	if s.Client() == nil {
		return ErrNotConnected
	}

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"categories": {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		"blogs": {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "category", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := s.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}

func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Disconnect(ctx)
	s.client = nil
	s.state.Store(int32(Disconnected))
	utils.DBConnectionsOpen.WithLabelValues(s.cfg.Database).Set(0)
	if err != nil {
		return fmt.Errorf("disconnect from mongodb: %w", err)
	}
	log.Info().Str("database", s.cfg.Database).Msg("Disconnected from MongoDB")
	return nil
}
