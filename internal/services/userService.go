package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"blogdash/internal/database"
	"blogdash/internal/metrics"
	"blogdash/internal/models"
	"blogdash/internal/repositories"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, userID primitive.ObjectID, newUsername string) (*models.User, error)
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
}

// userService implements UserService using a UserRepository.
type userService struct {
	db       database.Service
	userRepo repositories.UserRepository
	exists   existenceChecker
	now      func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(db database.Service, userRepo repositories.UserRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		exists:   existenceChecker{users: userRepo},
		now:      time.Now,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	metrics.TotalUsers.Set(float64(len(users)))
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 8)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password during user creation")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("email", req.Email).Msg("Email already exists during user insertion")
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	metrics.UserCreatedTotal.Inc()
	metrics.TotalUsers.Inc()
	log.Info().Str("user_id", created.ID.Hex()).Msg("User created successfully")
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID primitive.ObjectID, newUsername string) (*models.User, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	user, err := s.exists.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	result, err := s.userRepo.Update(ctx, userID, bson.M{"username": newUsername, "updatedAt": now})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	user.Username = newUsername
	user.UpdatedAt = now

	metrics.EntityMutationsTotal.WithLabelValues("user", "update").Inc()
	log.Info().Str("user_id", userID.Hex()).Msg("User updated successfully")
	return user, nil
}

// DeleteUser removes the user document only; categories and blogs it owned stay behind.
func (s *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.db.Connect(ctx); err != nil {
		return err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return err
	}

	result, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}

	metrics.EntityMutationsTotal.WithLabelValues("user", "delete").Inc()
	metrics.TotalUsers.Dec()
	log.Info().Str("user_id", userID.Hex()).Msg("User deleted successfully")
	return nil
}
