package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdash/internal/models"
	"blogdash/internal/repositories"
)

// existenceChecker resolves referenced entities before a handler acts on them.
// A missing document is reported as a not-found error; anything else is a
// persistence failure and is returned as is.
type existenceChecker struct {
	users      repositories.UserRepository
	categories repositories.CategoryRepository
}

func (c existenceChecker) user(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Warn().Str("user_id", userID.Hex()).Msg("User not found")
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error finding user by ID")
		return nil, err
	}
	return user, nil
}

func (c existenceChecker) category(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.Category, error) {
	category, err := c.categories.FindByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Warn().Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Category not found")
			return nil, ErrCategoryNotFound
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Error finding category by ID")
		return nil, err
	}
	return category, nil
}
