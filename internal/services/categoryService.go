package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogdash/internal/database"
	"blogdash/internal/metrics"
	"blogdash/internal/models"
	"blogdash/internal/repositories"
)

// CategoryService defines the interface for category-related business logic.
type CategoryService interface {
	GetCategories(ctx context.Context, userID primitive.ObjectID) ([]models.Category, error)
	AddCategory(ctx context.Context, userID primitive.ObjectID, req models.CategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID primitive.ObjectID, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID primitive.ObjectID) error
}

// categoryServiceImpl implements the CategoryService interface.
type categoryServiceImpl struct {
	db           database.Service
	categoryRepo repositories.CategoryRepository
	exists       existenceChecker
	now          func() time.Time
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db database.Service, categoryRepo repositories.CategoryRepository, userRepo repositories.UserRepository) CategoryService {
	return &categoryServiceImpl{
		db:           db,
		categoryRepo: categoryRepo,
		exists:       existenceChecker{users: userRepo, categories: categoryRepo},
		now:          time.Now,
	}
}

func (s *categoryServiceImpl) GetCategories(ctx context.Context, userID primitive.ObjectID) ([]models.Category, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error finding categories")
		return nil, err
	}
	log.Debug().Str("user_id", userID.Hex()).Int("count", len(categories)).Msg("Successfully retrieved categories")
	return categories, nil
}

func (s *categoryServiceImpl) AddCategory(ctx context.Context, userID primitive.ObjectID, req models.CategoryRequest) (*models.Category, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	category := &models.Category{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		log.Error().Err(err).Str("category_title", req.Title).Str("user_id", userID.Hex()).Msg("Failed to insert category")
		return nil, err
	}

	metrics.CategoryCreatedTotal.Inc()
	log.Info().Str("user_id", userID.Hex()).Str("category_id", created.ID.Hex()).Msg("Category added successfully")
	return created, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.Category, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}
	return s.exists.category(ctx, userID, categoryID)
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, userID, categoryID primitive.ObjectID, req models.CategoryRequest) (*models.Category, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}
	category, err := s.exists.category(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	result, err := s.categoryRepo.Update(ctx, userID, categoryID, bson.M{"title": req.Title, "updatedAt": now})
	if err != nil {
		log.Error().Err(err).Str("category_id", categoryID.Hex()).Str("user_id", userID.Hex()).Msg("Failed to update category")
		return nil, err
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Category vanished before update")
		return nil, ErrCategoryNotFound
	}

	category.Title = req.Title
	category.UpdatedAt = now

	metrics.EntityMutationsTotal.WithLabelValues("category", "update").Inc()
	log.Info().Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Category updated successfully")
	return category, nil
}

// DeleteCategory removes the category only; blogs filed under it are left in place.
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, userID, categoryID primitive.ObjectID) error {
	if err := s.db.Connect(ctx); err != nil {
		return err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return err
	}
	if _, err := s.exists.category(ctx, userID, categoryID); err != nil {
		return err
	}

	result, err := s.categoryRepo.Delete(ctx, userID, categoryID)
	if err != nil {
		log.Error().Err(err).Str("category_id", categoryID.Hex()).Str("user_id", userID.Hex()).Msg("Failed to delete category")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Category vanished before delete")
		return ErrCategoryNotFound
	}

	metrics.EntityMutationsTotal.WithLabelValues("category", "delete").Inc()
	log.Info().Str("user_id", userID.Hex()).Str("category_id", categoryID.Hex()).Msg("Category deleted successfully")
	return nil
}
