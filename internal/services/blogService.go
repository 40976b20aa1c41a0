package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogdash/internal/database"
	"blogdash/internal/metrics"
	"blogdash/internal/models"
	"blogdash/internal/repositories"
)

// BlogService defines the blog use cases. Every operation checks the
// referenced user (and category, where given) before touching the blog.
type BlogService interface {
	ListBlogs(ctx context.Context, query models.BlogListQuery) ([]models.Blog, error)
	CreateBlog(ctx context.Context, userID, categoryID primitive.ObjectID, req models.BlogRequest) (*models.Blog, error)
	GetBlog(ctx context.Context, userID, categoryID, blogID primitive.ObjectID) (*models.Blog, error)
	UpdateBlog(ctx context.Context, userID, blogID primitive.ObjectID, req models.BlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, userID, blogID primitive.ObjectID) error
}

type blogServiceImpl struct {
	db       database.Service
	blogRepo repositories.BlogRepository
	exists   existenceChecker
	limits   PageLimits
	now      func() time.Time
}

func NewBlogService(
	db database.Service,
	blogRepo repositories.BlogRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	limits PageLimits,
) BlogService {
	return &blogServiceImpl{
		db:       db,
		blogRepo: blogRepo,
		exists:   existenceChecker{users: userRepo, categories: categoryRepo},
		limits:   limits,
		now:      time.Now,
	}
}

func (s *blogServiceImpl) ListBlogs(ctx context.Context, query models.BlogListQuery) ([]models.Blog, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, query.UserID); err != nil {
		return nil, err
	}
	if _, err := s.exists.category(ctx, query.UserID, query.CategoryID); err != nil {
		return nil, err
	}

	filter, opts := BuildBlogFilter(query, s.limits)
	log.Debug().Str("user_id", query.UserID.Hex()).Interface("filter", filter).Msg("Listing blogs")

	blogs, err := s.blogRepo.Find(ctx, filter, opts)
	if err != nil {
		log.Error().Err(err).Str("user_id", query.UserID.Hex()).Msg("Error finding blogs")
		return nil, err
	}
	return blogs, nil
}

func (s *blogServiceImpl) CreateBlog(ctx context.Context, userID, categoryID primitive.ObjectID, req models.BlogRequest) (*models.Blog, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.exists.category(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	blog := &models.Blog{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.blogRepo.Create(ctx, blog)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("Error inserting blog")
		return nil, err
	}

	metrics.BlogCreatedTotal.Inc()
	log.Info().Str("user_id", userID.Hex()).Str("blog_id", created.ID.Hex()).Msg("Blog created")
	return created, nil
}

func (s *blogServiceImpl) GetBlog(ctx context.Context, userID, categoryID, blogID primitive.ObjectID) (*models.Blog, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.exists.category(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	return s.findBlog(ctx, bson.M{"_id": blogID, "user": userID, "category": categoryID})
}

func (s *blogServiceImpl) UpdateBlog(ctx context.Context, userID, blogID primitive.ObjectID, req models.BlogRequest) (*models.Blog, error) {
	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return nil, err
	}

	filter := bson.M{"_id": blogID, "user": userID}
	blog, err := s.findBlog(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"description": req.Description,
		"updatedAt":   now,
	}}

	result, err := s.blogRepo.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("blog_id", blogID.Hex()).Str("user_id", userID.Hex()).Msg("Error updating blog")
		return nil, err
	}
	if result.MatchedCount == 0 {
		// Deleted between the lookup and the update.
		return nil, ErrBlogNotFound
	}

	blog.Title = req.Title
	blog.Description = req.Description
	blog.UpdatedAt = now

	metrics.EntityMutationsTotal.WithLabelValues("blog", "update").Inc()
	log.Info().Str("user_id", userID.Hex()).Str("blog_id", blogID.Hex()).Msg("Blog updated")
	return blog, nil
}

func (s *blogServiceImpl) DeleteBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	if err := s.db.Connect(ctx); err != nil {
		return err
	}
	if _, err := s.exists.user(ctx, userID); err != nil {
		return err
	}

	filter := bson.M{"_id": blogID, "user": userID}
	if _, err := s.findBlog(ctx, filter); err != nil {
		return err
	}

	result, err := s.blogRepo.DeleteOne(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("blog_id", blogID.Hex()).Str("user_id", userID.Hex()).Msg("Error deleting blog")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrBlogNotFound
	}

	metrics.EntityMutationsTotal.WithLabelValues("blog", "delete").Inc()
	log.Info().Str("user_id", userID.Hex()).Str("blog_id", blogID.Hex()).Msg("Blog deleted")
	return nil
}

func (s *blogServiceImpl) findBlog(ctx context.Context, filter bson.M) (*models.Blog, error) {
	blog, err := s.blogRepo.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Warn().Interface("filter", filter).Msg("Blog not found")
			return nil, ErrBlogNotFound
		}
		log.Error().Err(err).Interface("filter", filter).Msg("Error finding blog")
		return nil, err
	}
	return blog, nil
}
