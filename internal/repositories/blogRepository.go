package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdash/internal/database"
	"blogdash/internal/models"
	"blogdash/internal/utils"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Blog, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Blog, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
}

type blogRepository struct {
	db database.Service
}

func NewBlogRepository(db database.Service) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) (_ *models.Blog, err error) {
	defer utils.ObserveQuery("create", "blog")(&err)

	coll, err := collection(r.db, blogsCollection)
	if err != nil {
		return nil, err
	}

	result, err := coll.InsertOne(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("failed to add blog: %w", err)
	}
	blog.ID = result.InsertedID.(primitive.ObjectID)
	return blog, nil
}

func (r *blogRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) (_ []models.Blog, err error) {
	defer utils.ObserveQuery("find", "blog")(&err)

	coll, err := collection(r.db, blogsCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("error decoding blogs: %w", err)
	}
	return blogs, nil
}

func (r *blogRepository) FindOne(ctx context.Context, filter bson.M) (_ *models.Blog, err error) {
	defer utils.ObserveQuery("findOne", "blog")(&err)

	coll, err := collection(r.db, blogsCollection)
	if err != nil {
		return nil, err
	}

	var blog models.Blog
	err = coll.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (_ *mongo.UpdateResult, err error) {
	defer utils.ObserveQuery("updateOne", "blog")(&err)

	coll, err := collection(r.db, blogsCollection)
	if err != nil {
		return nil, err
	}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return result, nil
}

func (r *blogRepository) DeleteOne(ctx context.Context, filter bson.M) (_ *mongo.DeleteResult, err error) {
	defer utils.ObserveQuery("deleteOne", "blog")(&err)

	coll, err := collection(r.db, blogsCollection)
	if err != nil {
		return nil, err
	}

	result, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete blog: %w", err)
	}
	return result, nil
}
