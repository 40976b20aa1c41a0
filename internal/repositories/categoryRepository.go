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

// CategoryRepository scopes every lookup and mutation by owner.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.Category, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Category, error)
	Update(ctx context.Context, userID, categoryID primitive.ObjectID, updateFields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, userID, categoryID primitive.ObjectID) (*mongo.DeleteResult, error)
}

type categoryRepository struct {
	db database.Service
}

func NewCategoryRepository(db database.Service) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) (_ *models.Category, err error) {
	defer utils.ObserveQuery("create", "category")(&err)

	coll, err := collection(r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	result, err := coll.InsertOne(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, userID, categoryID primitive.ObjectID) (_ *models.Category, err error) {
	defer utils.ObserveQuery("findByID", "category")(&err)

	coll, err := collection(r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	var category models.Category
	filter := bson.M{"_id": categoryID, "user": userID}
	err = coll.FindOne(ctx, filter).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (_ []models.Category, err error) {
	defer utils.ObserveQuery("findByUser", "category")(&err)

	coll, err := collection(r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, userID, categoryID primitive.ObjectID, updateFields bson.M) (_ *mongo.UpdateResult, err error) {
	defer utils.ObserveQuery("update", "category")(&err)

	coll, err := collection(r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": categoryID, "user": userID}
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": updateFields})
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return result, nil
}

func (r *categoryRepository) Delete(ctx context.Context, userID, categoryID primitive.ObjectID) (_ *mongo.DeleteResult, err error) {
	defer utils.ObserveQuery("delete", "category")(&err)

	coll, err := collection(r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": categoryID, "user": userID}
	result, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return result, nil
}
