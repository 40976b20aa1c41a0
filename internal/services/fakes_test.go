package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdash/internal/database"
	"blogdash/internal/models"
)

type fakeDB struct {
	database.Service
	connectErr error
	connects   int
}

func (f *fakeDB) Connect(ctx context.Context) error {
	f.connects++
	return f.connectErr
}

type fakeUserRepo struct {
	users     map[primitive.ObjectID]models.User
	err       error
	createErr error
	vanish    bool
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[primitive.ObjectID]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.users[user.ID] = *user
	return user, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	users := []models.User{}
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, userID primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	u, ok := r.users[userID]
	if !ok || r.vanish {
		return &mongo.UpdateResult{}, nil
	}
	u.Username = fields["username"].(string)
	r.users[userID] = u
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := r.users[userID]; !ok || r.vanish {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.users, userID)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]models.Category
	vanish     bool
}

func newFakeCategoryRepo(categories ...models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[primitive.ObjectID]models.Category{}}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	r.categories[category.ID] = *category
	return category, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, userID, categoryID primitive.ObjectID) (*models.Category, error) {
	c, ok := r.categories[categoryID]
	if !ok || c.UserID != userID {
		return nil, mongo.ErrNoDocuments
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Category, error) {
	categories := []models.Category{}
	for _, c := range r.categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, userID, categoryID primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	c, ok := r.categories[categoryID]
	if !ok || c.UserID != userID || r.vanish {
		return &mongo.UpdateResult{}, nil
	}
	c.Title = fields["title"].(string)
	r.categories[categoryID] = c
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, userID, categoryID primitive.ObjectID) (*mongo.DeleteResult, error) {
	c, ok := r.categories[categoryID]
	if !ok || c.UserID != userID || r.vanish {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.categories, categoryID)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// fakeBlogRepo understands the equality filters the service builds on _id, user and category.
type fakeBlogRepo struct {
	blogs      map[primitive.ObjectID]models.Blog
	lastFilter bson.M
	lastOpts   *options.FindOptions
	vanish     bool
	inserts    int
}

func newFakeBlogRepo(blogs ...models.Blog) *fakeBlogRepo {
	r := &fakeBlogRepo{blogs: map[primitive.ObjectID]models.Blog{}}
	for _, b := range blogs {
		r.blogs[b.ID] = b
	}
	return r
}

func (r *fakeBlogRepo) matches(b models.Blog, filter bson.M) bool {
	if id, ok := filter["_id"]; ok && id != b.ID {
		return false
	}
	if u, ok := filter["user"]; ok && u != b.UserID {
		return false
	}
	if c, ok := filter["category"]; ok && c != b.CategoryID {
		return false
	}
	return true
}

func (r *fakeBlogRepo) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	r.inserts++
	r.blogs[blog.ID] = *blog
	return blog, nil
}

func (r *fakeBlogRepo) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Blog, error) {
	r.lastFilter = filter
	r.lastOpts = opts
	blogs := []models.Blog{}
	for _, b := range r.blogs {
		if r.matches(b, filter) {
			blogs = append(blogs, b)
		}
	}
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].CreatedAt.Before(blogs[j].CreatedAt) })
	return blogs, nil
}

func (r *fakeBlogRepo) FindOne(ctx context.Context, filter bson.M) (*models.Blog, error) {
	for _, b := range r.blogs {
		if r.matches(b, filter) {
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeBlogRepo) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	if r.vanish {
		return &mongo.UpdateResult{}, nil
	}
	set := update["$set"].(bson.M)
	for id, b := range r.blogs {
		if r.matches(b, filter) {
			b.Title = set["title"].(string)
			b.Description = set["description"].(string)
			r.blogs[id] = b
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (r *fakeBlogRepo) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	if r.vanish {
		return &mongo.DeleteResult{}, nil
	}
	for id, b := range r.blogs {
		if r.matches(b, filter) {
			delete(r.blogs, id)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}
