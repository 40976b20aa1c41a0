package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"blogdash/internal/database"
)

const (
	usersCollection      = "users"
	categoriesCollection = "categories"
	blogsCollection      = "blogs"
)

func collection(db database.Service, name string) (*mongo.Collection, error) {
	c := db.Collection(name)
	if c == nil {
		return nil, database.ErrNotConnected
	}
	return c, nil
}
