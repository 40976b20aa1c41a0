package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a post owned by one user and filed under one of that user's categories.
// UserID and CategoryID never change after creation.
type Blog struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	UserID      primitive.ObjectID `json:"user" bson:"user"`
	CategoryID  primitive.ObjectID `json:"category" bson:"category"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BlogRequest is the body of both create and update; update replaces both fields.
type BlogRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// BlogListQuery holds the parsed query string of GET /blogs.
type BlogListQuery struct {
	UserID     primitive.ObjectID
	CategoryID primitive.ObjectID
	Keywords   string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int64
	Limit      int64
}
