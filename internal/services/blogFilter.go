package services

import (
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogdash/internal/models"
)

// PageLimits bounds the page size of list queries.
type PageLimits struct {
	Default int64
	Max     int64
}

// BuildBlogFilter turns a list query into a Mongo filter and find options:
// owner and category always, keywords as a case-insensitive literal substring of
// title or description, an inclusive createdAt range, and ascending createdAt order.
func BuildBlogFilter(q models.BlogListQuery, limits PageLimits) (bson.M, *options.FindOptions) {
	filter := bson.M{
		"user":     q.UserID,
		"category": q.CategoryID,
	}

	if q.Keywords != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Keywords), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern}},
			bson.M{"description": bson.M{"$regex": pattern}},
		}
	}

	createdAt := bson.M{}
	if q.StartDate != nil {
		createdAt["$gte"] = *q.StartDate
	}
	if q.EndDate != nil {
		createdAt["$lte"] = *q.EndDate
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}

	page, limit := normalizePage(q.Page, q.Limit, limits)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(pageSkip(page, limit)).
		SetLimit(limit)

	return filter, opts
}

func normalizePage(page, limit int64, limits PageLimits) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = limits.Default
	}
	if limits.Max > 0 && limit > limits.Max {
		limit = limits.Max
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// pageSkip saturates at math.MaxInt64 so a page far past the end yields an
// empty result instead of an overflowed, negative skip.
func pageSkip(page, limit int64) int64 {
	if page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}
