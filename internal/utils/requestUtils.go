package utils

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether s is a well-formed document id (24 hex characters).
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// ParseID validates s and converts it to an ObjectID.
func ParseID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
