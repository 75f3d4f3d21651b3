package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// GetCreatedAtSortBson maps a sort query value onto a created_at sort document.
// Anything unrecognized falls back to newest first.
func GetCreatedAtSortBson(sort string) bson.D {
	value := -1
	if strings.Contains(sort, "asc") {
		value = 1
	}
	return bson.D{{Key: "created_at", Value: value}}
}
