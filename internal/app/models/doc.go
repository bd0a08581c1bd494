package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The hosted document store is schemaless, so every read goes through these
// field accessors. A missing or mistyped required field makes the enclosing
// FromDoc constructor fail, and the caller drops the record.

func docString(doc bson.M, key string) (string, bool) {
	value, ok := doc[key].(string)
	return value, ok
}

func docStringOr(doc bson.M, key, fallback string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return fallback
}

func docBool(doc bson.M, key string, fallback bool) bool {
	if value, ok := doc[key].(bool); ok {
		return value
	}
	return fallback
}

func docFloat(doc bson.M, key string) (float64, bool) {
	switch value := doc[key].(type) {
	case float64:
		return value, true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}

func docFloatOr(doc bson.M, key string, fallback float64) float64 {
	if value, ok := docFloat(doc, key); ok {
		return value
	}
	return fallback
}

func docInt(doc bson.M, key string, fallback int) int {
	switch value := doc[key].(type) {
	case int32:
		return int(value)
	case int64:
		return int(value)
	case float64:
		return int(value)
	default:
		return fallback
	}
}

func docTime(doc bson.M, key string) (time.Time, bool) {
	switch value := doc[key].(type) {
	case primitive.DateTime:
		return value.Time(), true
	case time.Time:
		return value, true
	default:
		return time.Time{}, false
	}
}

func docTimeOr(doc bson.M, key string, fallback time.Time) time.Time {
	if value, ok := docTime(doc, key); ok {
		return value
	}
	return fallback
}

func docID(doc bson.M) (string, bool) {
	switch value := doc["_id"].(type) {
	case string:
		return value, true
	case primitive.ObjectID:
		return value.Hex(), true
	default:
		return "", false
	}
}
