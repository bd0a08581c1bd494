package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type HealthArticle struct {
	ID          string
	Title       string
	Summary     string
	Content     string
	PublishedAt time.Time
}

func HealthArticleFromDoc(doc bson.M) (*HealthArticle, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	title, ok := docString(doc, "title")
	if !ok {
		return nil, false
	}
	content, ok := docString(doc, "content")
	if !ok {
		return nil, false
	}

	return &HealthArticle{
		ID:          id,
		Title:       title,
		Summary:     docStringOr(doc, "summary", ""),
		Content:     content,
		PublishedAt: docTimeOr(doc, "publishedAt", time.Time{}),
	}, true
}
