package articles

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthArticleMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthArticleMongoRepository(db *mongo.Client, dbName string) contracts.HealthArticleRepository {
	return &HealthArticleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthArticles),
	}
}

func (r *HealthArticleMongoRepository) FindAll(ctx context.Context) ([]models.HealthArticle, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	articles := make([]models.HealthArticle, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		article, ok := models.HealthArticleFromDoc(doc)
		if !ok {
			continue
		}
		articles = append(articles, *article)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return articles, nil
}

func (r *HealthArticleMongoRepository) FindByID(ctx context.Context, articleID string) (*models.HealthArticle, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": articleID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	article, ok := models.HealthArticleFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return article, nil
}
