package carts

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartMongoRepository struct {
	Collection *mongo.Collection
}

func NewCartMongoRepository(db *mongo.Client, dbName string) contracts.CartRepository {
	return &CartMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCarts),
	}
}

func (r *CartMongoRepository) Insert(ctx context.Context, item *models.CartItem) error {
	_, err := r.Collection.InsertOne(ctx, item.ToDoc())
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *CartMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.CartItem, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.CartItem, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		item, ok := models.CartItemFromDoc(doc)
		if !ok {
			continue
		}
		items = append(items, *item)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *CartMongoRepository) DeleteByIDAndUserID(ctx context.Context, itemID, userID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": itemID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrCartItemNotFound(nil)
	}
	return nil
}

func (r *CartMongoRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
