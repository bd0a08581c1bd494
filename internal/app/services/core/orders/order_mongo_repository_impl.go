package orders

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Client, dbName string) contracts.OrderRepository {
	return &OrderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrders),
	}
}

func (r *OrderMongoRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.Collection.InsertOne(ctx, order.ToDoc())
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *OrderMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		order, ok := models.OrderFromDoc(doc)
		if !ok {
			continue
		}
		orders = append(orders, *order)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}

func (r *OrderMongoRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	order, ok := models.OrderFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return order, nil
}

func (r *OrderMongoRepository) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
