package labtests

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (r *LabTestMongoRepository) FindAll(ctx context.Context) ([]models.LabTest, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	labTests := make([]models.LabTest, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		labTest, ok := models.LabTestFromDoc(doc)
		if !ok {
			continue
		}
		labTests = append(labTests, *labTest)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labTests, nil
}

func (r *LabTestMongoRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": labTestID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	labTest, ok := models.LabTestFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return labTest, nil
}
