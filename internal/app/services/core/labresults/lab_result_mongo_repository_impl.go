package labresults

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabResultMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabResultMongoRepository(db *mongo.Client, dbName string) contracts.LabResultRepository {
	return &LabResultMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabResults),
	}
}

func (r *LabResultMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *LabResultMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.LabResult, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *LabResultMongoRepository) FindByID(ctx context.Context, labResultID string) (*models.LabResult, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": labResultID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	labResult, ok := models.LabResultFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return labResult, nil
}

func (r *LabResultMongoRepository) Update(ctx context.Context, labResult *models.LabResult) error {
	update := labResult.ToDoc()
	delete(update, "_id")

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": labResult.ID}, bson.M{"$set": update})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *LabResultMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.LabResult, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	labResults := make([]models.LabResult, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		labResult, ok := models.LabResultFromDoc(doc)
		if !ok {
			continue
		}
		labResults = append(labResults, *labResult)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labResults, nil
}
