package prescriptions

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) Insert(ctx context.Context, prescription *models.Prescription) error {
	_, err := r.Collection.InsertOne(ctx, prescription.ToDoc())
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *PrescriptionMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": prescriptionID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	prescription, ok := models.PrescriptionFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return prescription, nil
}

func (r *PrescriptionMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		prescription, ok := models.PrescriptionFromDoc(doc)
		if !ok {
			continue
		}
		prescriptions = append(prescriptions, *prescription)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}
