package medicines

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context) ([]models.Medicine, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicines := make([]models.Medicine, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		medicine, ok := models.MedicineFromDoc(doc)
		if !ok {
			continue
		}
		medicines = append(medicines, *medicine)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": medicineID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	medicine, ok := models.MedicineFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return medicine, nil
}
