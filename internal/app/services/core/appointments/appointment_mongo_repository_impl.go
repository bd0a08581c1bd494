package appointments

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointment.ToDoc())
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	appointment, ok := models.AppointmentFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, notes string, updatedAt time.Time) error {
	set := bson.M{
		"status":    string(status),
		"updatedAt": primitive.NewDateTimeFromTime(updatedAt),
	}
	if notes != "" {
		set["notes"] = notes
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByDoctorAndStatus(ctx context.Context, doctorID string, status models.AppointmentStatus) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"doctorId": doctorID,
		"status":   string(status),
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (r *AppointmentMongoRepository) CountByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"doctorId": doctorID,
		"date": bson.M{
			"$gte": primitive.NewDateTimeFromTime(from),
			"$lt":  primitive.NewDateTimeFromTime(to),
		},
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (r *AppointmentMongoRepository) DistinctPatientsByDoctor(ctx context.Context, doctorID string) (int, error) {
	ids, err := r.Collection.Distinct(ctx, "patientId", bson.M{"doctorId": doctorID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return len(ids), nil
}

func (r *AppointmentMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		appointment, ok := models.AppointmentFromDoc(doc)
		if !ok {
			// Malformed documents are dropped rather than failing
			// the whole listing.
			continue
		}
		appointments = append(appointments, *appointment)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
