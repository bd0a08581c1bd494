package users

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	_, err := r.Collection.InsertOne(ctx, userModel.ToDoc())
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return userModel.ID, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *UserMongoRepository) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		user, ok := models.UserFromDoc(doc)
		if !ok {
			continue
		}
		users = append(users, *user)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	update := userModel.ToDoc()
	delete(update, "_id")

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": userModel.ID}, bson.M{"$set": update})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// findOne treats both a missing document and one that fails decoding as
// absent. Malformed records are dropped, never surfaced.
func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc bson.M
	err := r.Collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	user, ok := models.UserFromDoc(doc)
	if !ok {
		return nil, nil
	}
	return user, nil
}
