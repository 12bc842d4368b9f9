package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub-io/userhub/internal/platform/apperr"
	"github.com/userhub-io/userhub/internal/platform/constants"
	"github.com/userhub-io/userhub/internal/platform/dberr"
	"github.com/userhub-io/userhub/pkg/listquery"
)

// MongoRepository implements [Repository] on top of a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(constants.CollectionUsers)}
}

// EnsureIndexes creates the unique index on username. It is idempotent and
// runs once at startup. The index is the sole arbiter of username races:
// concurrent identical-username writes are resolved here, not in application
// code.
func (repository *MongoRepository) EnsureIndexes(context context.Context) error {
	_, err := repository.collection.Indexes().CreateOne(context, mongo.IndexModel{
		Keys:    bson.D{{Key: FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users: failed to create username index: %w", err)
	}
	return nil
}

func (repository *MongoRepository) List(context context.Context, q listquery.Params) ([]*User, error) {
	sortDirection := -1
	if q.Ascending() {
		sortDirection = 1
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: FieldJoinedAt, Value: sortDirection}}).
		SetSkip(int64(q.Offset)).
		SetLimit(int64(q.Limit))

	cursor, err := repository.collection.Find(context, bson.D{}, findOptions)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer cursor.Close(context)

	var result []*User
	if err := cursor.All(context, &result); err != nil {
		return nil, dberr.Wrap(err, "decode_users")
	}

	// An empty page serializes as [] rather than null.
	if result == nil {
		result = []*User{}
	}

	return result, nil
}

func (repository *MongoRepository) Create(context context.Context, username string) (*User, error) {
	user := &User{
		ID:       primitive.NewObjectID(),
		Username: username,
		JoinedAt: time.Now().UTC(),
	}

	if _, err := repository.collection.InsertOne(context, user); err != nil {
		return nil, dberr.Wrap(err, "create_user")
	}

	return user, nil
}

func (repository *MongoRepository) GetByID(context context.Context, id string) (*User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user := &User{}
	err = repository.collection.FindOne(context, bson.M{FieldID: objectID}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}

	return user, nil
}

func (repository *MongoRepository) UpdateByID(context context.Context, id, username string) (*User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{FieldUsername: username}}

	user := &User{}
	err = repository.collection.FindOneAndUpdate(context, bson.M{FieldID: objectID}, update, updateOptions).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "update_user")
	}

	return user, nil
}

func (repository *MongoRepository) DeleteByID(context context.Context, id string) (*User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user := &User{}
	err = repository.collection.FindOneAndDelete(context, bson.M{FieldID: objectID}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "delete_user")
	}

	return user, nil
}

// parseObjectID rejects structurally invalid ids before any store access.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidID("user")
	}
	return objectID, nil
}
