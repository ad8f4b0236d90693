package repo

import (
	"context"

	"authgate/biz/model/convert"
	"authgate/biz/model/domain"
	"authgate/biz/model/storage"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepositoryMongo struct {
	coll *mongo.Collection
}

func NewUserRepositoryMongo(coll *mongo.Collection) *UserRepositoryMongo {
	return &UserRepositoryMongo{coll: coll}
}

// EnsureIndexes creates the unique email index. Existing duplicate emails
// make this fail, in which case the service keeps the pre-write check only.
func (r *UserRepositoryMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	return errors.Wrap(err, "create email index")
}

func (r *UserRepositoryMongo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	rec := convert.UserDomainToRecord(u)
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return nil, errors.Wrap(err, "insert user")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		rec.ID = id
	}
	return convert.UserRecordToDomain(rec), nil
}

func (r *UserRepositoryMongo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepositoryMongo) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "userId", Value: userID}})
}

func (r *UserRepositoryMongo) findOne(ctx context.Context, filter bson.D) (*domain.User, error) {
	var m storage.UserRecord
	err := r.coll.FindOne(ctx, filter).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "find user by %s", filter[0].Key)
	}
	return convert.UserRecordToDomain(&m), nil
}
