package mongodb

import (
	"context"

	"authgate/biz/config"
	"authgate/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// mongoose connects to "test" when the uri names no database.
const defaultDatabase = "test"

// Connect builds the shared client. The driver dials lazily, so an error here
// only means the uri itself is unusable.
func Connect(conf config.MongoConf) (*mongo.Client, error) {
	if conf.URI == "" {
		return nil, errors.New("mongo uri is empty")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(conf.URI))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	return client, nil
}

// Ping logs whether the server is reachable. It never fails the caller.
func Ping(ctx context.Context, client *mongo.Client) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		hlog.CtxErrorf(ctx, "MongoDB connection error: %v", err)
		return
	}
	hlog.CtxInfof(ctx, "MongoDB connected")
}

func Collection(client *mongo.Client, conf config.MongoConf) *mongo.Collection {
	dbName := conf.Database
	if dbName == "" {
		dbName = defaultDatabase
	}
	collName := conf.Collection
	if collName == "" {
		collName = storage.UserCollection
	}
	return client.Database(dbName).Collection(collName)
}
