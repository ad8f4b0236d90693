package db

import (
	"context"
	"time"

	"authgate/biz/config"
	"authgate/biz/dal/repo"
	"authgate/biz/db/mongodb"
	rediscli "authgate/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Stores holds the process wide connections and the repository built on them.
type Stores struct {
	Mongo *mongo.Client
	Redis *redis.Client
	Users repo.UserRepository
}

// Init opens the configured stores. Connection problems are logged and the
// returned repository reports them per request; Init itself never fails.
// ctx must outlive the background ping and index setup.
func Init(ctx context.Context) *Stores {
	s := &Stores{}
	mongoConf := config.GetMongoConf()

	client, err := mongodb.Connect(mongoConf)
	if err != nil {
		hlog.CtxErrorf(ctx, "MongoDB connection error: %v", err)
		s.Users = repo.NewUnavailable(err)
	} else {
		s.Mongo = client
		users := repo.NewUserRepositoryMongo(mongodb.Collection(client, mongoConf))
		s.Users = users

		// server selection can take a while; do not hold up listening
		go func() {
			mongodb.Ping(ctx, client)
			if !mongoConf.UniqueEmail {
				return
			}
			if err := users.EnsureIndexes(ctx); err != nil {
				hlog.CtxErrorf(ctx, "ensure user indexes err: %v", err)
			}
		}()
	}

	redisConf := config.GetRedisConf()
	if rdb := rediscli.New(redisConf); rdb != nil {
		if err := rediscli.Ping(ctx, rdb); err != nil {
			hlog.CtxWarnf(ctx, "redis ping err, cache reads will fall back: %v", err)
		}
		s.Redis = rdb
		s.Users = repo.NewUserRepositoryCached(s.Users, rdb, time.Duration(redisConf.UserTTLSeconds)*time.Second)
	}

	return s
}

// Close releases the connections opened by Init.
func (s *Stores) Close(ctx context.Context) {
	if s.Mongo != nil {
		if err := s.Mongo.Disconnect(ctx); err != nil {
			hlog.CtxErrorf(ctx, "mongo disconnect err: %v", err)
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			hlog.CtxErrorf(ctx, "redis close err: %v", err)
		}
	}
}
