package redis

import (
	"context"
	"net"
	"strconv"

	"authgate/biz/config"

	"github.com/redis/go-redis/v9"
)

// New returns a client for conf, or nil when the cache is disabled.
func New(conf config.RedisConf) *redis.Client {
	if !conf.Enable {
		return nil
	}
	host := conf.IP
	if host == "" {
		host = "127.0.0.1"
	}
	port := conf.Port
	if port == 0 {
		port = 6379
	}
	return redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: conf.Password,
		DB:       conf.DB,
	})
}

func Ping(ctx context.Context, rdb *redis.Client) error {
	return rdb.Ping(ctx).Err()
}
