package repo

import (
	"context"
	"encoding/json"
	"time"

	"authgate/biz/model/convert"
	"authgate/biz/model/domain"
	"authgate/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyUserByID    = "authgate:user:uid:"
	keyUserByEmail = "authgate:user:email:"

	defaultUserTTL = 10 * time.Minute
)

// UserRepositoryCached puts a redis read-through cache in front of another
// repository. Records are never updated, so a cached hit cannot go stale;
// misses are not cached because the record may be created at any moment.
// Redis errors fall back to the wrapped repository.
type UserRepositoryCached struct {
	next UserRepository
	rdb  redis.UniversalClient
	ttl  time.Duration
}

func NewUserRepositoryCached(next UserRepository, rdb redis.UniversalClient, ttl time.Duration) *UserRepositoryCached {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserRepositoryCached{next: next, rdb: rdb, ttl: ttl}
}

func (r *UserRepositoryCached) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return r.next.Create(ctx, u)
}

func (r *UserRepositoryCached) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.cached(ctx, keyUserByEmail+email, func() (*domain.User, error) {
		return r.next.FindByEmail(ctx, email)
	})
}

func (r *UserRepositoryCached) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return r.cached(ctx, keyUserByID+userID, func() (*domain.User, error) {
		return r.next.FindByUserID(ctx, userID)
	})
}

func (r *UserRepositoryCached) cached(ctx context.Context, key string, load func() (*domain.User, error)) (*domain.User, error) {
	if u, ok := r.get(ctx, key); ok {
		return u, nil
	}

	u, err := load()
	if err != nil || u == nil {
		return u, err
	}

	r.set(ctx, key, u)
	return u, nil
}

func (r *UserRepositoryCached) get(ctx context.Context, key string) (*domain.User, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			hlog.CtxWarnf(ctx, "user cache get %s err: %v", key, err)
		}
		return nil, false
	}

	var m storage.UserRecord
	if err := json.Unmarshal(b, &m); err != nil {
		hlog.CtxWarnf(ctx, "user cache decode %s err: %v", key, err)
		return nil, false
	}
	return convert.UserRecordToDomain(&m), true
}

func (r *UserRepositoryCached) set(ctx context.Context, key string, u *domain.User) {
	b, err := json.Marshal(convert.UserDomainToRecord(u))
	if err != nil {
		hlog.CtxWarnf(ctx, "user cache encode %s err: %v", key, err)
		return
	}
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		hlog.CtxWarnf(ctx, "user cache set %s err: %v", key, err)
	}
}
