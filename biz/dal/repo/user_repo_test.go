package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"authgate/biz/model/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type countingRepo struct {
	users map[string]*domain.User
	err   error

	findByEmailCalls  int
	findByUserIDCalls int
	createCalls       int
}

func newCountingRepo(users ...*domain.User) *countingRepo {
	r := &countingRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func (r *countingRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.createCalls++
	if r.err != nil {
		return nil, r.err
	}
	r.users[u.UserID] = u
	return u, nil
}

func (r *countingRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findByEmailCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *countingRepo) FindByUserID(_ context.Context, userID string) (*domain.User, error) {
	r.findByUserIDCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.users[userID], nil
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return mr, rdb
}

func TestUserRepositoryCached_FindByUserID(t *testing.T) {
	mr, rdb := setupRedis(t)
	ctx := context.Background()

	u := &domain.User{UserID: "u1", Email: "a@b.co", PasswordHash: "hash"}
	inner := newCountingRepo(u)
	r := NewUserRepositoryCached(inner, rdb, time.Minute)

	// miss then fill
	found, err := r.FindByUserID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, u, found)
	assert.Equal(t, 1, inner.findByUserIDCalls)
	assert.True(t, mr.Exists(keyUserByID+"u1"))
	assert.Equal(t, time.Minute, mr.TTL(keyUserByID+"u1"))

	// hit
	found, err = r.FindByUserID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, u, found)
	assert.Equal(t, 1, inner.findByUserIDCalls)
}

func TestUserRepositoryCached_MissIsNotCached(t *testing.T) {
	mr, rdb := setupRedis(t)
	ctx := context.Background()

	inner := newCountingRepo()
	r := NewUserRepositoryCached(inner, rdb, 0)

	found, err := r.FindByEmail(ctx, "a@b.co")
	assert.NoError(t, err)
	assert.Nil(t, found)
	assert.False(t, mr.Exists(keyUserByEmail+"a@b.co"))

	_, err = r.Create(ctx, &domain.User{UserID: "u1", Email: "a@b.co", PasswordHash: "hash"})
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.createCalls)

	found, err = r.FindByEmail(ctx, "a@b.co")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "u1", found.UserID)
	}
	assert.Equal(t, 2, inner.findByEmailCalls)
	assert.Equal(t, defaultUserTTL, mr.TTL(keyUserByEmail+"a@b.co"))
}

func TestUserRepositoryCached_InnerErrorPassesThrough(t *testing.T) {
	_, rdb := setupRedis(t)
	inner := newCountingRepo()
	inner.err = errors.New("db down")
	r := NewUserRepositoryCached(inner, rdb, time.Minute)

	found, err := r.FindByUserID(context.Background(), "u1")
	assert.Nil(t, found)
	assert.EqualError(t, err, "db down")
}

func TestUserRepositoryCached_RedisDownFallsBack(t *testing.T) {
	mr, rdb := setupRedis(t)
	mr.Close()

	u := &domain.User{UserID: "u1", Email: "a@b.co", PasswordHash: "hash"}
	inner := newCountingRepo(u)
	r := NewUserRepositoryCached(inner, rdb, time.Minute)

	found, err := r.FindByUserID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, u, found)
}

func TestUserRepositoryCached_CorruptEntryIsMiss(t *testing.T) {
	mr, rdb := setupRedis(t)
	assert.NoError(t, mr.Set(keyUserByID+"u1", "{not json"))

	u := &domain.User{UserID: "u1", Email: "a@b.co", PasswordHash: "hash"}
	inner := newCountingRepo(u)
	r := NewUserRepositoryCached(inner, rdb, time.Minute)

	found, err := r.FindByUserID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, u, found)
	assert.Equal(t, 1, inner.findByUserIDCalls)
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("bad uri")
	r := NewUnavailable(cause)

	_, err := r.Create(ctx, &domain.User{})
	assert.ErrorIs(t, err, cause)
	_, err = r.FindByEmail(ctx, "a@b.co")
	assert.ErrorIs(t, err, cause)
	_, err = r.FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, cause)

	_, err = NewUnavailable(nil).FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
