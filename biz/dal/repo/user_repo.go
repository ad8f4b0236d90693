package repo

import (
	"context"

	"authgate/biz/model/domain"

	"github.com/pkg/errors"
)

// ErrStoreUnavailable is returned when the service started without a usable store.
var ErrStoreUnavailable = errors.New("user store unavailable")

// UserRepository is the credential store. Find methods return (nil, nil)
// when no record matches.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
}

type unavailableRepo struct {
	cause error
}

// NewUnavailable returns a repository that fails every call with cause.
func NewUnavailable(cause error) UserRepository {
	if cause == nil {
		cause = ErrStoreUnavailable
	}
	return &unavailableRepo{cause: cause}
}

func (r *unavailableRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.WithMessage(r.cause, "create user")
}

func (r *unavailableRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.WithMessage(r.cause, "find user by email")
}

func (r *unavailableRepo) FindByUserID(context.Context, string) (*domain.User, error) {
	return nil, errors.WithMessage(r.cause, "find user by user id")
}
