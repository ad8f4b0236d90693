package user

import (
	"context"

	"authgate/biz/dal/repo"
	"authgate/biz/model/domain"
	"authgate/biz/model/errs"
	"authgate/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Service struct {
	users  repo.UserRepository
	hasher encode.PasswordHasher
}

func New(users repo.UserRepository, hasher encode.PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// Register stores a new account. Inputs are expected to be validated already.
// The email check and the insert are not atomic; a unique index on email, when
// present, turns the losing insert of a race into UserAlreadyExists.
func (s *Service) Register(ctx context.Context, userID, email, password string) (*domain.User, errs.Error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error registering user: %v", err)
		return nil, errs.RegisterError
	}
	if existing != nil {
		return nil, errs.UserAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error registering user: %v", err)
		return nil, errs.RegisterError
	}

	u, err := s.users.Create(ctx, &domain.User{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			hlog.CtxNoticef(ctx, "register lost email race: %v", err)
			return nil, errs.UserAlreadyExists
		}
		hlog.CtxErrorf(ctx, "Error registering user: %v", err)
		return nil, errs.RegisterError
	}
	return u, nil
}

// Login checks password against the first account stored under userID.
func (s *Service) Login(ctx context.Context, userID, password string) (*domain.User, errs.Error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "Error logging in: %v", err)
		return nil, errs.LoginError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	if !s.hasher.Check(password, u.PasswordHash) {
		return nil, errs.InvalidCredentials
	}
	return u, nil
}
