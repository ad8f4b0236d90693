package handler

import (
	"context"

	"authgate/biz/model/dto"
	"authgate/biz/model/errs"
	"authgate/biz/service/user"
	"authgate/biz/util/resp"
	"authgate/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	msgRegisterSuccess = "Registration Successful"
	msgLoginSuccess    = "Login Successful"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates an account.
//
//	@Tags			user
//	@Summary		register a user
//	@Description	validates the fields, rejects a known email and stores a bcrypt hash of the password
//	@Accept			json,x-www-form-urlencoded
//	@Produce		plain
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		200	{string}	string			"Registration Successful"
//	@Failure		400	{string}	string			"Missing required fields | Invalid email address | password rule | User already exists"
//	@Failure		500	{string}	string			"Error registering user"
//	@Router			/register [POST]
func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if err := c.Bind(&req); err != nil {
		hlog.CtxNoticef(ctx, "Bind err: %v", err)
		resp.FailResp(c, errs.ParamError)
		return
	}
	if bizErr := validate.Struct(&req); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	if _, bizErr := h.users.Register(ctx, req.UserID, req.Email, req.Password); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, msgRegisterSuccess)
}

// Login checks a user id and password. Nothing is issued on success.
//
//	@Tags			user
//	@Summary		log a user in
//	@Description	verifies the password against the stored hash
//	@Accept			json,x-www-form-urlencoded
//	@Produce		plain
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{string}	string			"Login Successful"
//	@Failure		400	{string}	string			"Missing required fields | User not found | Invalid credentials"
//	@Failure		500	{string}	string			"Error logging in"
//	@Router			/login [POST]
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.Bind(&req); err != nil {
		hlog.CtxNoticef(ctx, "Bind err: %v", err)
		resp.FailResp(c, errs.ParamError)
		return
	}
	if bizErr := validate.Struct(&req); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	if _, bizErr := h.users.Login(ctx, req.UserID, req.Password); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, msgLoginSuccess)
}
