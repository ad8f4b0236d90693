package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	Status() int
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code   int32
	msg    string
	status int
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) Status() int {
	return bizErr.status
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), err.Error(), bizErr.Status())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), msg, bizErr.Status())
}

func New(code int32, msg string, status int) Error {
	return &bizError{
		code:   code,
		msg:    msg,
		status: status,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}

	if err1 == nil || err2 == nil {
		return false
	}

	return err1.Code() == err2.Code()
}

const PasswordStrengthMsg = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one digit"

var (
	Success         = New(0, "success", http.StatusOK)
	ServerError     = New(1_0001, "Internal Server Error", http.StatusInternalServerError)
	ParamError      = New(1_0002, "Invalid request body", http.StatusBadRequest)
	MissingFields   = New(1_0003, "Missing required fields", http.StatusBadRequest)
	InvalidEmail    = New(1_0004, "Invalid email address", http.StatusBadRequest)
	WeakPassword    = New(1_0005, PasswordStrengthMsg, http.StatusBadRequest)
	PasswordTooLong = New(1_0006, "Password must be at most 72 bytes long", http.StatusBadRequest)

	UserAlreadyExists  = New(2_0001, "User already exists", http.StatusBadRequest)
	UserNotFound       = New(2_0002, "User not found", http.StatusBadRequest)
	InvalidCredentials = New(2_0003, "Invalid credentials", http.StatusBadRequest)
	RegisterError      = New(2_0004, "Error registering user", http.StatusInternalServerError)
	LoginError         = New(2_0005, "Error logging in", http.StatusInternalServerError)
)
