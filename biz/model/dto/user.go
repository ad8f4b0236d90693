package dto

type RegisterReq struct {
	UserID   string `json:"userId" form:"userId" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email_format"`
	Password string `json:"password" form:"password" validate:"required,password_strength,password_bytes"`
}

type LoginReq struct {
	UserID   string `json:"userId" form:"userId" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
