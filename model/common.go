package model

import "time"

// CtxKeyAuthorizedUser ..
const CtxKeyAuthorizedUser = "ckau"

// CtxKeyRealIPStr ..
const CtxKeyRealIPStr = "ckri"

// Common ..
type Common struct {
	ID        uint64     `json:"id" gorm:"primary_key"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" sql:"index"`
}

type CommonResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	// Code is the 6-digit TOTP code, required when the account has MFA enabled.
	Code string `json:"code,omitempty" form:"code"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Expire string `json:"expire"`
}
