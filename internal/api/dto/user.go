package dto

import "time"

// UserDTO 用户
type UserDTO struct {
	UserID    *uint64    `json:"user_id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	Balance   *int64     `json:"balance,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// FollowResultDTO 关注结果，重复关注不是错误
type FollowResultDTO struct {
	AlreadyFollowing bool `json:"already_following"`
}
