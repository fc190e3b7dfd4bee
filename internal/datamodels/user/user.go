package user

import (
	"context"
	"time"
)

// User 用户模型
// Email 在创建 Checkout Session 时预填给支付处理器。
type User struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:64;not null"`
	Email     string    `gorm:"uniqueIndex;size:128;not null"`
	Password  string    `gorm:"size:255;not null"` // 已加密密码
	Salt      string    `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Public 对外返回的用户视图，不带密码和盐
type Public struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Sanitize 按白名单序列化用户
func (u *User) Sanitize() *Public {
	return &Public{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Repository 用户仓储接口
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) error
	ListAll(ctx context.Context) ([]*User, error)
}
