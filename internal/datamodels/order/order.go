package order

import (
	"context"
	"time"
)

// 订单状态：unpaid 创建即为未支付，确认支付后流转为 paid，不会回退
const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// Order 订单模型
// Total 记录下单时刻的商品原始价格（元），商品改价不影响历史订单；
// CheckoutSession 为支付处理器签发的会话 ID，作为确认支付时的自然键。
type Order struct {
	ID              int64     `gorm:"primaryKey"`
	UserID          int64     `gorm:"index;not null"`
	ProductID       int64     `gorm:"index;not null"`
	Total           float64   `gorm:"type:decimal(10,2);not null"`
	Status          string    `gorm:"size:16;index;not null"`
	CheckoutSession string    `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Public 对外返回的订单视图，白名单字段，避免带出内部信息
type Public struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"product_id"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	CheckoutSession string  `json:"checkout_session"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Sanitize 按白名单序列化订单
func (o *Order) Sanitize() *Public {
	return &Public{
		ID:              o.ID,
		ProductID:       o.ProductID,
		Total:           o.Total,
		Status:          o.Status,
		CheckoutSession: o.CheckoutSession,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
}

// SanitizeAll 批量序列化
func SanitizeAll(list []*Order) []*Public {
	out := make([]*Public, 0, len(list))
	for _, o := range list {
		out = append(out, o.Sanitize())
	}
	return out
}

// Repository 订单仓储接口
type Repository interface {
	Create(ctx context.Context, o *Order) error
	// GetByIDForUser 按 ID 查询并限定归属用户，别人的订单一律视为不存在
	GetByIDForUser(ctx context.Context, id, userID int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*Order, error)
	// SearchByUser 在当前用户的订单内做关键字匹配（status / checkout_session）
	SearchByUser(ctx context.Context, userID int64, keyword string) ([]*Order, error)
	// MarkPaidBySession 将 checkout_session 匹配的订单置为 paid 并返回更新后的记录
	MarkPaidBySession(ctx context.Context, session string) (*Order, error)
	ListRecent(ctx context.Context, limit int) ([]*Order, error)
}
