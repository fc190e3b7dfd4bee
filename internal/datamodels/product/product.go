package product

import (
	"context"
	"time"
)

// Product 商品模型
// Price 以十进制货币单位（元）存储，调用支付处理器时才换算为最小货币单位（分）。
type Product struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"size:128;not null"`
	Description string    `gorm:"size:512"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Status      int       `gorm:"index"` // 0:下线 1:正常
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Public 对外返回的商品视图
type Public struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Sanitize 按白名单序列化商品
func (p *Product) Sanitize() *Public {
	return &Public{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// Repository 商品仓储接口，下单核心只读，写操作留给后台管理端
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	ListOnline(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}
