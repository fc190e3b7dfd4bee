package service

import (
	"context"

	"github.com/example/gocheckout/internal/datamodels/order"
)

// OrderService 订单查询，所有读操作强制限定在请求用户自己的订单内
type OrderService struct {
	repo order.Repository
}

// NewOrderService 创建订单服务
func NewOrderService(repo order.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// ListForUser 查询当前用户的订单，keyword 非空时走存储层的关键字搜索
func (s *OrderService) ListForUser(ctx context.Context, userID int64, keyword string) ([]*order.Order, error) {
	if keyword != "" {
		return s.repo.SearchByUser(ctx, userID, keyword)
	}
	return s.repo.ListByUser(ctx, userID)
}

// GetForUser 按 ID 查询当前用户的订单，别人的订单返回 not found
func (s *OrderService) GetForUser(ctx context.Context, id, userID int64) (*order.Order, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

// ListRecent 查询最新的订单记录（后台用）
func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	return s.repo.ListRecent(ctx, limit)
}
