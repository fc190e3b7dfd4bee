package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/gocheckout/internal/datamodels/order"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var list []*order.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) SearchByUser(ctx context.Context, userID int64, keyword string) ([]*order.Order, error) {
	like := "%" + keyword + "%"
	var list []*order.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status LIKE ? OR checkout_session LIKE ?", like, like).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) MarkPaidBySession(ctx context.Context, session string) (*order.Order, error) {
	// 先更新后读取；订单已是 paid 时重复执行是天然幂等的
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("checkout_session = ?", session).
		Update("status", order.StatusPaid).Error; err != nil {
		return nil, err
	}
	var o order.Order
	if err := r.db.WithContext(ctx).
		Where("checkout_session = ?", session).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var list []*order.Order
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
