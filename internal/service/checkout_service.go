package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/gocheckout/internal/config"
	"github.com/example/gocheckout/internal/datamodels/order"
	"github.com/example/gocheckout/internal/datamodels/product"
	"github.com/example/gocheckout/internal/events"
	"github.com/example/gocheckout/internal/payment"
)

// CheckoutService 下单核心：创建支付会话 + 确认支付
type CheckoutService struct {
	productRepo product.Repository
	orderRepo   order.Repository
	processor   payment.Processor
	publisher   events.Publisher // 可为 nil，事件只是尽力而为
	cfg         *config.CheckoutConfig
	currency    string
}

// NewCheckoutService 创建下单服务
func NewCheckoutService(
	productRepo product.Repository,
	orderRepo order.Repository,
	processor payment.Processor,
	publisher events.Publisher,
	cfg *config.CheckoutConfig,
	currency string,
) *CheckoutService {
	if currency == "" {
		currency = "usd"
	}
	return &CheckoutService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		processor:   processor,
		publisher:   publisher,
		cfg:         cfg,
		currency:    currency,
	}
}

// Create 发起下单：
// 校验商品 -> 创建 Checkout Session -> 落库 unpaid 订单 -> 返回会话 ID。
// origin 为请求的 Origin 头，前端支付完成后回跳到该地址。
func (s *CheckoutService) Create(ctx context.Context, userID int64, email string, productID int64, origin string) (string, error) {
	GetMonitor().RecordCheckoutRequest()

	if productID == 0 {
		return "", ErrNoProduct
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		// 存储层错误不外泄，统一按商品不存在处理
		zap.L().Warn("product lookup failed", zap.Int64("product_id", productID), zap.Error(err))
		return "", ErrProductNotFound
	}

	if origin == "" {
		origin = s.cfg.FallbackOrigin
	}

	sess, err := s.processor.CreateCheckoutSession(ctx, payment.CheckoutParams{
		ProductName:   p.Name,
		UnitAmount:    payment.FromDecimal(p.Price),
		Currency:      s.currency,
		CustomerEmail: email,
		SuccessURL:    origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin,
	})
	if err != nil {
		GetMonitor().RecordStripeError()
		return "", err
	}

	// TODO: 会话创建成功但落库失败会留下没有订单的孤儿会话，需要补偿机制
	o := &order.Order{
		UserID:          userID,
		ProductID:       p.ID,
		Total:           p.Price,
		Status:          order.StatusUnpaid,
		CheckoutSession: sess.ID,
	}
	if err := s.orderRepo.Create(ctx, o); err != nil {
		GetMonitor().RecordDBError()
		return "", err
	}

	GetMonitor().RecordCheckoutSuccess()
	zap.L().Info("checkout session created",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", p.ID),
		zap.String("checkout_session", sess.ID))
	return sess.ID, nil
}

// Confirm 确认支付：查询会话状态，paid 则把对应订单置为已支付并返回
func (s *CheckoutService) Confirm(ctx context.Context, session string) (*order.Order, error) {
	GetMonitor().RecordConfirmRequest()

	if session == "" {
		return nil, ErrSessionRequired
	}

	sess, err := s.processor.RetrieveCheckoutSession(ctx, session)
	if err != nil {
		GetMonitor().RecordStripeError()
		return nil, err
	}

	if sess.PaymentStatus != payment.PaymentStatusPaid {
		GetMonitor().RecordConfirmError()
		return nil, ErrPaymentNotVerified
	}

	o, err := s.orderRepo.MarkPaidBySession(ctx, session)
	if err != nil {
		GetMonitor().RecordDBError()
		return nil, err
	}

	if s.publisher != nil {
		evt := &events.OrderPaid{
			OrderID:         o.ID,
			UserID:          o.UserID,
			ProductID:       o.ProductID,
			Total:           o.Total,
			CheckoutSession: o.CheckoutSession,
			PaidAt:          time.Now(),
		}
		if err := s.publisher.PublishOrderPaid(ctx, evt); err != nil {
			// 事件丢失不影响确认结果
			GetMonitor().RecordMQError()
			zap.L().Warn("publish order.paid failed", zap.Int64("order_id", o.ID), zap.Error(err))
		}
	}

	GetMonitor().RecordConfirmSuccess()
	zap.L().Info("order confirmed paid",
		zap.Int64("order_id", o.ID),
		zap.String("checkout_session", o.CheckoutSession))
	return o, nil
}
