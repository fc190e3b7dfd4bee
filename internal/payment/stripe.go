package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/example/gocheckout/internal/config"
)

// StripeProcessor 基于 Stripe Checkout 的 Processor 实现
type StripeProcessor struct {
	api      *client.API
	currency string
}

// NewStripeProcessor 创建 Stripe 客户端
func NewStripeProcessor(cfg *config.StripeConfig) *StripeProcessor {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &StripeProcessor{api: api, currency: currency}
}

func (s *StripeProcessor) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*Session, error) {
	currency := p.Currency
	if currency == "" {
		currency = s.currency
	}
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(p.CustomerEmail),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(p.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	// 防止网络抖动重试时重复建会话
	params.SetIdempotencyKey(uuid.NewString())

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
	}, nil
}

func (s *StripeProcessor) RetrieveCheckoutSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
	}, nil
}
