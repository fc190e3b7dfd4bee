package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const orderEventQueue = "order_events"

// OrderPaid 支付确认成功后发往 MQ 的事件
type OrderPaid struct {
	OrderID         int64     `json:"order_id"`
	UserID          int64     `json:"user_id"`
	ProductID       int64     `json:"product_id"`
	Total           float64   `json:"total"`
	CheckoutSession string    `json:"checkout_session"`
	PaidAt          time.Time `json:"paid_at"`
}

// Publisher 订单事件发布接口
type Publisher interface {
	PublishOrderPaid(ctx context.Context, evt *OrderPaid) error
}

// AMQPPublisher 基于 RabbitMQ 的 Publisher 实现
type AMQPPublisher struct {
	conn *amqp.Connection
}

// NewAMQPPublisher 创建发布器
func NewAMQPPublisher(conn *amqp.Connection) *AMQPPublisher {
	return &AMQPPublisher{conn: conn}
}

func (p *AMQPPublisher) PublishOrderPaid(ctx context.Context, evt *OrderPaid) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(orderEventQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(
		ctx,
		"",
		orderEventQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
