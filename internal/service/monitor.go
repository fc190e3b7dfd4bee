package service

import (
	"sync"
	"time"
)

// Monitor 监控服务，用于统计下单/确认链路的错误和性能指标
type Monitor struct {
	mu sync.RWMutex

	// 错误统计
	StripeErrors  int64
	DBErrors      int64
	MQErrors      int64
	ConfirmErrors int64

	// 性能统计
	CheckoutRequests int64
	CheckoutSuccess  int64
	ConfirmRequests  int64
	ConfirmSuccess   int64

	// 时间统计
	LastStripeError  time.Time
	LastDBError      time.Time
	LastMQError      time.Time
	LastCheckoutTime time.Time
	LastConfirmTime  time.Time
}

var globalMonitor = &Monitor{}

// GetMonitor 获取全局监控实例
func GetMonitor() *Monitor {
	return globalMonitor
}

// RecordStripeError 记录支付处理器调用错误
func (m *Monitor) RecordStripeError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StripeErrors++
	m.LastStripeError = time.Now()
}

// RecordDBError 记录数据库错误
func (m *Monitor) RecordDBError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DBErrors++
	m.LastDBError = time.Now()
}

// RecordMQError 记录MQ错误
func (m *Monitor) RecordMQError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MQErrors++
	m.LastMQError = time.Now()
}

// RecordCheckoutRequest 记录发起下单
func (m *Monitor) RecordCheckoutRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckoutRequests++
	m.LastCheckoutTime = time.Now()
}

// RecordCheckoutSuccess 记录下单成功（会话已建、订单已落库）
func (m *Monitor) RecordCheckoutSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckoutSuccess++
}

// RecordConfirmRequest 记录支付确认请求
func (m *Monitor) RecordConfirmRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfirmRequests++
	m.LastConfirmTime = time.Now()
}

// RecordConfirmSuccess 记录确认成功
func (m *Monitor) RecordConfirmSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfirmSuccess++
}

// RecordConfirmError 记录确认失败（含未支付）
func (m *Monitor) RecordConfirmError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfirmErrors++
}

// GetStats 获取统计信息
func (m *Monitor) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	checkoutRate := float64(0)
	if m.CheckoutRequests > 0 {
		checkoutRate = float64(m.CheckoutSuccess) / float64(m.CheckoutRequests) * 100
	}

	confirmRate := float64(0)
	if m.ConfirmRequests > 0 {
		confirmRate = float64(m.ConfirmSuccess) / float64(m.ConfirmRequests) * 100
	}

	return map[string]interface{}{
		"errors": map[string]interface{}{
			"stripe":  m.StripeErrors,
			"db":      m.DBErrors,
			"mq":      m.MQErrors,
			"confirm": m.ConfirmErrors,
		},
		"performance": map[string]interface{}{
			"checkout_requests":     m.CheckoutRequests,
			"checkout_success":      m.CheckoutSuccess,
			"checkout_success_rate": checkoutRate,
			"confirm_requests":      m.ConfirmRequests,
			"confirm_success":       m.ConfirmSuccess,
			"confirm_success_rate":  confirmRate,
		},
		"last_events": map[string]interface{}{
			"stripe_error":  m.LastStripeError,
			"db_error":      m.LastDBError,
			"mq_error":      m.LastMQError,
			"last_checkout": m.LastCheckoutTime,
			"last_confirm":  m.LastConfirmTime,
		},
	}
}

// Reset 重置统计（用于测试）
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StripeErrors = 0
	m.DBErrors = 0
	m.MQErrors = 0
	m.ConfirmErrors = 0
	m.CheckoutRequests = 0
	m.CheckoutSuccess = 0
	m.ConfirmRequests = 0
	m.ConfirmSuccess = 0
}
