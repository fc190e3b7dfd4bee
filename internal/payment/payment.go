package payment

import "context"

// PaymentStatusPaid 处理器侧会话支付完成的状态值
const PaymentStatusPaid = "paid"

// Session 处理器签发的 Checkout 会话，这里只关心 ID 和支付状态
type Session struct {
	ID            string
	PaymentStatus string
}

// CheckoutParams 创建 Checkout 会话所需的参数
type CheckoutParams struct {
	ProductName   string
	UnitAmount    int64 // 最小货币单位（分）金额
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Processor 支付处理器抽象，视为不透明外部服务
type Processor interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*Session, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (*Session, error)
}

// FromDecimal 把十进制价格（元）换算为最小货币单位（分）整数。
// 超过两位小数的部分直接截断（19.995 -> 1999）；补一个极小量抵消
// 二进制浮点误差（19.99*100 == 1998.99...），否则截断会少一分。
func FromDecimal(price float64) int64 {
	return int64(price*100 + 1e-6)
}
