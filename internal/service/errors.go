package service

// ClientError 需要带着原始文案回给客户端的错误（HTTP 400），
// 其它错误一律向上冒泡，由框架按 500 处理。
type ClientError struct {
	Kind string
	Msg  string
}

func (e *ClientError) Error() string { return e.Msg }

var (
	// ErrNoProduct 下单请求缺少商品引用
	ErrNoProduct = &ClientError{Kind: "invalid_request", Msg: "please specify a product"}
	// ErrProductNotFound 商品不存在（存储层错误不外泄，统一归到这里）
	ErrProductNotFound = &ClientError{Kind: "invalid_request", Msg: "no product with such id"}
	// ErrSessionRequired 确认支付时缺少 checkout_session
	ErrSessionRequired = &ClientError{Kind: "invalid_request", Msg: "please specify a checkout_session"}
	// ErrPaymentNotVerified 处理器未报告 paid
	ErrPaymentNotVerified = &ClientError{Kind: "payment_not_verified", Msg: "it seems like the order wasn't verified, please contact support"}
)
