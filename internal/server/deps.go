package server

import (
	"time"

	"github.com/example/gocheckout/internal/auth"
	"github.com/example/gocheckout/internal/config"
	"github.com/example/gocheckout/internal/events"
	"github.com/example/gocheckout/internal/infra/mq"
	"github.com/example/gocheckout/internal/infra/redis"
	"github.com/example/gocheckout/internal/payment"
	"github.com/example/gocheckout/internal/repository/mysql"
	"github.com/example/gocheckout/internal/service"
)

// Deps 路由层依赖集合，全部显式注入，路由代码不碰任何全局单例
type Deps struct {
	Cfg         *config.Config
	UserSvc     *service.UserService
	ProductSvc  *service.ProductService
	OrderSvc    *service.OrderService
	CheckoutSvc *service.CheckoutService
	TokenCache  *auth.TokenCache // 可为 nil，降级为每次解析 JWT
}

// BuildDeps 初始化基础设施并组装服务依赖
func BuildDeps(cfg *config.Config) *Deps {
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	ring := auth.NewConsistentHashRing(cfg.Auth.Nodes, cfg.Auth.HashReplicas)
	tokenCache := auth.NewTokenCache(redisClient, ring, time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)

	processor := payment.NewStripeProcessor(&cfg.Stripe)
	publisher := events.NewAMQPPublisher(mqConn)

	return &Deps{
		Cfg:         cfg,
		UserSvc:     service.NewUserService(userRepo, &cfg.JWT),
		ProductSvc:  service.NewProductService(productRepo),
		OrderSvc:    service.NewOrderService(orderRepo),
		CheckoutSvc: service.NewCheckoutService(productRepo, orderRepo, processor, publisher, &cfg.Checkout, cfg.Stripe.Currency),
		TokenCache:  tokenCache,
	}
}
