package server

import (
	"errors"
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/example/gocheckout/internal/auth"
	"github.com/example/gocheckout/internal/config"
	"github.com/example/gocheckout/internal/datamodels/order"
	"github.com/example/gocheckout/internal/datamodels/product"
	"github.com/example/gocheckout/internal/middleware"
	"github.com/example/gocheckout/internal/service"
)

// writeServiceError 客户端错误回 400 原始文案，其余一律 500
func writeServiceError(ctx iris.Context, err error) {
	var ce *service.ClientError
	if errors.As(err, &ce) {
		ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": ce.Msg})
		return
	}
	ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
}

// authMiddleware 解析 Authorization 头里的 JWT，claims 写入请求上下文；
// 命中 Redis 缓存时跳过签名校验。
func authMiddleware(jwtCfg *config.JWTConfig, cache *auth.TokenCache) iris.Handler {
	return func(ctx iris.Context) {
		token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "missing token"})
			return
		}

		var claims *auth.Claims
		if cache != nil {
			if cached, ok, err := cache.Get(ctx.Request().Context(), token); err == nil && ok {
				claims = cached
			}
		}
		if claims == nil {
			parsed, err := auth.ParseToken(jwtCfg, token)
			if err != nil {
				ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": "invalid token"})
				return
			}
			claims = parsed
			if cache != nil {
				_ = cache.Set(ctx.Request().Context(), token, claims)
			}
		}

		ctx.Values().Set("user_id", claims.UserID)
		ctx.Values().Set("username", claims.Username)
		ctx.Values().Set("email", claims.Email)
		ctx.Next()
	}
}

// RegisterRoutes 注册所有 HTTP 路由
func RegisterRoutes(app *iris.Application, deps *Deps) {
	cfg := deps.Cfg

	api := app.Party("/api")

	// 健康检查
	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{
			"code": 0,
			"msg":  "ok",
		})
	})

	// 用户注册/登录（简单示例）
	api.Post("/register", func(ctx iris.Context) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		u, err := deps.UserSvc.Register(ctx.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": u.Sanitize()})
	})

	api.Post("/login", func(ctx iris.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		token, err := deps.UserSvc.Login(ctx.Request().Context(), req.Username, req.Password)
		if err != nil {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": iris.Map{"token": token}})
	})

	// 需要登录的接口
	authAPI := api.Party("/", authMiddleware(&cfg.JWT, deps.TokenCache))

	// 商品列表（在线商品）
	authAPI.Get("/products", func(ctx iris.Context) {
		list, err := deps.ProductSvc.ListOnline(ctx.Request().Context())
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		out := make([]*product.Public, 0, len(list))
		for _, p := range list {
			out = append(out, p.Sanitize())
		}
		ctx.JSON(iris.Map{"code": 0, "data": out})
	})

	// 商品详情
	authAPI.Get("/products/{id:uint64}", func(ctx iris.Context) {
		pid, _ := ctx.Params().GetUint64("id")
		p, err := deps.ProductSvc.GetByID(ctx.Request().Context(), int64(pid))
		if err != nil {
			ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "product not found"})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p.Sanitize()})
	})

	// 订单列表，只看得到自己的；?q= 走关键字搜索
	authAPI.Get("/orders", func(ctx iris.Context) {
		userID := ctx.Values().GetInt64Default("user_id", 0)
		keyword := ctx.URLParam("q")
		list, err := deps.OrderSvc.ListForUser(ctx.Request().Context(), userID, keyword)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": order.SanitizeAll(list)})
	})

	// 订单详情，别人的订单一律 404
	authAPI.Get("/orders/{id:uint64}", func(ctx iris.Context) {
		oid, _ := ctx.Params().GetUint64("id")
		userID := ctx.Values().GetInt64Default("user_id", 0)
		o, err := deps.OrderSvc.GetForUser(ctx.Request().Context(), int64(oid), userID)
		if err != nil {
			ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "order not found"})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": o.Sanitize()})
	})

	// 发起下单：创建 Checkout Session 并落库 unpaid 订单
	authAPI.Post("/orders", middleware.CheckoutRateLimit(), func(ctx iris.Context) {
		var req struct {
			Product struct {
				ID int64 `json:"id"`
			} `json:"product"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		userID := ctx.Values().GetInt64Default("user_id", 0)
		email := ctx.Values().GetStringDefault("email", "")
		origin := ctx.GetHeader("Origin")

		sessionID, err := deps.CheckoutSvc.Create(ctx.Request().Context(), userID, email, req.Product.ID, origin)
		if err != nil {
			writeServiceError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": iris.Map{"id": sessionID}})
	})

	// 确认支付：校验会话状态并把订单置为 paid
	authAPI.Post("/orders/confirm", func(ctx iris.Context) {
		var req struct {
			CheckoutSession string `json:"checkout_session"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		o, err := deps.CheckoutSvc.Confirm(ctx.Request().Context(), req.CheckoutSession)
		if err != nil {
			writeServiceError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": o.Sanitize()})
	})
}
