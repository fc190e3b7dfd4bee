package server

import (
	"context"
	"errors"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/httptest"

	"github.com/example/gocheckout/internal/auth"
	"github.com/example/gocheckout/internal/config"
	"github.com/example/gocheckout/internal/datamodels/order"
	"github.com/example/gocheckout/internal/datamodels/product"
	"github.com/example/gocheckout/internal/datamodels/user"
	"github.com/example/gocheckout/internal/payment"
	"github.com/example/gocheckout/internal/service"
)

type fakeProductRepo struct {
	products map[int64]*product.Product
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]*product.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListOnline(ctx context.Context) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range f.products {
		if p.Status == 1 {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Create(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error           { return nil }

type fakeOrderRepo struct {
	orders []*order.Order
	nextID int64
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	f.nextID++
	o.ID = f.nextID
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*order.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.UserID == userID {
			return o, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) SearchByUser(ctx context.Context, userID int64, keyword string) ([]*order.Order, error) {
	return f.ListByUser(ctx, userID)
}

func (f *fakeOrderRepo) MarkPaidBySession(ctx context.Context, session string) (*order.Order, error) {
	for _, o := range f.orders {
		if o.CheckoutSession == session {
			o.Status = order.StatusPaid
			return o, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeOrderRepo) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	return f.orders, nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return nil, errors.New("record not found")
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.New("record not found")
}
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error    { return nil }
func (f *fakeUserRepo) ListAll(ctx context.Context) ([]*user.User, error) { return nil, nil }

type fakeProcessor struct {
	paid bool
}

func (f *fakeProcessor) CreateCheckoutSession(ctx context.Context, p payment.CheckoutParams) (*payment.Session, error) {
	return &payment.Session{ID: "cs_test_abc", PaymentStatus: "unpaid"}, nil
}

func (f *fakeProcessor) RetrieveCheckoutSession(ctx context.Context, id string) (*payment.Session, error) {
	status := "unpaid"
	if f.paid {
		status = payment.PaymentStatusPaid
	}
	return &payment.Session{ID: id, PaymentStatus: status}, nil
}

func newTestApp(proc *fakeProcessor, orderRepo *fakeOrderRepo) (*iris.Application, *config.Config) {
	cfg := config.DefaultConfig()
	productRepo := &fakeProductRepo{products: map[int64]*product.Product{
		1: {ID: 1, Name: "Widget", Price: 19.99, Status: 1},
	}}

	deps := &Deps{
		Cfg:         cfg,
		UserSvc:     service.NewUserService(&fakeUserRepo{}, &cfg.JWT),
		ProductSvc:  service.NewProductService(productRepo),
		OrderSvc:    service.NewOrderService(orderRepo),
		CheckoutSvc: service.NewCheckoutService(productRepo, orderRepo, proc, nil, &cfg.Checkout, "usd"),
		TokenCache:  nil,
	}

	app := iris.New()
	RegisterRoutes(app, deps)
	return app, cfg
}

func bearerToken(t *testing.T, cfg *config.Config, userID int64, username, email string) string {
	t.Helper()
	token, err := auth.GenerateToken(&cfg.JWT, userID, username, email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(&fakeProcessor{}, &fakeOrderRepo{})
	e := httptest.New(t, app)

	e.GET("/api/health").Expect().Status(httptest.StatusOK).Body().Contains("ok")
}

func TestOrders_RequireAuth(t *testing.T) {
	app, _ := newTestApp(&fakeProcessor{}, &fakeOrderRepo{})
	e := httptest.New(t, app)

	e.GET("/api/orders").Expect().Status(httptest.StatusUnauthorized)
	e.POST("/api/orders").Expect().Status(httptest.StatusUnauthorized)
}

func TestCreateCheckout(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	app, cfg := newTestApp(&fakeProcessor{}, orderRepo)
	e := httptest.New(t, app)
	token := bearerToken(t, cfg, 7, "alice", "alice@example.com")

	e.POST("/api/orders").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{"product": map[string]interface{}{"id": 1}}).
		Expect().Status(httptest.StatusOK).Body().Contains("cs_test_abc")

	if len(orderRepo.orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orderRepo.orders))
	}
	if orderRepo.orders[0].Status != order.StatusUnpaid {
		t.Errorf("expected unpaid order, got %s", orderRepo.orders[0].Status)
	}
}

func TestCreateCheckout_MissingProduct(t *testing.T) {
	app, cfg := newTestApp(&fakeProcessor{}, &fakeOrderRepo{})
	e := httptest.New(t, app)
	token := bearerToken(t, cfg, 7, "alice", "alice@example.com")

	e.POST("/api/orders").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{}).
		Expect().Status(httptest.StatusBadRequest).Body().Contains("please specify a product")
}

func TestConfirm_NotPaid(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	app, cfg := newTestApp(&fakeProcessor{paid: false}, orderRepo)
	e := httptest.New(t, app)
	token := bearerToken(t, cfg, 7, "alice", "alice@example.com")

	e.POST("/api/orders").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{"product": map[string]interface{}{"id": 1}}).
		Expect().Status(httptest.StatusOK)

	e.POST("/api/orders/confirm").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{"checkout_session": "cs_test_abc"}).
		Expect().Status(httptest.StatusBadRequest).Body().Contains("contact support")

	if orderRepo.orders[0].Status != order.StatusUnpaid {
		t.Errorf("order must stay unpaid, got %s", orderRepo.orders[0].Status)
	}
}

func TestConfirm_Paid(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	app, cfg := newTestApp(&fakeProcessor{paid: true}, orderRepo)
	e := httptest.New(t, app)
	token := bearerToken(t, cfg, 7, "alice", "alice@example.com")

	e.POST("/api/orders").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{"product": map[string]interface{}{"id": 1}}).
		Expect().Status(httptest.StatusOK)

	e.POST("/api/orders/confirm").
		WithHeader("Authorization", token).
		WithJSON(map[string]interface{}{"checkout_session": "cs_test_abc"}).
		Expect().Status(httptest.StatusOK).Body().Contains("paid")

	if orderRepo.orders[0].Status != order.StatusPaid {
		t.Errorf("expected paid order, got %s", orderRepo.orders[0].Status)
	}
}

func TestGetOrder_OtherUserHidden(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	_ = orderRepo.Create(context.Background(), &order.Order{UserID: 8, ProductID: 1, Total: 19.99, Status: order.StatusUnpaid, CheckoutSession: "cs_x"})

	app, cfg := newTestApp(&fakeProcessor{}, orderRepo)
	e := httptest.New(t, app)

	owner := bearerToken(t, cfg, 8, "bob", "bob@example.com")
	e.GET("/api/orders/1").WithHeader("Authorization", owner).
		Expect().Status(httptest.StatusOK).Body().Contains("cs_x")

	stranger := bearerToken(t, cfg, 9, "eve", "eve@example.com")
	e.GET("/api/orders/1").WithHeader("Authorization", stranger).
		Expect().Status(httptest.StatusNotFound)
}
