package service

import (
	"context"
	"testing"

	"github.com/example/gocheckout/internal/datamodels/order"
)

func seedOrders() *mockOrderRepo {
	repo := &mockOrderRepo{}
	_ = repo.Create(context.Background(), &order.Order{UserID: 1, ProductID: 1, Total: 19.99, Status: order.StatusUnpaid, CheckoutSession: "cs_a"})
	_ = repo.Create(context.Background(), &order.Order{UserID: 1, ProductID: 2, Total: 49.50, Status: order.StatusPaid, CheckoutSession: "cs_b"})
	_ = repo.Create(context.Background(), &order.Order{UserID: 2, ProductID: 1, Total: 19.99, Status: order.StatusUnpaid, CheckoutSession: "cs_c"})
	return repo
}

func TestListForUser_ScopedToOwner(t *testing.T) {
	repo := seedOrders()
	svc := NewOrderService(repo)

	list, err := svc.ListForUser(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders for user 1, got %d", len(list))
	}
	for _, o := range list {
		if o.UserID != 1 {
			t.Errorf("got order of user %d, want only user 1", o.UserID)
		}
	}
}

func TestListForUser_KeywordUsesSearch(t *testing.T) {
	repo := seedOrders()
	svc := NewOrderService(repo)

	if _, err := svc.ListForUser(context.Background(), 1, "paid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastKeyword != "paid" {
		t.Errorf("expected search with keyword %q, got %q", "paid", repo.lastKeyword)
	}
}

func TestGetForUser_OtherUsersOrderHidden(t *testing.T) {
	repo := seedOrders()
	svc := NewOrderService(repo)

	// 自己的订单
	o, err := svc.GetForUser(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.CheckoutSession != "cs_a" {
		t.Errorf("expected cs_a, got %s", o.CheckoutSession)
	}

	// 猜到了别人的订单 ID 也只能拿到 not found
	if _, err := svc.GetForUser(context.Background(), 3, 1); err == nil {
		t.Error("expected not found for another user's order")
	}
}
