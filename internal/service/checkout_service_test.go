package service

import (
	"errors"
	"testing"

	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/repository"

	"gorm.io/gorm"
)

func newTestCheckoutService(db *gorm.DB) *CheckoutService {
	cfg := testConfig()
	// 延迟拉长到测试窗口之外，避免进程内结算协程干扰断言
	cfg.Checkout.PaymentDelayMS = 60000
	client, _ := queue.NewClient(&config.QueueConfig{Enabled: false})
	return NewCheckoutService(cfg, repository.NewCartRepository(db), repository.NewOrderRepository(db), client)
}

func validAddress() ShippingAddress {
	return ShippingAddress{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62701",
		Country: "USA",
	}
}

func TestPlaceOrderTotals(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newTestCartService(db)
	checkout := newTestCheckoutService(db)

	// 小计 55：29.99 + 25.01
	seedCartLine(t, db, 1, 1, 101, "商品A", 29.99, 1)
	seedCartLine(t, db, 1, 2, 102, "商品B", 25.01, 1)

	order, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		PaymentMethod: constants.PaymentMethodCard,
		Address:       validAddress(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Subtotal.String() != "55.00" {
		t.Fatalf("expected subtotal 55.00, got %s", order.Subtotal.String())
	}
	if order.Shipping.String() != "0.00" {
		t.Fatalf("expected free shipping above 50, got %s", order.Shipping.String())
	}
	if order.Tax.String() != "4.40" {
		t.Fatalf("expected tax 4.40, got %s", order.Tax.String())
	}
	if order.Total.String() != "59.40" {
		t.Fatalf("expected total 59.40, got %s", order.Total.String())
	}

	// 整单结算后购物车清空
	summary, _ := cartSvc.Summary(1)
	if len(summary.Lines) != 0 {
		t.Fatalf("cart should be empty after full checkout, got %d lines", len(summary.Lines))
	}
}

func TestPlaceOrderShippingAtThreshold(t *testing.T) {
	db := setupServiceTest(t)
	checkout := newTestCheckoutService(db)

	// 小计恰为 50 仍收运费，免运费需严格大于 50
	seedCartLine(t, db, 1, 1, 101, "商品A", 50.00, 1)

	order, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		PaymentMethod: constants.PaymentMethodPaypal,
		Address:       validAddress(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Shipping.String() != "9.99" {
		t.Fatalf("expected shipping 9.99 at threshold, got %s", order.Shipping.String())
	}
	if order.Tax.String() != "4.00" {
		t.Fatalf("expected tax 4.00, got %s", order.Tax.String())
	}
	if order.Total.String() != "63.99" {
		t.Fatalf("expected total 63.99, got %s", order.Total.String())
	}
}

func TestPlaceOrderSingleLineConsumesOnlyThatLine(t *testing.T) {
	db := setupServiceTest(t)
	cartSvc := newTestCartService(db)
	checkout := newTestCheckoutService(db)

	seedCartLine(t, db, 1, 1, 101, "商品A", 10, 1)
	seedCartLine(t, db, 1, 2, 102, "商品B", 20, 2)

	lineKey := uint(2)
	order, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		LineKey:       &lineKey,
		PaymentMethod: constants.PaymentMethodCOD,
		Address:       validAddress(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	loaded, err := repository.NewOrderRepository(db).GetByOrderNo(order.OrderNo)
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].ProductID != 102 {
		t.Fatalf("expected only product 102 in order, got %+v", loaded.Items)
	}
	if loaded.Subtotal.String() != "40.00" {
		t.Fatalf("expected subtotal 40.00, got %s", loaded.Subtotal.String())
	}

	// 另一行保留在购物车
	summary, _ := cartSvc.Summary(1)
	if len(summary.Lines) != 1 || summary.Lines[0].LineKey != 1 {
		t.Fatalf("expected line 1 to survive, got %+v", summary.Lines)
	}
}

func TestPlaceOrderCreatesTrackingRows(t *testing.T) {
	db := setupServiceTest(t)
	checkout := newTestCheckoutService(db)

	seedCartLine(t, db, 1, 1, 101, "商品A", 10, 1)

	order, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		PaymentMethod: constants.PaymentMethodApplePay,
		Address:       validAddress(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", order.Status)
	}

	loaded, err := repository.NewOrderRepository(db).GetByOrderNo(order.OrderNo)
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if len(loaded.Tracking) != 4 {
		t.Fatalf("expected 4 tracking rows, got %d", len(loaded.Tracking))
	}
	for _, stage := range loaded.Tracking {
		completed := stage.Stage == constants.TrackingStageConfirmed
		if stage.Completed != completed {
			t.Fatalf("stage %s completed=%v, want %v", stage.Stage, stage.Completed, completed)
		}
		if completed && stage.CompletedAt == nil {
			t.Fatal("confirmed stage missing timestamp")
		}
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	db := setupServiceTest(t)
	checkout := newTestCheckoutService(db)

	seedCartLine(t, db, 1, 1, 101, "商品A", 10, 1)

	if _, err := checkout.PlaceOrder(PlaceOrderInput{UserID: 1, Address: validAddress()}); !errors.Is(err, ErrPaymentMethodRequired) {
		t.Fatalf("expected ErrPaymentMethodRequired, got %v", err)
	}
	if _, err := checkout.PlaceOrder(PlaceOrderInput{UserID: 1, PaymentMethod: "bitcoin", Address: validAddress()}); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("expected ErrPaymentMethodInvalid, got %v", err)
	}

	addr := validAddress()
	addr.Zip = ""
	if _, err := checkout.PlaceOrder(PlaceOrderInput{UserID: 1, PaymentMethod: constants.PaymentMethodCard, Address: addr}); !errors.Is(err, ErrAddressIncomplete) {
		t.Fatalf("expected ErrAddressIncomplete, got %v", err)
	}

	// 印度地址州必须取自枚举
	india := validAddress()
	india.Country = constants.CountryIndia
	india.State = "Atlantis"
	if _, err := checkout.PlaceOrder(PlaceOrderInput{UserID: 1, PaymentMethod: constants.PaymentMethodCard, Address: india}); !errors.Is(err, ErrStateInvalid) {
		t.Fatalf("expected ErrStateInvalid, got %v", err)
	}
	india.State = "Kerala"
	if _, err := checkout.PlaceOrder(PlaceOrderInput{UserID: 1, PaymentMethod: constants.PaymentMethodCard, Address: india}); err != nil {
		t.Fatalf("valid Indian state rejected: %v", err)
	}

	// 校验失败不产生任何写入
	var count int64
	db.Table("orders").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 order, got %d", count)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupServiceTest(t)
	checkout := newTestCheckoutService(db)

	if _, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		PaymentMethod: constants.PaymentMethodCard,
		Address:       validAddress(),
	}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	lineKey := uint(9)
	if _, err := checkout.PlaceOrder(PlaceOrderInput{
		UserID:        1,
		LineKey:       &lineKey,
		PaymentMethod: constants.PaymentMethodCard,
		Address:       validAddress(),
	}); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("expected ErrCartLineNotFound, got %v", err)
	}
}
