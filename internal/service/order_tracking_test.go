package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"

	"gorm.io/gorm"
)

// seedOrder 写入一个 confirmed 状态的订单及其四个跟踪阶段行
func seedOrder(t *testing.T, db *gorm.DB, userID uint, orderNo string) *models.Order {
	t.Helper()
	now := time.Now()
	order := &models.Order{
		OrderNo:       orderNo,
		UserID:        userID,
		Subtotal:      models.NewMoneyFromFloat(10),
		Shipping:      models.NewMoneyFromFloat(9.99),
		Tax:           models.NewMoneyFromFloat(0.80),
		Total:         models.NewMoneyFromFloat(20.79),
		PaymentMethod: constants.PaymentMethodCard,
		Street:        "1 Main St",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62701",
		Country:       "USA",
		Status:        constants.OrderStatusConfirmed,
		CreatedAt:     now,
	}
	items := []models.OrderItem{{ProductID: 101, Name: "商品A", Price: models.NewMoneyFromFloat(10), Quantity: 1}}
	if err := repository.NewOrderRepository(db).Create(order, items, newTrackingStages(now)); err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestAdvanceStageInOrder(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, 1, "SE-T1")

	if err := svc.AdvanceStage("SE-T1", constants.TrackingStageProcessing, time.Now()); err != nil {
		t.Fatalf("advance processing failed: %v", err)
	}
	if err := svc.AdvanceStage("SE-T1", constants.TrackingStageShipped, time.Now()); err != nil {
		t.Fatalf("advance shipped failed: %v", err)
	}

	order, err := svc.GetByOrderNo("SE-T1")
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.Status != constants.OrderStatusShipped {
		t.Fatalf("expected status shipped, got %s", order.Status)
	}
	if stage := svc.ActiveStage(order); stage != constants.TrackingStageDelivered {
		t.Fatalf("expected active stage delivered, got %s", stage)
	}
}

func TestAdvanceStageRejectsSkipping(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, 1, "SE-T2")

	// processing 未完成时不允许直接推进 shipped 或 delivered
	if err := svc.AdvanceStage("SE-T2", constants.TrackingStageShipped, time.Now()); !errors.Is(err, ErrTrackingOutOfOrder) {
		t.Fatalf("expected ErrTrackingOutOfOrder, got %v", err)
	}
	if err := svc.AdvanceStage("SE-T2", constants.TrackingStageDelivered, time.Now()); !errors.Is(err, ErrTrackingOutOfOrder) {
		t.Fatalf("expected ErrTrackingOutOfOrder, got %v", err)
	}

	order, _ := svc.GetByOrderNo("SE-T2")
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status should stay confirmed, got %s", order.Status)
	}
}

func TestAdvanceStageIdempotent(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, 1, "SE-T3")

	first := time.Now().Add(-time.Hour)
	if err := svc.AdvanceStage("SE-T3", constants.TrackingStageProcessing, first); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	// 重复推进是空操作，不覆盖原完成时间
	if err := svc.AdvanceStage("SE-T3", constants.TrackingStageProcessing, time.Now()); err != nil {
		t.Fatalf("repeat advance should be no-op, got %v", err)
	}

	order, _ := svc.GetByOrderNo("SE-T3")
	processing := findStage(order.Tracking, constants.TrackingStageProcessing)
	if processing == nil || processing.CompletedAt == nil {
		t.Fatal("processing stage missing timestamp")
	}
	if processing.CompletedAt.Sub(first).Abs() > time.Second {
		t.Fatalf("timestamp overwritten: %v != %v", processing.CompletedAt, first)
	}
}

func TestAdvanceStageUnknown(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, 1, "SE-T4")

	if err := svc.AdvanceStage("SE-T4", "teleported", time.Now()); !errors.Is(err, ErrTrackingStageUnknown) {
		t.Fatalf("expected ErrTrackingStageUnknown, got %v", err)
	}
	if err := svc.AdvanceStage("SE-NOPE", constants.TrackingStageProcessing, time.Now()); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestStatusForStagesProjection(t *testing.T) {
	now := time.Now()
	stages := newTrackingStages(now)
	if got := statusForStages(stages); got != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got)
	}

	for i := range stages {
		stages[i].Completed = true
		stages[i].CompletedAt = &now
	}
	if got := statusForStages(stages); got != constants.OrderStatusDelivered {
		t.Fatalf("expected delivered, got %s", got)
	}
	if got := activeStage(stages); got != "" {
		t.Fatalf("expected no active stage, got %s", got)
	}
}

func TestGetForUserScoping(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, 1, "SE-T5")

	if _, err := svc.GetForUser("SE-T5", 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign user, got %v", err)
	}
	order, err := svc.GetForUser("SE-T5", 1)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if len(order.Items) != 1 || len(order.Tracking) != 4 {
		t.Fatalf("detail incomplete: %d items, %d stages", len(order.Items), len(order.Tracking))
	}
}
