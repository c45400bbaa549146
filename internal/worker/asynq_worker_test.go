package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/provider"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/repository"
	"github.com/shopease-next/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupWorkerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.TrackingStage{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })

	consumer := NewConsumer(&provider.Container{
		OrderService: service.NewOrderService(repository.NewOrderRepository(db)),
	})
	return consumer, db
}

func seedWorkerOrder(t *testing.T, db *gorm.DB, orderNo string) {
	t.Helper()
	now := time.Now()
	order := &models.Order{
		OrderNo:       orderNo,
		UserID:        1,
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
	stages := make([]models.TrackingStage, 0, len(constants.TrackingStages))
	for _, name := range constants.TrackingStages {
		stage := models.TrackingStage{Stage: name}
		if name == constants.TrackingStageConfirmed {
			completedAt := now
			stage.Completed = true
			stage.CompletedAt = &completedAt
		}
		stages = append(stages, stage)
	}
	if err := repository.NewOrderRepository(db).Create(order, items, stages); err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
}

func settleTask(t *testing.T, orderNo string) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(queue.OrderPaymentSettlePayload{OrderNo: orderNo})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskOrderPaymentSettle, body)
}

func tickTask(t *testing.T, orderNo, stage string) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(queue.OrderProgressTickPayload{OrderNo: orderNo, Stage: stage})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskOrderProgressTick, body)
}

func TestHandleOrderPaymentSettle(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	seedWorkerOrder(t, db, "SE-W1")

	if err := consumer.handleOrderPaymentSettle(context.Background(), settleTask(t, "SE-W1")); err != nil {
		t.Fatalf("settle failed: %v", err)
	}

	order, err := consumer.OrderService.GetByOrderNo("SE-W1")
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status processing, got %s", order.Status)
	}

	// 重复投递不改变已完成的阶段
	if err := consumer.handleOrderPaymentSettle(context.Background(), settleTask(t, "SE-W1")); err != nil {
		t.Fatalf("second settle failed: %v", err)
	}
	order, err = consumer.OrderService.GetByOrderNo("SE-W1")
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status unchanged, got %s", order.Status)
	}
}

func TestHandleOrderPaymentSettleMissingOrder(t *testing.T) {
	consumer, _ := setupWorkerTest(t)

	// 订单不存在时任务作废，不触发重试
	if err := consumer.handleOrderPaymentSettle(context.Background(), settleTask(t, "SE-NOPE")); err != nil {
		t.Fatalf("expected nil for missing order, got %v", err)
	}
}

func TestHandleOrderProgressTick(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	seedWorkerOrder(t, db, "SE-W2")

	// 结算未执行前推进 shipped 应返回错误交给重试
	err := consumer.handleOrderProgressTick(context.Background(), tickTask(t, "SE-W2", constants.TrackingStageShipped))
	if !errors.Is(err, service.ErrTrackingOutOfOrder) {
		t.Fatalf("expected out-of-order error, got %v", err)
	}

	if err := consumer.handleOrderPaymentSettle(context.Background(), settleTask(t, "SE-W2")); err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	if err := consumer.handleOrderProgressTick(context.Background(), tickTask(t, "SE-W2", constants.TrackingStageShipped)); err != nil {
		t.Fatalf("tick shipped failed: %v", err)
	}
	if err := consumer.handleOrderProgressTick(context.Background(), tickTask(t, "SE-W2", constants.TrackingStageDelivered)); err != nil {
		t.Fatalf("tick delivered failed: %v", err)
	}

	order, err := consumer.OrderService.GetByOrderNo("SE-W2")
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.Status != constants.OrderStatusDelivered {
		t.Fatalf("expected status delivered, got %s", order.Status)
	}
}

func TestHandleOrderProgressTickUnknownStage(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	seedWorkerOrder(t, db, "SE-W3")

	// 未知阶段直接丢弃，不返回错误
	if err := consumer.handleOrderProgressTick(context.Background(), tickTask(t, "SE-W3", "teleported")); err != nil {
		t.Fatalf("expected nil for unknown stage, got %v", err)
	}
}
