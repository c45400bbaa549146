package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/logger"
	"github.com/shopease-next/internal/provider"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPaymentSettle, c.handleOrderPaymentSettle)
	mux.HandleFunc(queue.TaskOrderProgressTick, c.handleOrderProgressTick)
}

// handleOrderPaymentSettle 模拟支付结算：将订单推进到 processing
// 任务至少投递一次，推进幂等，重复结算不改变已完成的阶段。
func (c *Consumer) handleOrderPaymentSettle(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderPaymentSettlePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payment_settle_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderNo == "" {
		logger.Debugw("worker_payment_settle_skip_empty_order_no")
		return nil
	}
	err := c.OrderService.AdvanceStage(payload.OrderNo, constants.TrackingStageProcessing, time.Now())
	if errors.Is(err, service.ErrOrderNotFound) {
		// 订单已不存在，任务作废即可，重试没有意义
		logger.Debugw("worker_payment_settle_skip_order_missing", "order_no", payload.OrderNo)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_payment_settle_failed", "order_no", payload.OrderNo, "error", err)
		return err
	}
	return nil
}

// handleOrderProgressTick 模拟履约推进：推进 shipped / delivered
func (c *Consumer) handleOrderProgressTick(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderProgressTickPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_progress_tick_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderNo == "" || payload.Stage == "" {
		logger.Debugw("worker_progress_tick_skip_invalid_payload", "order_no", payload.OrderNo, "stage", payload.Stage)
		return nil
	}
	err := c.OrderService.AdvanceStage(payload.OrderNo, payload.Stage, time.Now())
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		logger.Debugw("worker_progress_tick_skip_order_missing", "order_no", payload.OrderNo)
		return nil
	case errors.Is(err, service.ErrTrackingStageUnknown):
		logger.Warnw("worker_progress_tick_skip_unknown_stage", "order_no", payload.OrderNo, "stage", payload.Stage)
		return nil
	case errors.Is(err, service.ErrTrackingOutOfOrder):
		// 前序阶段还没完成，交给重试（结算任务可能尚未执行）
		logger.Debugw("worker_progress_tick_retry_out_of_order", "order_no", payload.OrderNo, "stage", payload.Stage)
		return err
	case err != nil:
		logger.Warnw("worker_progress_tick_failed", "order_no", payload.OrderNo, "stage", payload.Stage, "error", err)
		return err
	}
	return nil
}
