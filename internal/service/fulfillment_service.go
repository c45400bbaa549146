package service

import (
	"time"

	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/logger"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/repository"
)

// FulfillmentService 模拟履约推进服务
// 按配置的延迟依次推进 shipped 与 delivered，推进经过与手动推进相同的
// 单调校验，重复触发是幂等空操作。
type FulfillmentService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewFulfillmentService 创建履约服务
func NewFulfillmentService(cfg *config.Config, orderRepo repository.OrderRepository, queueClient *queue.Client) *FulfillmentService {
	return &FulfillmentService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// SimulateProgression 安排订单的模拟履约推进
func (s *FulfillmentService) SimulateProgression(orderNo string) error {
	if orderNo == "" {
		return ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	shippedDelay := time.Duration(s.cfg.Fulfillment.ShippedDelayMS) * time.Millisecond
	deliveredDelay := time.Duration(s.cfg.Fulfillment.DeliveredDelayMS) * time.Millisecond

	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderProgressTick(queue.OrderProgressTickPayload{
			OrderNo: orderNo,
			Stage:   constants.TrackingStageShipped,
		}, shippedDelay); err != nil {
			return err
		}
		return s.queueClient.EnqueueOrderProgressTick(queue.OrderProgressTickPayload{
			OrderNo: orderNo,
			Stage:   constants.TrackingStageDelivered,
		}, deliveredDelay)
	}

	orderService := NewOrderService(s.orderRepo)
	go func() {
		time.Sleep(shippedDelay)
		if err := orderService.AdvanceStage(orderNo, constants.TrackingStageShipped, time.Now()); err != nil {
			logger.Errorw("进程内推进 shipped 失败", "order_no", orderNo, "error", err)
			return
		}
		time.Sleep(deliveredDelay - shippedDelay)
		if err := orderService.AdvanceStage(orderNo, constants.TrackingStageDelivered, time.Now()); err != nil {
			logger.Errorw("进程内推进 delivered 失败", "order_no", orderNo, "error", err)
		}
	}()
	return nil
}
