package service

import (
	"time"

	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// OrderService 订单查询与跟踪推进服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(filter)
}

// GetForUser 用户订单详情，仅返回归属本人的订单
func (s *OrderService) GetForUser(orderNo string, userID uint) (*models.Order, error) {
	if orderNo == "" || userID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 管理端订单列表（跨全部用户）
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetByOrderNo 管理端订单详情
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	if orderNo == "" {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// AdvanceStage 推进订单跟踪阶段
// 阶段已完成时幂等返回（不覆盖原完成时间），前置阶段未完成时拒绝；
// 推进成功后同步刷新订单状态标签。
func (s *OrderService) AdvanceStage(orderNo, stage string, at time.Time) error {
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

	alreadyDone, err := checkAdvance(order.Tracking, stage)
	if err != nil {
		return err
	}
	if alreadyDone {
		return nil
	}
	if err := s.orderRepo.CompleteStage(order.ID, stage, at); err != nil {
		return err
	}

	target := findStage(order.Tracking, stage)
	completedAt := at
	target.Completed = true
	target.CompletedAt = &completedAt
	return s.orderRepo.UpdateStatus(order.ID, statusForStages(order.Tracking))
}

// ActiveStage 返回订单当前待完成的阶段名
func (s *OrderService) ActiveStage(order *models.Order) string {
	if order == nil {
		return ""
	}
	return activeStage(order.Tracking)
}
