package service

import (
	"strings"
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// SubmitReturnInput 退货申请输入
type SubmitReturnInput struct {
	UserID  uint
	OrderNo string
	Reason  string
}

// ReturnService 退货申请服务
type ReturnService struct {
	orderRepo  repository.OrderRepository
	returnRepo repository.ReturnRepository
}

// NewReturnService 创建退货服务
func NewReturnService(orderRepo repository.OrderRepository, returnRepo repository.ReturnRepository) *ReturnService {
	return &ReturnService{
		orderRepo:  orderRepo,
		returnRepo: returnRepo,
	}
}

// EligibleAt 判断订单在指定时刻是否可退
// 条件：delivered 已完成且距送达时间不超过 30 天整。30.0 天仍可退，
// 超过即不可退，边界按秒判定，结果不缓存。
func EligibleAt(order *models.Order, at time.Time) bool {
	if order == nil {
		return false
	}
	delivered := findStage(order.Tracking, constants.TrackingStageDelivered)
	if delivered == nil || !delivered.Completed || delivered.CompletedAt == nil {
		return false
	}
	window := time.Duration(constants.ReturnWindowDays) * 24 * time.Hour
	return at.Sub(*delivered.CompletedAt) <= window
}

// CheckEligibility 查询用户订单当前是否可退
func (s *ReturnService) CheckEligibility(userID uint, orderNo string) (bool, error) {
	order, err := s.ownedOrder(userID, orderNo)
	if err != nil {
		return false, err
	}
	return EligibleAt(order, time.Now()), nil
}

// Submit 提交退货申请
// 同一订单只允许一条申请，通过后快照订单项与总额，状态固定为 pending，
// 之后不自动推进。
func (s *ReturnService) Submit(input SubmitReturnInput) (*models.ReturnRequest, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrInvalidInput
	}
	order, err := s.ownedOrder(input.UserID, input.OrderNo)
	if err != nil {
		return nil, err
	}
	if !EligibleAt(order, time.Now()) {
		return nil, ErrReturnNotEligible
	}

	existing, err := s.returnRepo.GetByUserAndOrder(input.UserID, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReturnAlreadyExists
	}

	items := make(models.JSONArray, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]interface{}{
			"product_id": item.ProductID,
			"name":       item.Name,
			"brand":      item.Brand,
			"price":      item.Price.String(),
			"image":      item.Image,
			"quantity":   item.Quantity,
		})
	}

	request := &models.ReturnRequest{
		UserID:    input.UserID,
		OrderID:   order.ID,
		OrderNo:   order.OrderNo,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    constants.ReturnStatusPending,
		Items:     items,
		Total:     order.Total,
		CreatedAt: time.Now(),
	}
	if err := s.returnRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListByUser 用户退货申请列表
func (s *ReturnService) ListByUser(userID uint) ([]models.ReturnRequest, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.returnRepo.ListByUser(userID)
}

func (s *ReturnService) ownedOrder(userID uint, orderNo string) (*models.Order, error) {
	if userID == 0 || orderNo == "" {
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
