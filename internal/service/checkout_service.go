package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/logger"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 结账定价规则
var (
	freeShippingThreshold = decimal.NewFromInt(50)          // 小计超过此值免运费
	shippingFee           = decimal.NewFromFloat(9.99)      // 标准运费
	taxRate               = decimal.NewFromFloat(0.08)      // 税率（按小计计税）
)

// ShippingAddress 收货地址输入
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// PlaceOrderInput 下单输入
// LineKey 非空时只结算该购物车行，否则结算整个购物车。
type PlaceOrderInput struct {
	UserID        uint
	LineKey       *uint
	PaymentMethod string
	Address       ShippingAddress
}

// CheckoutService 结账编排服务
type CheckoutService struct {
	cfg         *config.Config
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(cfg *config.Config, cartRepo repository.CartRepository, orderRepo repository.OrderRepository, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		cfg:         cfg,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// PlaceOrder 下单
// 校验全部通过后在单个事务内完成订单、订单项、跟踪阶段写入与购物车消费，
// 事务提交后再安排延迟的支付结算任务（队列未启用时进程内兜底）。
func (s *CheckoutService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if err := validatePaymentMethod(input.PaymentMethod); err != nil {
		return nil, err
	}
	if err := validateAddress(input.Address); err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(input)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	now := time.Now()
	order := &models.Order{
		OrderNo:       generateOrderNo(),
		UserID:        input.UserID,
		Subtotal:      models.NewMoneyFromDecimal(subtotal),
		Shipping:      models.NewMoneyFromDecimal(shipping),
		Tax:           models.NewMoneyFromDecimal(tax),
		Total:         models.NewMoneyFromDecimal(total),
		PaymentMethod: input.PaymentMethod,
		Street:        strings.TrimSpace(input.Address.Street),
		City:          strings.TrimSpace(input.Address.City),
		State:         strings.TrimSpace(input.Address.State),
		Zip:           strings.TrimSpace(input.Address.Zip),
		Country:       strings.TrimSpace(input.Address.Country),
		Status:        constants.OrderStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	stages := newTrackingStages(now)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items, stages); err != nil {
			return err
		}
		cartRepo := s.cartRepo.WithTx(tx)
		if input.LineKey != nil {
			return cartRepo.DeleteByUserAndLine(input.UserID, *input.LineKey)
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	s.scheduleSettlement(order.OrderNo)
	return order, nil
}

// scheduleSettlement 安排模拟支付结算
// 任务至少投递一次，推进本身幂等；队列未启用时进程内延迟执行同样的推进。
func (s *CheckoutService) scheduleSettlement(orderNo string) {
	delay := time.Duration(s.cfg.Checkout.PaymentDelayMS) * time.Millisecond
	if s.queueClient.Enabled() {
		payload := queue.OrderPaymentSettlePayload{OrderNo: orderNo}
		if err := s.queueClient.EnqueueOrderPaymentSettle(payload, delay); err != nil {
			logger.Errorw("推送支付结算任务失败", "order_no", orderNo, "error", err)
		}
		return
	}
	orderService := NewOrderService(s.orderRepo)
	go func() {
		time.Sleep(delay)
		if err := orderService.AdvanceStage(orderNo, constants.TrackingStageProcessing, time.Now()); err != nil {
			logger.Errorw("进程内支付结算失败", "order_no", orderNo, "error", err)
		}
	}()
}

// resolveLines 解析本次结算覆盖的购物车行
func (s *CheckoutService) resolveLines(input PlaceOrderInput) ([]models.CartLine, error) {
	if input.LineKey != nil {
		line, err := s.cartRepo.GetByUserAndLine(input.UserID, *input.LineKey)
		if err != nil {
			return nil, err
		}
		if line == nil {
			return nil, ErrCartLineNotFound
		}
		return []models.CartLine{*line}, nil
	}
	lines, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	return lines, nil
}

func validatePaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return ErrPaymentMethodRequired
	}
	switch method {
	case constants.PaymentMethodCard, constants.PaymentMethodPaypal,
		constants.PaymentMethodCOD, constants.PaymentMethodApplePay:
		return nil
	}
	return ErrPaymentMethodInvalid
}

func validateAddress(addr ShippingAddress) error {
	if strings.TrimSpace(addr.Street) == "" ||
		strings.TrimSpace(addr.City) == "" ||
		strings.TrimSpace(addr.State) == "" ||
		strings.TrimSpace(addr.Zip) == "" ||
		strings.TrimSpace(addr.Country) == "" {
		return ErrAddressIncomplete
	}
	if strings.TrimSpace(addr.Country) == constants.CountryIndia {
		state := strings.TrimSpace(addr.State)
		for _, s := range constants.IndianStates {
			if s == state {
				return nil
			}
		}
		return ErrStateInvalid
	}
	return nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("SE%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
