package service

import (
	"time"

	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// CartSummary 购物车汇总（用于响应）
type CartSummary struct {
	Lines []models.CartLine `json:"items"`
	Count int               `json:"count"`
	Total models.Money      `json:"total"`
}

// AddCartLineInput 加购输入
type AddCartLineInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	catalog     *catalog.Store
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, store *catalog.Store) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		catalog:     store,
	}
}

// resolveProduct 解析商品，先查数据库，查不到时回退到内置目录
func (s *CartService) resolveProduct(productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}
	item, ok := s.catalog.ByID(productID)
	if !ok {
		return nil, nil
	}
	return &models.Product{
		ID:    item.ID,
		Name:  item.Name,
		Brand: item.Brand,
		Price: models.NewMoneyFromFloat(item.Price),
		Image: item.Image,
	}, nil
}

// Summary 获取用户购物车汇总，行按行键升序
func (s *CartService) Summary(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	lines, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{Lines: lines}
	total := models.NewMoney()
	for _, line := range lines {
		summary.Count += line.Quantity
		total = total.Add(line.Price.MulInt(line.Quantity))
	}
	summary.Total = total
	return summary, nil
}

// AddLine 加入购物车
// 同一商品已在购物车时叠加数量，否则分配新行键（当前最大行键 + 1，空购物车从 1 开始）。
// 名称与价格在加入时快照，之后不随目录变更。
func (s *CartService) AddLine(input AddCartLineInput) error {
	if input.UserID == 0 || input.ProductID == 0 {
		return ErrInvalidInput
	}
	if input.Quantity < 1 {
		return ErrInvalidQuantity
	}
	product, err := s.resolveProduct(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	existing, err := s.cartRepo.GetByUserAndProduct(input.UserID, input.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+input.Quantity)
	}

	maxKey, err := s.cartRepo.MaxLineKey(input.UserID)
	if err != nil {
		return err
	}
	now := time.Now()
	line := &models.CartLine{
		UserID:    input.UserID,
		LineKey:   maxKey + 1,
		ProductID: input.ProductID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Create(line)
}

// UpdateQuantity 覆盖购物车行数量，小于 1 的目标值直接忽略
func (s *CartService) UpdateQuantity(userID, lineKey uint, quantity int) error {
	if userID == 0 || lineKey == 0 {
		return ErrInvalidInput
	}
	if quantity < 1 {
		return nil
	}
	line, err := s.cartRepo.GetByUserAndLine(userID, lineKey)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrCartLineNotFound
	}
	return s.cartRepo.UpdateQuantity(line.ID, quantity)
}

// RemoveLine 删除购物车行
func (s *CartService) RemoveLine(userID, lineKey uint) error {
	if userID == 0 || lineKey == 0 {
		return ErrInvalidInput
	}
	line, err := s.cartRepo.GetByUserAndLine(userID, lineKey)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrCartLineNotFound
	}
	return s.cartRepo.DeleteByUserAndLine(userID, lineKey)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
