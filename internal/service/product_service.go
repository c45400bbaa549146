package service

import (
	"strings"

	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name           string
	Brand          string
	Category       string
	Price          models.Money
	OriginalPrice  *models.Money
	Discount       int
	Image          string
	Images         []string
	Description    string
	InStock        bool
	Features       []string
	Specifications map[string]interface{}
	Tags           []string
}

// ProductService 商品服务
// 商品表由后台管理，表为空时前台列表回退到内置目录。
type ProductService struct {
	productRepo repository.ProductRepository
	catalog     *catalog.Store
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, store *catalog.Store) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		catalog:     store,
	}
}

// List 前台商品列表
// 商品表有数据时走数据库过滤，否则在内置目录上做内存过滤。
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	if total > 0 {
		return products, total, nil
	}

	items := s.catalog.List(catalog.Filter{
		Category: filter.Category,
		Brand:    filter.Brand,
		Search:   filter.Search,
	})
	fallback := make([]models.Product, 0, len(items))
	for _, item := range items {
		fallback = append(fallback, catalogProductToModel(item))
	}
	return fallback, int64(len(fallback)), nil
}

// Get 前台商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}
	item, ok := s.catalog.ByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	model := catalogProductToModel(item)
	return &model, nil
}

// Facets 分类与品牌聚合（来自内置目录）
func (s *ProductService) Facets() ([]catalog.Category, []string) {
	return s.catalog.Categories(), s.catalog.Brands()
}

// Create 后台创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price.IsNegative() {
		return nil, ErrInvalidInput
	}
	product := &models.Product{
		Name:           strings.TrimSpace(input.Name),
		Brand:          strings.TrimSpace(input.Brand),
		Category:       strings.TrimSpace(input.Category),
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Discount:       input.Discount,
		Image:          input.Image,
		Images:         input.Images,
		Description:    input.Description,
		InStock:        input.InStock,
		Features:       input.Features,
		Specifications: input.Specifications,
		Tags:           input.Tags,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 后台删除商品
func (s *ProductService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func catalogProductToModel(item catalog.Product) models.Product {
	specs := make(models.JSON, len(item.Specifications))
	for k, v := range item.Specifications {
		specs[k] = v
	}
	var originalPrice *models.Money
	if item.OriginalPrice > 0 {
		p := models.NewMoneyFromFloat(item.OriginalPrice)
		originalPrice = &p
	}
	return models.Product{
		ID:             item.ID,
		Name:           item.Name,
		Brand:          item.Brand,
		Category:       item.Category,
		Price:          models.NewMoneyFromFloat(item.Price),
		OriginalPrice:  originalPrice,
		Discount:       item.Discount,
		Image:          item.Image,
		Images:         item.Images,
		Description:    item.Description,
		Rating:         item.Rating,
		Reviews:        item.Reviews,
		InStock:        item.InStock,
		Features:       item.Features,
		Specifications: specs,
		Tags:           item.Tags,
	}
}
