package service

import (
	"errors"
	"testing"

	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"

	"gorm.io/gorm"
)

func newTestProductService(db *gorm.DB) *ProductService {
	return NewProductService(repository.NewProductRepository(db), catalog.Default())
}

func TestProductListFallsBackToCatalog(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	// 商品表为空时回退到内置目录
	products, total, err := svc.List(repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 8 || len(products) != 8 {
		t.Fatalf("expected 8 catalog products, got %d", total)
	}

	products, total, err = svc.List(repository.ProductListFilter{Category: "clothing"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 clothing products, got %d", total)
	}
}

func TestProductAdminCreateAndDelete(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	product, err := svc.Create(CreateProductInput{
		Name:     "Wireless Mouse",
		Brand:    "GameTech",
		Category: "electronics",
		Price:    models.NewMoneyFromFloat(49.99),
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 表里有数据后列表走数据库
	products, total, err := svc.List(repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || products[0].Name != "Wireless Mouse" {
		t.Fatalf("expected created product only, got %d", total)
	}

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on repeat delete, got %v", err)
	}
}

func TestProductCreateValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	if _, err := svc.Create(CreateProductInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserSearchCaseInsensitive(t *testing.T) {
	db := setupServiceTest(t)
	authSvc := newTestAuthService(db)
	userSvc := NewUserService(repository.NewUserRepository(db))

	if _, err := authSvc.Register(RegisterInput{Email: "frank@example.com", Password: "secret123", DisplayName: "Frank Ocean"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := authSvc.Register(RegisterInput{Email: "grace@example.com", Password: "secret123", DisplayName: "Grace"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	users, total, err := userSvc.Search(repository.UserListFilter{Keyword: "FRANK"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || users[0].Email != "frank@example.com" {
		t.Fatalf("expected frank only, got %d", total)
	}

	// 子串同时匹配昵称与邮箱
	_, total, err = userSvc.Search(repository.UserListFilter{Keyword: "example.com"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches, got %d", total)
	}
}

func TestInquirySubmit(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewInquiryService(repository.NewInquiryRepository(db))

	inquiry, err := svc.Submit(SubmitInquiryInput{Name: "游客", Email: "guest@example.com", Message: "请问什么时候补货？"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if inquiry.UserID != 0 {
		t.Fatalf("guest inquiry should have user id 0, got %d", inquiry.UserID)
	}

	if _, err := svc.Submit(SubmitInquiryInput{Name: "x", Email: "bad-email", Message: "hi"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}
	if _, err := svc.Submit(SubmitInquiryInput{Name: "", Email: "a@b.com", Message: "hi"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	inquiries, total, err := svc.List(repository.InquiryListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || inquiries[0].Email != "guest@example.com" {
		t.Fatalf("unexpected inquiry list: %d", total)
	}
}
