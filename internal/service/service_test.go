package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupServiceTest 打开内存库并迁移全部模型，models.DB 指向测试库供事务使用
func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.TrackingStage{},
		&models.ReturnRequest{},
		&models.Inquiry{},
	); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	prev := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prev })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Checkout: config.CheckoutConfig{
			PaymentDelayMS: 0,
		},
		Fulfillment: config.FulfillmentConfig{
			ShippedDelayMS:   0,
			DeliveredDelayMS: 0,
		},
	}
}

// seedAdmin 直接写入一个管理员账号
func seedAdmin(t *testing.T, db *gorm.DB, email, passwordHash string) *models.User {
	t.Helper()
	admin := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  "管理员",
		Role:         constants.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
	return admin
}

// seedCartLine 直接写入一条购物车行
func seedCartLine(t *testing.T, db *gorm.DB, userID, lineKey, productID uint, name string, price float64, quantity int) {
	t.Helper()
	line := &models.CartLine{
		UserID:    userID,
		LineKey:   lineKey,
		ProductID: productID,
		Name:      name,
		Price:     models.NewMoneyFromFloat(price),
		Quantity:  quantity,
	}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("seed cart line failed: %v", err)
	}
}

func newTestCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		catalog.Default(),
	)
}
