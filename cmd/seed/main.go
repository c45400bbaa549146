package main

import (
	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/logger"
	"github.com/shopease-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 将内置目录商品写入数据库，已存在的跳过
	created, skipped := 0, 0
	for _, item := range catalog.Default().All() {
		var existing models.Product
		if err := models.DB.Where("id = ?", item.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		product := catalogProductToModel(item)
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %d (%s): %v", item.ID, item.Name, err)
			continue
		}
		stdLog.Printf("Created product: %d %s", product.ID, product.Name)
		created++
	}
	stdLog.Printf("Seed finished: %d created, %d skipped", created, skipped)
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
