package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopease-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	return NewCartRepository(db), db
}

func TestMaxLineKeyEmptyCart(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	max, err := repo.MaxLineKey(1)
	if err != nil {
		t.Fatalf("max line key failed: %v", err)
	}
	if max != 0 {
		t.Fatalf("expected 0 for empty cart, got %d", max)
	}
}

func TestMaxLineKeySkipsOtherUsers(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)

	lines := []models.CartLine{
		{UserID: 1, LineKey: 1, ProductID: 1, Name: "a", Quantity: 1},
		{UserID: 1, LineKey: 3, ProductID: 2, Name: "b", Quantity: 1},
		{UserID: 2, LineKey: 9, ProductID: 1, Name: "a", Quantity: 1},
	}
	if err := db.Create(&lines).Error; err != nil {
		t.Fatalf("seed cart lines failed: %v", err)
	}

	max, err := repo.MaxLineKey(1)
	if err != nil {
		t.Fatalf("max line key failed: %v", err)
	}
	if max != 3 {
		t.Fatalf("expected 3, got %d", max)
	}
}

func TestDeleteThenReAddSameProduct(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	first := &models.CartLine{UserID: 1, LineKey: 1, ProductID: 5, Name: "x", Quantity: 2}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create line failed: %v", err)
	}
	if err := repo.DeleteByUserAndLine(1, 1); err != nil {
		t.Fatalf("delete line failed: %v", err)
	}

	// 物理删除后同商品可重新加购，不触发唯一索引冲突
	again := &models.CartLine{UserID: 1, LineKey: 2, ProductID: 5, Name: "x", Quantity: 1}
	if err := repo.Create(again); err != nil {
		t.Fatalf("re-add after delete failed: %v", err)
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].LineKey != 2 {
		t.Fatalf("unexpected cart after re-add: %+v", lines)
	}
}
