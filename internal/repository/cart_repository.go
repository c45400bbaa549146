package repository

import (
	"errors"
	"time"

	"github.com/shopease-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartLine, error)
	GetByUserAndLine(userID, lineKey uint) (*models.CartLine, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartLine, error)
	MaxLineKey(userID uint) (uint, error)
	Create(line *models.CartLine) error
	UpdateQuantity(id uint, quantity int) error
	DeleteByUserAndLine(userID, lineKey uint) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车行，按行键升序
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Where("user_id = ?", userID).Order("line_key asc").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// GetByUserAndLine 按行键获取购物车行
func (r *GormCartRepository) GetByUserAndLine(userID, lineKey uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.db.Where("user_id = ? AND line_key = ?", userID, lineKey).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// GetByUserAndProduct 按商品获取购物车行
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// MaxLineKey 获取用户当前最大行键，购物车为空时返回 0
func (r *GormCartRepository) MaxLineKey(userID uint) (uint, error) {
	var row struct {
		Max uint
	}
	err := r.db.Model(&models.CartLine{}).
		Select("COALESCE(MAX(line_key), 0) AS max").
		Where("user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.Max, nil
}

// Create 创建购物车行
func (r *GormCartRepository) Create(line *models.CartLine) error {
	return r.db.Create(line).Error
}

// UpdateQuantity 更新购物车行数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartLine{}).Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()}).Error
}

// DeleteByUserAndLine 删除购物车行
// 行上有 user_id+product_id 唯一索引，软删除残留会挡住重新加购，购物车行始终物理删除
func (r *GormCartRepository) DeleteByUserAndLine(userID, lineKey uint) error {
	return r.db.Where("user_id = ? AND line_key = ?", userID, lineKey).Delete(&models.CartLine{}).Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}
