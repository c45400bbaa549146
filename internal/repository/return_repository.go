package repository

import (
	"errors"

	"github.com/shopease-next/internal/models"

	"gorm.io/gorm"
)

// ReturnRepository 退货申请数据访问接口
type ReturnRepository interface {
	GetByUserAndOrder(userID, orderID uint) (*models.ReturnRequest, error)
	ListByUser(userID uint) ([]models.ReturnRequest, error)
	Create(request *models.ReturnRequest) error
	WithTx(tx *gorm.DB) *GormReturnRepository
}

// GormReturnRepository GORM 实现
type GormReturnRepository struct {
	db *gorm.DB
}

// NewReturnRepository 创建退货申请仓库
func NewReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReturnRepository) WithTx(tx *gorm.DB) *GormReturnRepository {
	if tx == nil {
		return r
	}
	return &GormReturnRepository{db: tx}
}

// GetByUserAndOrder 获取用户对某订单的退货申请
func (r *GormReturnRepository) GetByUserAndOrder(userID, orderID uint) (*models.ReturnRequest, error) {
	var request models.ReturnRequest
	if err := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// ListByUser 获取用户全部退货申请，新单在前
func (r *GormReturnRepository) ListByUser(userID uint) ([]models.ReturnRequest, error) {
	var requests []models.ReturnRequest
	if err := r.db.Where("user_id = ?", userID).Order("id desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Create 创建退货申请
func (r *GormReturnRepository) Create(request *models.ReturnRequest) error {
	return r.db.Create(request).Error
}
