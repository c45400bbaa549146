package repository

import (
	"github.com/shopease-next/internal/models"

	"gorm.io/gorm"
)

// InquiryRepository 联系留言数据访问接口
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	List(filter InquiryListFilter) ([]models.Inquiry, int64, error)
}

// GormInquiryRepository GORM 实现
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository 创建留言仓库
func NewInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// Create 创建留言
func (r *GormInquiryRepository) Create(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// List 留言列表，新留言在前
func (r *GormInquiryRepository) List(filter InquiryListFilter) ([]models.Inquiry, int64, error) {
	query := r.db.Model(&models.Inquiry{})

	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var inquiries []models.Inquiry
	if err := query.Order("id desc").Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}
