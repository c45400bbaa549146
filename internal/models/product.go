package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（后台管理的商品，静态目录见 internal/catalog）
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name          string         `gorm:"not null;index" json:"name"`                                  // 名称
	Brand         string         `gorm:"type:varchar(100);index" json:"brand"`                        // 品牌
	Category      string         `gorm:"type:varchar(100);index" json:"category"`                     // 分类标签
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`          // 单价
	OriginalPrice *Money         `gorm:"type:decimal(20,2)" json:"original_price,omitempty"`          // 原价（可选）
	Discount      int            `gorm:"default:0" json:"discount,omitempty"`                         // 折扣百分比（可选）
	Image         string         `gorm:"type:varchar(500)" json:"image"`                              // 主图
	Images        StringArray    `gorm:"type:json" json:"images"`                                     // 图片数组
	Description   string         `gorm:"type:text" json:"description"`                                // 描述
	Rating        float64        `gorm:"default:0" json:"rating"`                                     // 评分
	Reviews       int            `gorm:"default:0" json:"reviews"`                                    // 评论数
	InStock       bool           `gorm:"default:true;index" json:"in_stock"`                          // 是否有货
	Features      StringArray    `gorm:"type:json" json:"features"`                                   // 特性标签
	Specifications JSON          `gorm:"type:json" json:"specifications"`                             // 规格映射
	Tags          StringArray    `gorm:"type:json" json:"tags"`                                       // 标签数组
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
