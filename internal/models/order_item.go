package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表（下单时的价格冻结快照）
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"-"`                                 // 主键
	OrderID   uint           `gorm:"index;not null" json:"-"`                             // 订单ID
	ProductID uint           `gorm:"index;not null" json:"product_id"`                    // 商品ID
	Name      string         `gorm:"not null" json:"name"`                                // 名称快照
	Brand     string         `gorm:"type:varchar(100)" json:"brand"`                      // 品牌快照
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 单价快照
	Image     string         `gorm:"type:varchar(500)" json:"image"`                      // 图片快照
	Quantity  int            `gorm:"not null" json:"quantity"`                            // 数量
	CreatedAt time.Time      `gorm:"index" json:"-"`                                      // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
