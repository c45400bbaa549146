package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（下单后不可变，仅跟踪阶段可推进）
type Order struct {
	ID            uint           `gorm:"primarykey" json:"-"`                                     // 主键
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"id"`                          // 订单编号（对外标识）
	UserID        uint           `gorm:"index;not null" json:"user_id"`                           // 用户ID
	Subtotal      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`   // 商品小计
	Shipping      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping"`   // 运费
	Tax           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`        // 税费
	Total         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`      // 实付总额
	PaymentMethod string         `gorm:"type:varchar(40);not null" json:"payment_method"`         // 支付方式标签
	Street        string         `gorm:"type:varchar(300);not null" json:"street"`                // 收货街道
	City          string         `gorm:"type:varchar(120);not null" json:"city"`                  // 收货城市
	State         string         `gorm:"type:varchar(120);not null" json:"state"`                 // 州/省
	Zip           string         `gorm:"type:varchar(20);not null" json:"zip"`                    // 邮编
	Country       string         `gorm:"type:varchar(120);not null" json:"country"`               // 国家
	Status        string         `gorm:"index;not null" json:"status"`                            // 订单状态标签
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间

	Items    []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // 订单项快照
	Tracking []TrackingStage `gorm:"foreignKey:OrderID" json:"tracking,omitempty"` // 跟踪阶段
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
