package models

import (
	"time"

	"gorm.io/gorm"
)

// ReturnRequest 退货申请表（每个订单至多一条，状态不自动推进）
type ReturnRequest struct {
	ID        uint           `gorm:"primarykey" json:"-"`                                       // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_return_user_order" json:"user_id"` // 用户ID
	OrderID   uint           `gorm:"not null;uniqueIndex:idx_return_user_order" json:"-"`       // 订单ID
	OrderNo   string         `gorm:"index;not null" json:"order_id"`                            // 订单编号
	Reason    string         `gorm:"type:text;not null" json:"reason"`                          // 退货原因
	Status    string         `gorm:"type:varchar(20);not null" json:"status"`                   // 状态（初始 pending）
	Items     JSONArray      `gorm:"type:json" json:"items"`                                    // 订单项快照
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`        // 订单总额快照
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (ReturnRequest) TableName() string {
	return "return_requests"
}
