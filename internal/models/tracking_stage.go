package models

import "time"

// TrackingStage 订单跟踪阶段记录
// 每个订单固定四行（confirmed/processing/shipped/delivered），
// 阶段只能按固定顺序单调推进，完成时间一经写入不再覆盖。
type TrackingStage struct {
	ID          uint       `gorm:"primarykey" json:"-"`                                          // 主键
	OrderID     uint       `gorm:"not null;uniqueIndex:idx_tracking_order_stage" json:"-"`       // 订单ID
	Stage       string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_tracking_order_stage" json:"stage"` // 阶段名
	Completed   bool       `gorm:"not null;default:false" json:"status"`                         // 是否完成
	CompletedAt *time.Time `json:"timestamp"`                                                    // 完成时间
}

// TableName 指定表名
func (TrackingStage) TableName() string {
	return "order_tracking_stages"
}
