package models

import "time"

// CartLine 购物车行
// 商品名称/品牌/价格/图片为加入时的快照字段，之后不随目录变更同步
//（行内价格一经加入即不可变）。
type CartLine struct {
	ID        uint           `gorm:"primarykey" json:"-"`                                         // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_line;uniqueIndex:idx_cart_user_product" json:"user_id"` // 用户ID
	LineKey   uint           `gorm:"not null;uniqueIndex:idx_cart_user_line" json:"line_key"`     // 行键（用户内递增分配）
	ProductID uint           `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // 商品ID
	Name      string         `gorm:"not null" json:"name"`                                        // 商品名称快照
	Brand     string         `gorm:"type:varchar(100)" json:"brand"`                              // 品牌快照
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`          // 单价快照
	Image     string         `gorm:"type:varchar(500)" json:"image"`                              // 图片快照
	Quantity  int            `gorm:"not null" json:"quantity"`                                    // 数量（正整数）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}
