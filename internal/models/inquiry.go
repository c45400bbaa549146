package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry 联系我们留言表（登录用户或游客均可提交）
type Inquiry struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	UserID    uint           `gorm:"index" json:"user_id,omitempty"`           // 用户ID（游客为 0）
	Name      string         `gorm:"not null" json:"name"`                     // 称呼
	Email     string         `gorm:"index;not null" json:"email"`              // 邮箱
	Message   string         `gorm:"type:text;not null" json:"message"`        // 留言内容
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Inquiry) TableName() string {
	return "inquiries"
}
