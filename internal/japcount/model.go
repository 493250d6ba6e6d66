package japcount

import (
	"time"
)

// JapCount 定义了单个用户在单个日历日上的念诵计数。
// Date 存储的是该日在用户时区中的零点时刻；
// (user_id, date) 上的唯一索引保证每个用户每天至多一行，
// 上层的聚合计算可以直接依赖这个不变量。
type JapCount struct {
	// ID 是记录的主键，UUID字符串
	ID string `gorm:"primarykey;type:varchar(36)" json:"id"`

	// UserID 指向所属用户
	UserID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_jap_counts_user_date" json:"userId"`

	// Date 是计数归属的日历日的零点时刻
	Date time.Time `gorm:"not null;uniqueIndex:idx_jap_counts_user_date" json:"date"`

	// Count 是当日的念诵次数，非负整数，整行覆盖式更新
	Count int `gorm:"not null" json:"count"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
