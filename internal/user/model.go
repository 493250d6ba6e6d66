package user

import (
	"time"
)

// User 定义了用户在数据库中的持久化模型。
// 本系统只有两个固定的用户（ak 和 manna），没有注册流程；
// 认证与会话不在本服务范围内，因此不存储任何凭据。
type User struct {
	// ID 是用户的主键，UUID字符串
	ID string `gorm:"primarykey;type:varchar(36)" json:"id"`

	// Username 是唯一的登录名，全小写
	Username string `gorm:"uniqueIndex;not null" json:"username"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultUsernames 是应用初始化时创建的默认用户。
var DefaultUsernames = []string{"ak", "manna"}
