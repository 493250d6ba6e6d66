package user

import (
	"fmt"
	"strings"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/google/uuid"
)

// ResolveTimezone 把用户名解析为IANA时区标识符。
// 映射来自配置中的静态表（大小写不敏感），未映射的用户名回退到默认时区。
// 这个映射是显式的配置输入，核心计算层只认解析结果，不隐藏任何全局状态。
func ResolveTimezone(username string) string {
	cfg := config.Cfg
	if cfg != nil {
		if tz, ok := cfg.App.UserTimezones[strings.ToLower(username)]; ok && tz != "" {
			return tz
		}
		if cfg.App.DefaultTimezone != "" {
			return cfg.App.DefaultTimezone
		}
	}
	return "Local"
}

// EnsureDefaultUsers 确保默认用户存在。
// 已有任何用户时跳过创建（与运行时init-db端点的语义一致），
// 返回本次创建的用户名和已存在的用户名。
func EnsureDefaultUsers() (created []string, existing []string, err error) {
	users, err := GetAllUsersOrdered()
	if err != nil {
		return nil, nil, err
	}
	if len(users) > 0 {
		for _, u := range users {
			existing = append(existing, u.Username)
		}
		return nil, existing, nil
	}

	for _, name := range DefaultUsernames {
		id, err := uuid.NewV7()
		if err != nil {
			return created, nil, fmt.Errorf("无法生成UUID v7: %w", err)
		}
		newUser := User{ID: id.String(), Username: name}
		if err := database.DB.Create(&newUser).Error; err != nil {
			return created, nil, fmt.Errorf("无法创建默认用户 %s: %w", name, err)
		}
		created = append(created, name)
		fmt.Printf("已创建默认用户: %s\n", name)
	}
	return created, nil, nil
}
