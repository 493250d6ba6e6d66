package user

import (
	"fmt"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("无法迁移user表: %w", err)
	}
	fmt.Println("User数据库表迁移成功。")
	return nil
}

// PrimeDB 是user模块的初始化总入口：迁移表结构并确保默认用户存在。
func PrimeDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	created, existing, err := EnsureDefaultUsers()
	if err != nil {
		return err
	}
	if len(created) > 0 {
		fmt.Printf("默认用户初始化完成: %v\n", created)
	} else {
		fmt.Printf("用户已存在，跳过初始化: %v\n", existing)
	}
	return nil
}
