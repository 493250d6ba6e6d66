package japcount

import (
	"fmt"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&JapCount{}); err != nil {
		return fmt.Errorf("无法迁移jap_counts表: %w", err)
	}
	fmt.Println("JapCount数据库表迁移成功。")
	return nil
}

// PrimeDB 是japcount模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
