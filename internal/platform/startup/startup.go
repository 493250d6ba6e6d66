package startup

import (
	"fmt"

	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口：
// 迁移两张表并确保默认用户存在。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := user.PrimeDB(); err != nil {
		return err
	}
	if err := japcount.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
