package database

import (
	"context"
	"fmt"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB 是一个全局的Redis客户端实例，供项目其他部分使用。
// Redis在本项目中只承担可丢弃的读缓存，禁用时RDB保持为nil。
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// InitRedis 初始化与Redis数据库的连接。
// 配置中禁用Redis时直接把健康状态置为不可用，所有读取退化为直连数据库。
func InitRedis(cfg config.RedisConfig) {
	if !cfg.Enabled {
		UpdateStatus(false)
		fmt.Println("Redis已在配置中禁用，统计缓存不可用。")
		return
	}

	// 创建一个新的Redis客户端
	// 使用从配置文件加载的参数
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 使用Ping命令来测试连接是否成功
	_, err := RDB.Ping(Ctx).Result()
	if err != nil {
		// 缓存不是硬依赖：连接失败只降级，不阻止启动
		UpdateStatus(false)
		fmt.Printf("警告: 无法连接到Redis (%v)，统计缓存暂不可用。\n", err)
		return
	}

	UpdateStatus(true)
	fmt.Println("Redis 连接成功！")
}
