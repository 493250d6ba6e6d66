package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/NaamJap/jap-tracker-backend/api"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/health"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/shutdown"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/startup"
	"github.com/NaamJap/jap-tracker-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时静默跳过，环境变量仍可直接覆盖配置
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败，无法启动: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Redis)

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 阻塞式执行一次启动后健康检查，再异步启动持续的后台检查器
	health.PerformCheck()
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()
	if cfg.Redis.Enabled {
		handle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
		if err != nil {
			panic(err)
		}
		go health.StartRedisHealthCheck(handle)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Secret-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
