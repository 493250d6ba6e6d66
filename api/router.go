package api

import (
	"github.com/NaamJap/jap-tracker-backend/internal/admin"
	"github.com/NaamJap/jap-tracker-backend/internal/comparison"
	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/quote"
	"github.com/NaamJap/jap-tracker-backend/internal/report"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 用户列表
		api.GET("/users", user.GetUsers)

		// 计数相关的路由组 /api/jap
		japRoutes := api.Group("/jap")
		{
			japRoutes.GET("", japcount.GetJapCounts)
			japRoutes.POST("", japcount.SubmitJapCount)
			japRoutes.GET("/combined", report.GetCombined)
			japRoutes.GET("/comparison", comparison.GetComparison)
		}

		// 导出报告与每日引文
		api.GET("/report", report.GetExportReport)
		api.GET("/quote", quote.GetDailyQuote)

		// 运维端点，受共享密钥保护
		adminRoutes := api.Group("/admin", admin.RequireSecretMiddleware())
		{
			adminRoutes.POST("/init-db", admin.InitDB)
			adminRoutes.GET("/migrate-db", admin.MigrateDB)
			adminRoutes.POST("/migrate-db", admin.MigrateDB)
		}
	}
}
