package admin

import (
	"net/http"

	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// RequireSecretMiddleware 校验运维端点的共享密钥。
// 密钥通过 ?secret= 或 X-Secret-Key 请求头提供；
// 配置中未设置密钥时端点开放（与本地开发场景一致）。
func RequireSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := ""
		if config.Cfg != nil {
			expected = config.Cfg.Server.AdminSecret
		}
		if expected == "" {
			c.Next()
			return
		}

		secret := c.Query("secret")
		if secret == "" {
			secret = c.GetHeader("X-Secret-Key")
		}
		if secret != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "无效的密钥"})
			return
		}
		c.Next()
	}
}

// InitDB 在运行时初始化数据库：迁移表结构并创建默认用户。
// 已有用户时跳过创建，返回现存的用户名。可以安全地重复调用。
func InitDB(c *gin.Context) {
	if err := database.DB.AutoMigrate(&user.User{}, &japcount.JapCount{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "迁移数据库失败: " + err.Error()})
		return
	}

	created, existing, err := user.EnsureDefaultUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "初始化默认用户失败: " + err.Error()})
		return
	}

	if len(created) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":       "用户已存在，跳过初始化",
			"existingUsers": existing,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "数据库初始化成功",
		"createdUsers": created,
	})
}

// MigrateDB 在运行时创建或更新数据库表结构。
// 表已存在时不会被重建，可以安全地重复调用。
func MigrateDB(c *gin.Context) {
	if err := database.DB.AutoMigrate(&user.User{}, &japcount.JapCount{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "迁移数据库失败: " + err.Error()})
		return
	}

	userCount, err := user.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var japCountTotal int64
	if err := database.DB.Model(&japcount.JapCount{}).Count(&japCountTotal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "统计计数记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "数据库迁移完成",
		"tables": gin.H{
			"User":     "exists",
			"JapCount": "exists",
		},
		"counts": gin.H{
			"users":     userCount,
			"japCounts": japCountTotal,
		},
	})
}
