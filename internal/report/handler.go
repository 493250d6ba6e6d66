package report

import (
	"errors"
	"net/http"

	"github.com/NaamJap/jap-tracker-backend/internal/comparison"
	"github.com/gin-gonic/gin"
)

// GetCombined 返回全体用户本周的合并总计。
func GetCombined(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	stats, err := BuildCombinedStats(period)
	if err != nil {
		if period != "week" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取合并统计失败"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetExportReport 返回导出报告的数据载荷。
// 可选的 username 参数决定对比窗口使用的时区。
func GetExportReport(c *gin.Context) {
	rep, err := BuildExportReport(c.Query("username"))
	if err != nil {
		if errors.Is(err, comparison.ErrInsufficientParticipants) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "导出报告至少需要两个用户"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出报告失败"})
		return
	}
	c.JSON(http.StatusOK, rep)
}
