package comparison

import (
	"errors"
	"net/http"

	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
	"github.com/gin-gonic/gin"
)

// GetComparison 返回全体用户在滚动窗口上的对比报告。
// 可选的 username 参数决定用哪个用户的时区来划分日界。
func GetComparison(c *gin.Context) {
	report, err := GenerateComparisonReport(c.Query("username"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientParticipants):
			c.JSON(http.StatusBadRequest, gin.H{"error": "比较至少需要两个用户"})
		case errors.Is(err, timezone.ErrInvalidTimezone):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "生成比较报告失败"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
