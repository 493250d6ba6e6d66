package japcount

import (
	"errors"
	"net/http"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/user"
	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
	"github.com/gin-gonic/gin"
)

// SubmitRequestBody 定义了提交当日计数时请求体的JSON结构。
// Count 使用指针以区分"未提供"和"显式的0"。
type SubmitRequestBody struct {
	UserID   string `json:"userId" binding:"required"`
	Username string `json:"username" binding:"required"`
	Count    *int   `json:"count" binding:"required"`
	Date     string `json:"date"`
}

// GetJapCounts 查询用户的计数记录和统计摘要。
// 支持 period=day（默认）/ period=week / date=YYYY-MM-DD 三种区间。
func GetJapCounts(c *gin.Context) {
	userID := c.Query("userId")
	username := c.Query("username")
	if userID == "" || username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必须提供 userId 和 username"})
		return
	}

	period := c.DefaultQuery("period", "day")
	dateStr := c.Query("date")

	// 日界按该用户配置的时区计算，而不是服务器进程的时区
	tz := user.ResolveTimezone(username)
	start, end, err := PeriodRange(tz, period, dateStr, time.Now())
	if err != nil {
		if errors.Is(err, timezone.ErrInvalidTimezone) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := FetchForUserInRange(userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询计数记录失败"})
		return
	}

	stats := BuildStatistics(counts, period)
	if streak, err := ComputeStreak(userID, tz, time.Now()); err == nil {
		stats.Streak = streak
	}

	c.JSON(http.StatusOK, gin.H{
		"japCounts":  counts,
		"statistics": stats,
	})
}

// SubmitJapCount 记录（或覆盖）用户某一天的计数。
// 同一 (用户, 日) 只保留一行，重复提交整行覆盖。
func SubmitJapCount(c *gin.Context) {
	var body SubmitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	count := *body.Count
	if count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "计数必须是非负整数"})
		return
	}

	// 0不落库：没有活动就没有行，查询侧把缺行解释为0
	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "计数为0，无需记录"})
		return
	}

	existing, err := user.FindByID(body.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到ID为 " + body.UserID + " 的用户"})
		return
	}

	tz := user.ResolveTimezone(body.Username)
	var day time.Time
	if body.Date != "" {
		loc, locErr := time.LoadLocation(tz)
		if locErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": locErr.Error()})
			return
		}
		day, err = time.ParseInLocation(DateLayout, body.Date, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式（应为YYYY-MM-DD）"})
			return
		}
	} else {
		day, err = timezone.DayStart(tz, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	record, err := UpsertCount(body.UserID, day, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存计数失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"japCount": record,
		"message":  "计数已更新",
	})
}
