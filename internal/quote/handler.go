package quote

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetDailyQuote 返回当日的灵修引文。
func GetDailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": DailyQuote(time.Now())})
}
