package report

import (
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/comparison"
	"github.com/NaamJap/jap-tracker-backend/internal/quote"
)

// UserTotal 是合并统计中单个用户的周期总计。
type UserTotal struct {
	Username   string `json:"username"`
	TotalCount int    `json:"totalCount"`
}

// CombinedStats 是全体用户在一个周期内的合并统计。
type CombinedStats struct {
	TotalCount int         `json:"totalCount"`
	Users      []UserTotal `json:"users"`
}

// ExportReport 是导出报告的完整数据载荷。
// PDF等最终呈现由客户端完成，本服务只负责提供内容。
type ExportReport struct {
	GeneratedAt time.Time                    `json:"generatedAt"`
	Quote       quote.Quote                  `json:"quote"`
	Combined    CombinedStats                `json:"combined"`
	Comparison  *comparison.ComparisonReport `json:"comparison"`
}
