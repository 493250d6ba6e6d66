package report

import (
	"fmt"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/comparison"
	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/quote"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
)

// BuildCombinedStats 计算全体用户在本周（周日起始）的合并总计。
// 目前只支持 week 周期，其他取值视为调用方错误。
func BuildCombinedStats(period string) (*CombinedStats, error) {
	if period != "week" {
		return nil, fmt.Errorf("无效的查询周期: %q", period)
	}

	users, err := user.GetAllUsersOrdered()
	if err != nil {
		return nil, err
	}

	// 周界按默认时区计算；合并统计是全体视角，不属于任何单个用户的时区
	tz := user.ResolveTimezone("")
	start, end, err := japcount.PeriodRange(tz, period, "", time.Now())
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}
	rows, err := japcount.FetchForUsersInRange(userIDs, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(users))
	for _, r := range rows {
		totals[r.UserID] += r.Count
	}

	stats := &CombinedStats{Users: make([]UserTotal, 0, len(users))}
	for _, u := range users {
		stats.Users = append(stats.Users, UserTotal{Username: u.Username, TotalCount: totals[u.ID]})
		stats.TotalCount += totals[u.ID]
	}
	return stats, nil
}

// BuildExportReport 组装导出报告：合并统计、窗口对比和当日引文。
func BuildExportReport(requestUsername string) (*ExportReport, error) {
	combined, err := BuildCombinedStats("week")
	if err != nil {
		return nil, err
	}

	cmp, err := comparison.GenerateComparisonReport(requestUsername)
	if err != nil {
		return nil, err
	}

	return &ExportReport{
		GeneratedAt: time.Now(),
		Quote:       quote.DailyQuote(time.Now()),
		Combined:    *combined,
		Comparison:  cmp,
	}, nil
}
