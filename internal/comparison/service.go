package comparison

import (
	"fmt"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
)

// GenerateComparisonReport 生成滚动窗口内全体用户的对比报告。
//
// 窗口的日界在请求方用户的时区中计算（未提供用户名时用默认时区），
// 这样"今天"对请求者来说就是他本地的今天。
// Redis健康时结果会以1分钟TTL缓存；Redis不可用时直接从数据库计算，请求不受影响。
func GenerateComparisonReport(requestUsername string) (*ComparisonReport, error) {
	users, err := user.GetAllUsersOrdered()
	if err != nil {
		return nil, err
	}
	if len(users) < 2 {
		return nil, ErrInsufficientParticipants
	}

	tz := user.ResolveTimezone(requestUsername)
	windowDays := 7
	if config.Cfg != nil && config.Cfg.App.WindowDays > 0 {
		windowDays = config.Cfg.App.WindowDays
	}

	window, err := timezone.Window(tz, windowDays, time.Now())
	if err != nil {
		return nil, err
	}
	windowEnd := window[len(window)-1]

	// 1. 尝试从缓存获取
	useCache := database.IsRedisHealthy() && database.RDB != nil
	if useCache {
		cached, err := GetReportCache(tz, windowEnd)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	// 2. 缓存未命中，从数据库组装
	participants := make([]Participant, 0, len(users))
	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		participants = append(participants, Participant{ID: u.ID, Username: u.Username})
		userIDs = append(userIDs, u.ID)
	}

	rows, err := japcount.FetchForUsersInRange(userIDs, window[0], timezone.NextDay(windowEnd))
	if err != nil {
		return nil, err
	}
	counts := make([]DailyCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, DailyCount{UserID: r.UserID, Date: r.Date, Count: r.Count})
	}

	// 3. 纯计算层
	days, err := BuildWindow(participants, counts, window)
	if err != nil {
		return nil, err
	}
	stats := Aggregate(participants, days, windowDays)
	leader, err := OverallLeader(stats)
	if err != nil {
		return nil, err
	}

	report := &ComparisonReport{
		ComparisonData: days,
		UserStats:      stats,
		OverallWinner:  leader.Username,
		TotalDays:      windowDays,
	}

	// 4. 异步写缓存，失败只影响下一次的命中率
	if useCache {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("严重错误: 缓存比较报告的goroutine发生panic: %v\n", r)
				}
			}()
			_ = SetReportCache(tz, windowEnd, report)
		}()
	}

	return report, nil
}
