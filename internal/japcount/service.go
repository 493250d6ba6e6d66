package japcount

import (
	"fmt"
	"math"
	"time"

	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
)

// DateLayout 是对外接口中日历日的表示格式（ISO-8601日期）。
const DateLayout = "2006-01-02"

// streakScanLimit 是连续打卡计算往回最多扫描的记录数。
const streakScanLimit = 366

// Statistics 是计数查询接口返回的统计摘要。
type Statistics struct {
	TotalCount   int      `json:"totalCount"`
	AverageDaily int      `json:"averageDaily"`
	BestDay      *BestDay `json:"bestDay"`
	Streak       int      `json:"streak"`
}

// BestDay 记录查询区间内计数最高的一天。
type BestDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// PeriodRange 把查询参数解析为 [start, end) 的查询区间。
// period 支持 "day"（当日）与 "week"（周日起始的本周）；
// dateStr 非空时表示指定日期，优先于period。
// 所有日界都在用户时区 tz 中计算。
func PeriodRange(tz, period, dateStr string, now time.Time) (start, end time.Time, err error) {
	if dateStr != "" {
		loc, locErr := time.LoadLocation(tz)
		if locErr != nil {
			return start, end, fmt.Errorf("%w: %q", timezone.ErrInvalidTimezone, tz)
		}
		day, parseErr := time.ParseInLocation(DateLayout, dateStr, loc)
		if parseErr != nil {
			return start, end, fmt.Errorf("无效的日期格式 %q（应为YYYY-MM-DD）", dateStr)
		}
		return day, timezone.NextDay(day), nil
	}

	today, err := timezone.DayStart(tz, now)
	if err != nil {
		return start, end, err
	}

	switch period {
	case "day", "":
		return today, timezone.NextDay(today), nil
	case "week":
		// 本周从周日零点开始
		weekday := int(now.In(today.Location()).Weekday())
		year, month, day := today.Date()
		start = time.Date(year, month, day-weekday, 0, 0, 0, 0, today.Location())
		return start, timezone.NextDay(today), nil
	default:
		return start, end, fmt.Errorf("无效的查询周期: %q", period)
	}
}

// BuildStatistics 根据查询区间内的记录计算统计摘要。
// counts 必须是按日期降序排列的查询结果。
func BuildStatistics(counts []JapCount, period string) Statistics {
	stats := Statistics{}
	for _, c := range counts {
		stats.TotalCount += c.Count
	}

	if period == "week" {
		// 周均值固定按7天折算，四舍五入到整数
		stats.AverageDaily = int(math.Round(float64(stats.TotalCount) / 7.0))
	} else {
		stats.AverageDaily = stats.TotalCount
	}

	for _, c := range counts {
		// 降序遍历，只在严格更大时替换：计数相同取最近的一天
		if stats.BestDay == nil || c.Count > stats.BestDay.Count {
			stats.BestDay = &BestDay{Date: c.Date, Count: c.Count}
		}
	}
	return stats
}

// ComputeStreak 计算用户以今天（或昨天）结尾的连续打卡天数。
// 今天尚未记录不中断连续：此时从昨天开始往回数。
func ComputeStreak(userID, tz string, now time.Time) (int, error) {
	today, err := timezone.DayStart(tz, now)
	if err != nil {
		return 0, err
	}

	dates, err := FetchRecentDates(userID, streakScanLimit)
	if err != nil {
		return 0, err
	}

	logged := make(map[string]bool, len(dates))
	for _, d := range dates {
		logged[d.In(today.Location()).Format(DateLayout)] = true
	}

	cursor := today
	if !logged[cursor.Format(DateLayout)] {
		cursor = previousDay(cursor)
	}

	streak := 0
	for logged[cursor.Format(DateLayout)] {
		streak++
		cursor = previousDay(cursor)
	}
	return streak, nil
}

func previousDay(day time.Time) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d-1, 0, 0, 0, 0, day.Location())
}
