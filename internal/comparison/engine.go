package comparison

import (
	"errors"
	"math"
	"time"

	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
)

// ErrInsufficientParticipants 表示两方比较所需的参与者不足。
// 引擎在此错误下不会退化为单边结果。
var ErrInsufficientParticipants = errors.New("比较至少需要两个参与者")

// BuildWindow 把原始的逐日计数组装为窗口内每一天的对比结果。
//
// window 是按时间升序排列的零点时刻序列（来自 timezone.Window）；
// counts 中缺失的 (用户, 日) 组合按0处理——没有记录只表示当天没有活动，不是错误。
// 胜负规则（两个参与者）：计数严格更大者获胜；双方相等且为正记为平局（无胜者）；
// 双方都是0既不算胜负也不算平局。
// 整个函数是纯函数：只读取参数，不访问任何外部状态。
func BuildWindow(participants []Participant, counts []DailyCount, window []time.Time) ([]ComparisonDay, error) {
	if len(participants) < 2 {
		return nil, ErrInsufficientParticipants
	}

	days := make([]ComparisonDay, 0, len(window))
	for _, day := range window {
		dayData := ComparisonDay{
			Date:  NewDate(day),
			Users: make([]DayUserCount, 0, len(participants)),
		}

		for _, p := range participants {
			count := 0
			for _, c := range counts {
				if c.UserID == p.ID && timezone.SameCalendarDay(c.Date, day) {
					count = c.Count
					break
				}
			}
			dayData.Users = append(dayData.Users, DayUserCount{
				Username: p.Username,
				Count:    count,
				UserID:   p.ID,
			})
			dayData.Total += count
		}

		// 胜负只对两个参与者有定义
		if len(dayData.Users) == 2 {
			if dayData.Users[0].Count > dayData.Users[1].Count {
				dayData.Winner = &dayData.Users[0].Username
			} else if dayData.Users[1].Count > dayData.Users[0].Count {
				dayData.Winner = &dayData.Users[1].Username
			}
		}

		days = append(days, dayData)
	}
	return days, nil
}

// Aggregate 在窗口的逐日结果上计算每个用户的聚合统计。
// daysTied 只统计双方相等且计数为正的日子，对两个用户是对称的；
// averageDaily 按窗口长度折算并四舍五入到整数。
func Aggregate(participants []Participant, days []ComparisonDay, windowDays int) []UserStat {
	stats := make([]UserStat, 0, len(participants))
	for _, p := range participants {
		stat := UserStat{Username: p.Username, UserID: p.ID}

		for _, day := range days {
			for _, u := range day.Users {
				if u.UserID == p.ID {
					stat.TotalCount += u.Count
				}
			}
			if day.Winner != nil && *day.Winner == p.Username {
				stat.DaysWon++
			}
			if isTiedDay(day) {
				stat.DaysTied++
			}
		}

		if windowDays > 0 {
			stat.AverageDaily = int(math.Round(float64(stat.TotalCount) / float64(windowDays)))
		}
		stats = append(stats, stat)
	}
	return stats
}

// isTiedDay 判断某一天是否为有效平局：两个参与者计数相等且为正。
func isTiedDay(day ComparisonDay) bool {
	return len(day.Users) == 2 &&
		day.Users[0].Count == day.Users[1].Count &&
		day.Users[0].Count > 0
}

// OverallLeader 返回总计数严格最大的用户；
// 多个用户并列最大时取参与者顺序中靠前的一个，保证结果可复现。
func OverallLeader(stats []UserStat) (UserStat, error) {
	if len(stats) == 0 {
		return UserStat{}, ErrInsufficientParticipants
	}
	leader := stats[0]
	for _, s := range stats[1:] {
		if s.TotalCount > leader.TotalCount {
			leader = s
		}
	}
	return leader, nil
}
