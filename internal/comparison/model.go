package comparison

import (
	"encoding/json"
	"time"
)

// DateLayout 是对外接口中日历日的表示格式（ISO-8601日期）。
const DateLayout = "2006-01-02"

// Date 是只含日历日的时间类型。
// JSON序列化为 "YYYY-MM-DD"，反序列化后归一化为该日历日的UTC零点，
// 因此一轮序列化-反序列化往返保持同一个日历日。
type Date struct {
	time.Time
}

// NewDate 包装一个时刻（通常是某个时区的零点）为日历日。
func NewDate(t time.Time) Date {
	return Date{t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// SameDay 判断两个Date是否表示同一个日历日（与时区渲染无关的字段比较）。
func (d Date) SameDay(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Participant 是参与比较的用户，顺序即平局裁定顺序。
type Participant struct {
	ID       string
	Username string
}

// DailyCount 是比较引擎消费的原始数据行：某用户某日的计数。
// 每个 (UserID, 日) 至多出现一次，由持久化层的唯一索引保证。
type DailyCount struct {
	UserID string
	Date   time.Time
	Count  int
}

// DayUserCount 是单日比较中某个用户的计数条目。
type DayUserCount struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
	UserID   string `json:"userId"`
}

// ComparisonDay 是单个日历日的对比结果。
// Winner 为计数严格更高的用户名；平局或参与者不足两人时为null。
type ComparisonDay struct {
	Date   Date           `json:"date"`
	Users  []DayUserCount `json:"users"`
	Winner *string        `json:"winner"`
	Total  int            `json:"total"`
}

// UserStat 是单个用户在整个窗口上的聚合统计。
type UserStat struct {
	Username     string `json:"username"`
	UserID       string `json:"userId"`
	TotalCount   int    `json:"totalCount"`
	DaysWon      int    `json:"daysWon"`
	DaysTied     int    `json:"daysTied"`
	AverageDaily int    `json:"averageDaily"`
}

// ComparisonReport 是比较接口的完整响应。
type ComparisonReport struct {
	ComparisonData []ComparisonDay `json:"comparisonData"`
	UserStats      []UserStat      `json:"userStats"`
	OverallWinner  string          `json:"overallWinner"`
	TotalDays      int             `json:"totalDays"`
}
