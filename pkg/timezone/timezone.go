package timezone

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone 表示传入的IANA时区标识符无法被识别。
// 调用方绝不能在此错误下得到一个猜测出来的结果。
var ErrInvalidTimezone = errors.New("无法识别的时区标识符")

// DayStart 返回参考时刻 at 在时区 tz 中所处日历日的零点时刻（当地时间00:00:00）。
// 对于任意时区和任意时刻，返回值在同一时区下重新渲染时，时分秒都应为0。
//
// 这里直接使用Go标准库的时区数据库来构造当地零点，
// 天然处理夏令时偏移，不需要"渲染-测量-修正"的近似循环。
// 唯一的已知例外：极少数时区在夏令时切换日不存在00:00（如部分南美时区），
// time.Date 会将其规范化到切换后的有效时刻，与切换前的语义偏差即为夏令时差值。
func DayStart(tz string, at time.Time) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	year, month, day := at.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// Window 返回以 DayStart(tz, at) 为结尾（含）的 length 个连续的零点时刻，最旧的在前。
// 它是纯函数：相同输入总是产生相同输出，没有任何共享状态。
func Window(tz string, length int, at time.Time) ([]time.Time, error) {
	if length <= 0 {
		return nil, fmt.Errorf("窗口长度必须为正数: %d", length)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	year, month, day := at.In(loc).Date()
	days := make([]time.Time, 0, length)
	for i := length - 1; i >= 0; i-- {
		// time.Date 会对越界的day字段做日历归一化，跨月、跨年、夏令时都由它处理
		days = append(days, time.Date(year, month, day-i, 0, 0, 0, 0, loc))
	}
	return days, nil
}

// NextDay 返回 day 所在时区中下一个日历日的零点时刻。
// 用于构造 [day, NextDay(day)) 形式的半开查询区间。
func NextDay(day time.Time) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d+1, 0, 0, 0, 0, day.Location())
}

// SameCalendarDay 判断时刻 at 是否落在 day 所在时区中与 day 相同的日历日上。
// 比较前先把 at 转换到 day 的时区，因此数据库返回UTC时间戳也能正确归类。
func SameCalendarDay(at, day time.Time) bool {
	y1, m1, d1 := at.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
