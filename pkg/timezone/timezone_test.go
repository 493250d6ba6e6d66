package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStartRendersAsLocalMidnight(t *testing.T) {
	zones := []string{"Asia/Kolkata", "America/Toronto", "UTC", "Australia/Sydney"}
	instants := []time.Time{
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, tz := range zones {
		for _, at := range instants {
			start, err := DayStart(tz, at)
			require.NoError(t, err)

			loc, _ := time.LoadLocation(tz)
			local := start.In(loc)
			assert.Equal(t, 0, local.Hour(), "%s @ %s", tz, at)
			assert.Equal(t, 0, local.Minute(), "%s @ %s", tz, at)
			assert.Equal(t, 0, local.Second(), "%s @ %s", tz, at)
		}
	}
}

func TestDayStartIsIdempotent(t *testing.T) {
	at := time.Date(2025, 3, 9, 18, 45, 0, 0, time.UTC)
	for _, tz := range []string{"Asia/Kolkata", "America/Toronto"} {
		first, err := DayStart(tz, at)
		require.NoError(t, err)
		second, err := DayStart(tz, first)
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "DayStart应当幂等: %s", tz)
	}
}

func TestDayStartKolkataOffset(t *testing.T) {
	// IST为UTC+5:30，2025-06-15 12:00 UTC 在加尔各答是17:30，当天零点应为前一日18:30 UTC
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start, err := DayStart("Asia/Kolkata", at)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)))
}

func TestDayStartRejectsUnknownTimezone(t *testing.T) {
	_, err := DayStart("Mars/Olympus_Mons", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = Window("Mars/Olympus_Mons", 7, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestWindowLengthAndOrdering(t *testing.T) {
	at := time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC)
	days, err := Window("America/Toronto", 7, at)
	require.NoError(t, err)
	require.Len(t, days, 7)

	end, err := DayStart("America/Toronto", at)
	require.NoError(t, err)
	assert.True(t, days[6].Equal(end), "窗口最后一天应为今天的零点")

	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].After(days[i-1]), "窗口应严格递增")
		assert.True(t, days[i].Equal(NextDay(days[i-1])), "相邻两天应恰好相差一个日历日")
	}
}

func TestWindowAcrossDSTTransition(t *testing.T) {
	// 2025-03-09 多伦多进入夏令时，当天只有23小时
	at := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	days, err := Window("America/Toronto", 7, at)
	require.NoError(t, err)
	require.Len(t, days, 7)

	loc, _ := time.LoadLocation("America/Toronto")
	for i, day := range days {
		assert.Equal(t, 0, day.In(loc).Hour(), "第%d天不是当地零点", i)
	}
	for i := 1; i < len(days); i++ {
		gap := days[i].Sub(days[i-1])
		assert.True(t, gap == 23*time.Hour || gap == 24*time.Hour || gap == 25*time.Hour)
	}
}

func TestWindowRejectsNonPositiveLength(t *testing.T) {
	_, err := Window("UTC", 0, time.Now())
	assert.Error(t, err)
	_, err = Window("UTC", -3, time.Now())
	assert.Error(t, err)
}

func TestSameCalendarDay(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)

	// 当天18:30 UTC之前仍属于6月15日（IST）
	assert.True(t, SameCalendarDay(time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC), day))
	// 18:30 UTC起已经是6月16日（IST）
	assert.False(t, SameCalendarDay(time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC), day))
}
