package comparison

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/NaamJap/jap-tracker-backend/pkg/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userA = Participant{ID: "user-a", Username: "ak"}
	userB = Participant{ID: "user-b", Username: "manna"}
)

// buildTestWindow 构造一个以固定日期结尾的7天UTC窗口。
func buildTestWindow(t *testing.T) []time.Time {
	t.Helper()
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	window, err := timezone.Window("UTC", 7, at)
	require.NoError(t, err)
	return window
}

// countsFor 把两组逐日计数铺到窗口上，0不生成行（模拟缺失记录）。
func countsFor(window []time.Time, a, b []int) []DailyCount {
	var counts []DailyCount
	for i, day := range window {
		if a[i] > 0 {
			counts = append(counts, DailyCount{UserID: userA.ID, Date: day, Count: a[i]})
		}
		if b[i] > 0 {
			counts = append(counts, DailyCount{UserID: userB.ID, Date: day, Count: b[i]})
		}
	}
	return counts
}

func TestBuildWindowRequiresTwoParticipants(t *testing.T) {
	window := buildTestWindow(t)

	_, err := BuildWindow([]Participant{userA}, nil, window)
	assert.ErrorIs(t, err, ErrInsufficientParticipants)

	_, err = BuildWindow(nil, nil, window)
	assert.ErrorIs(t, err, ErrInsufficientParticipants)
}

func TestBuildWindowWinnerRules(t *testing.T) {
	window := buildTestWindow(t)[:1]

	cases := []struct {
		name       string
		a, b       int
		wantWinner *string
	}{
		{"较大者获胜", 5, 3, &userA.Username},
		{"双零没有胜者", 0, 0, nil},
		{"正数平局没有胜者", 4, 4, nil},
		{"另一方获胜", 3, 5, &userB.Username},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := BuildWindow(
				[]Participant{userA, userB},
				countsFor(window, []int{tc.a}, []int{tc.b}),
				window,
			)
			require.NoError(t, err)
			require.Len(t, days, 1)

			if tc.wantWinner == nil {
				assert.Nil(t, days[0].Winner)
			} else {
				require.NotNil(t, days[0].Winner)
				assert.Equal(t, *tc.wantWinner, *days[0].Winner)
			}
			assert.Equal(t, tc.a+tc.b, days[0].Total)
		})
	}
}

func TestBuildWindowMissingRowsCountAsZero(t *testing.T) {
	window := buildTestWindow(t)

	// 只有第3天有记录，其余日子全部缺行
	counts := []DailyCount{{UserID: userA.ID, Date: window[2], Count: 21}}
	days, err := BuildWindow([]Participant{userA, userB}, counts, window)
	require.NoError(t, err)
	require.Len(t, days, 7)

	for i, day := range days {
		require.Len(t, day.Users, 2)
		sum := day.Users[0].Count + day.Users[1].Count
		assert.Equal(t, sum, day.Total, "第%d天总计与用户计数之和不一致", i)
		if i == 2 {
			assert.Equal(t, 21, day.Total)
		} else {
			assert.Equal(t, 0, day.Total)
		}
	}
}

func TestSevenDayScenario(t *testing.T) {
	window := buildTestWindow(t)
	aCounts := []int{108, 0, 50, 50, 0, 0, 200}
	bCounts := []int{0, 0, 50, 50, 108, 0, 0}

	participants := []Participant{userA, userB}
	days, err := BuildWindow(participants, countsFor(window, aCounts, bCounts), window)
	require.NoError(t, err)
	require.Len(t, days, 7)

	// 第1、7天A胜，第5天B胜，第3、4天平局，第2、6天双零无胜负
	require.NotNil(t, days[0].Winner)
	assert.Equal(t, userA.Username, *days[0].Winner)
	require.NotNil(t, days[6].Winner)
	assert.Equal(t, userA.Username, *days[6].Winner)
	require.NotNil(t, days[4].Winner)
	assert.Equal(t, userB.Username, *days[4].Winner)
	for _, i := range []int{1, 2, 3, 5} {
		assert.Nil(t, days[i].Winner, "第%d天不应有胜者", i+1)
	}

	stats := Aggregate(participants, days, 7)
	require.Len(t, stats, 2)

	a, b := stats[0], stats[1]
	assert.Equal(t, 408, a.TotalCount)
	assert.Equal(t, 208, b.TotalCount)
	assert.Equal(t, 2, a.DaysWon)
	assert.Equal(t, 1, b.DaysWon)
	assert.Equal(t, 2, a.DaysTied, "只有50=50的两天是平局，0=0不算")
	assert.Equal(t, 2, b.DaysTied)
	assert.Equal(t, 58, a.AverageDaily) // round(408/7)
	assert.Equal(t, 30, b.AverageDaily) // round(208/7)

	leader, err := OverallLeader(stats)
	require.NoError(t, err)
	assert.Equal(t, userA.Username, leader.Username)
}

func TestAggregateTotalsMatchDays(t *testing.T) {
	window := buildTestWindow(t)
	aCounts := []int{10, 20, 0, 5, 0, 0, 7}
	bCounts := []int{3, 0, 0, 5, 9, 0, 0}

	participants := []Participant{userA, userB}
	days, err := BuildWindow(participants, countsFor(window, aCounts, bCounts), window)
	require.NoError(t, err)
	stats := Aggregate(participants, days, 7)

	for _, stat := range stats {
		sum := 0
		for _, day := range days {
			for _, u := range day.Users {
				if u.UserID == stat.UserID {
					sum += u.Count
				}
			}
		}
		assert.Equal(t, sum, stat.TotalCount, "用户 %s 的总计应等于逐日计数之和", stat.Username)
	}
}

func TestOverallLeaderTieBreak(t *testing.T) {
	stats := []UserStat{
		{Username: "ak", TotalCount: 100},
		{Username: "manna", TotalCount: 100},
	}
	leader, err := OverallLeader(stats)
	require.NoError(t, err)
	// 并列时取参与者顺序中靠前的一个
	assert.Equal(t, "ak", leader.Username)

	_, err = OverallLeader(nil)
	assert.Error(t, err)
}

func TestComparisonDayJSONRoundTrip(t *testing.T) {
	window := buildTestWindow(t)
	days, err := BuildWindow(
		[]Participant{userA, userB},
		countsFor(window[:1], []int{12}, []int{8}),
		window[:1],
	)
	require.NoError(t, err)
	original := days[0]

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2025-06-09"`)

	var decoded ComparisonDay
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, decoded.Date.SameDay(original.Date), "反序列化后应是同一个日历日")
	assert.Equal(t, original.Users, decoded.Users)
	assert.Equal(t, original.Total, decoded.Total)
	require.NotNil(t, decoded.Winner)
	assert.Equal(t, *original.Winner, *decoded.Winner)
}
