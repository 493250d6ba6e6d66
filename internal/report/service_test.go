package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/japcount"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/config"
	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/NaamJap/jap-tracker-backend/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest 挂载内存数据库、写入默认用户并准备UTC时区的测试配置。
func setupTest(t *testing.T) (ak, manna *user.User) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &japcount.JapCount{}))
	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	config.Cfg = &config.Config{
		App: config.AppConfig{
			WindowDays:      7,
			DefaultTimezone: "UTC",
			UserTimezones:   map[string]string{},
		},
	}
	t.Cleanup(func() { config.Cfg = nil })

	_, _, err = user.EnsureDefaultUsers()
	require.NoError(t, err)
	ak, err = user.FindByUsername("ak")
	require.NoError(t, err)
	manna, err = user.FindByUsername("manna")
	require.NoError(t, err)
	return ak, manna
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestBuildCombinedStats(t *testing.T) {
	ak, manna := setupTest(t)
	today := todayUTC()

	_, err := japcount.UpsertCount(ak.ID, today, 108)
	require.NoError(t, err)
	_, err = japcount.UpsertCount(manna.ID, today, 54)
	require.NoError(t, err)

	stats, err := BuildCombinedStats("week")
	require.NoError(t, err)
	assert.Equal(t, 162, stats.TotalCount)
	require.Len(t, stats.Users, 2)
	assert.Equal(t, "ak", stats.Users[0].Username)
	assert.Equal(t, 108, stats.Users[0].TotalCount)
	assert.Equal(t, 54, stats.Users[1].TotalCount)
}

func TestBuildCombinedStatsRejectsUnknownPeriod(t *testing.T) {
	setupTest(t)
	_, err := BuildCombinedStats("month")
	assert.Error(t, err)
}

func TestBuildExportReport(t *testing.T) {
	ak, manna := setupTest(t)
	today := todayUTC()

	_, err := japcount.UpsertCount(ak.ID, today, 200)
	require.NoError(t, err)
	_, err = japcount.UpsertCount(manna.ID, today, 100)
	require.NoError(t, err)

	rep, err := BuildExportReport("ak")
	require.NoError(t, err)

	assert.False(t, rep.GeneratedAt.IsZero())
	assert.NotEmpty(t, rep.Quote.Text)
	assert.Equal(t, 300, rep.Combined.TotalCount)

	require.NotNil(t, rep.Comparison)
	assert.Equal(t, 7, rep.Comparison.TotalDays)
	require.Len(t, rep.Comparison.ComparisonData, 7)
	require.Len(t, rep.Comparison.UserStats, 2)
	assert.Equal(t, "ak", rep.Comparison.OverallWinner)

	// 今天这一天应由ak获胜，窗口内其余日子没有记录
	lastDay := rep.Comparison.ComparisonData[6]
	require.NotNil(t, lastDay.Winner)
	assert.Equal(t, "ak", *lastDay.Winner)
	assert.Equal(t, 300, lastDay.Total)
}
