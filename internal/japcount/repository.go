package japcount

import (
	"fmt"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// FetchForUserInRange 返回单个用户在 [start, end) 区间内的计数记录，最新的在前。
func FetchForUserInRange(userID string, start, end time.Time) ([]JapCount, error) {
	var counts []JapCount
	err := database.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date desc").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户 %s 的计数记录失败: %w", userID, err)
	}
	return counts, nil
}

// FetchForUsersInRange 一次性返回多个用户在 [start, end) 区间内的全部计数记录。
// 结果中每个 (用户, 日) 至多一行，由表上的唯一索引保证。
func FetchForUsersInRange(userIDs []string, start, end time.Time) ([]JapCount, error) {
	var counts []JapCount
	err := database.DB.
		Where("user_id IN ? AND date >= ? AND date < ?", userIDs, start, end).
		Order("date asc").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("批量查询计数记录失败: %w", err)
	}
	return counts, nil
}

// UpsertCount 以 (user_id, date) 为键写入当日计数。
// 已存在时整行覆盖count，不做部分更新；不存在时插入新行。
func UpsertCount(userID string, day time.Time, count int) (*JapCount, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成UUID v7: %w", err)
	}

	record := JapCount{
		ID:     id.String(),
		UserID: userID,
		Date:   day,
		Count:  count,
	}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("写入计数记录失败: %w", err)
	}

	// 冲突更新时Create不会回填旧行的主键，重新读一次保证返回的是库中实际的行
	var saved JapCount
	if err := database.DB.Where("user_id = ? AND date = ?", userID, day).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("回读计数记录失败: %w", err)
	}
	return &saved, nil
}

// FetchRecentDates 返回用户最近的计数日期（降序），用于连续打卡天数的计算。
func FetchRecentDates(userID string, limit int) ([]time.Time, error) {
	var dates []time.Time
	err := database.DB.Model(&JapCount{}).
		Where("user_id = ? AND count > 0", userID).
		Order("date desc").
		Limit(limit).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户 %s 的计数日期失败: %w", userID, err)
	}
	return dates, nil
}
