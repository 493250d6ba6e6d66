package comparison

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/NaamJap/jap-tracker-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// CacheTTL 是比较报告在Redis中的存活时间。
// 报告总是可以从数据库重新计算，缓存丢失没有任何后果。
const CacheTTL = 1 * time.Minute

// cacheKey 以时区和窗口末日为键：同一时区在同一个日历日内的报告是相同的。
func cacheKey(tz string, windowEnd time.Time) string {
	return fmt.Sprintf("comparison:report:%s:%s", tz, windowEnd.Format(DateLayout))
}

// GetReportCache 尝试从Redis读取缓存的比较报告。
// 缓存未命中返回 (nil, nil)。
func GetReportCache(tz string, windowEnd time.Time) (*ComparisonReport, error) {
	data, err := database.RDB.Get(database.Ctx, cacheKey(tz, windowEnd)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("读取比较报告缓存失败: %w", err)
	}

	var report ComparisonReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("解析比较报告缓存失败: %w", err)
	}
	return &report, nil
}

// SetReportCache 把比较报告写入Redis并设置TTL。
func SetReportCache(tz string, windowEnd time.Time, report *ComparisonReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("序列化比较报告失败: %w", err)
	}
	if err := database.RDB.Set(database.Ctx, cacheKey(tz, windowEnd), data, CacheTTL).Err(); err != nil {
		return fmt.Errorf("写入比较报告缓存失败: %w", err)
	}
	return nil
}
