package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyQuoteIsDeterministic(t *testing.T) {
	day := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)

	// 同一天内的任何时刻都返回同一条引文
	assert.Equal(t, DailyQuote(day), DailyQuote(evening))
}

func TestDailyQuoteRotates(t *testing.T) {
	seen := make(map[string]bool)
	day := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < len(quotes); i++ {
		q := DailyQuote(day.AddDate(0, 0, i))
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
		seen[q.Text] = true
	}
	// 连续len(quotes)天应遍历整个引文池
	assert.Len(t, seen, len(quotes))
}
