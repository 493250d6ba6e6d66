package quote

import (
	"time"
)

// Quote 是一条灵修引文。
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// quotes 是固定的引文池，每日轮换展示。
var quotes = []Quote{
	{
		Text:   "I am the source of all spiritual and material worlds. Everything emanates from Me.",
		Author: "Bhagavad Gita 10.8",
	},
	{
		Text:   "Abandon all varieties of religion and just surrender unto Me. I shall deliver you from all sinful reactions. Do not fear.",
		Author: "Bhagavad Gita 18.66",
	},
	{
		Text:   "The mind is restless and difficult to restrain, but it is subdued by constant practice and detachment.",
		Author: "Bhagavad Gita 6.35",
	},
	{
		Text:   "You have a right to perform your prescribed duty, but not to the fruits of action.",
		Author: "Bhagavad Gita 2.47",
	},
	{
		Text:   "The soul is neither born, and nor does it die. It is unborn, eternal, ever-existing and primeval.",
		Author: "Bhagavad Gita 2.20",
	},
	{
		Text:   "The divine name has the power to purify the heart and bring peace to the soul.",
		Author: "Spiritual Wisdom",
	},
	{
		Text:   "Through constant remembrance of the divine, we find our true purpose in life.",
		Author: "Spiritual Wisdom",
	},
	{
		Text:   "Every jap brings you closer to the divine. Your dedication is your strength.",
		Author: "Divine Inspiration",
	},
}

// DailyQuote 按一年中的第几天轮换返回当日引文。
// 同一天内的多次调用总是返回同一条。
func DailyQuote(now time.Time) Quote {
	return quotes[now.YearDay()%len(quotes)]
}
