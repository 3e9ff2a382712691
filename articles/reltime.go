package articles

import (
	"math"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/ip812/helloadp/content"
)

type timeUnit struct {
	name    string
	below   int64
	seconds int64
}

// Units in ascending order. The first unit whose bound exceeds the elapsed
// seconds is used.
var timeUnits = []timeUnit{
	{name: "second", below: 60, seconds: 1},
	{name: "minute", below: 3600, seconds: 60},
	{name: "hour", below: 86400, seconds: 3600},
	{name: "day", below: 604800, seconds: 86400},
	{name: "week", below: 2592000, seconds: 604800},
	{name: "month", below: 31536000, seconds: 2592000},
	{name: "year", below: math.MaxInt64, seconds: 31536000},
}

type phrase struct {
	pastOne, pastOther     string
	futureOne, futureOther string
}

// same is for languages without plural forms. Their phrases carry no "one"
// case, which the plural rules of such languages reject.
func same(past, future string) phrase {
	return phrase{pastOther: past, futureOther: future}
}

var phrasebook = map[language.Tag]map[string]phrase{
	language.English: {
		"second": {"%d second ago", "%d seconds ago", "in %d second", "in %d seconds"},
		"minute": {"%d minute ago", "%d minutes ago", "in %d minute", "in %d minutes"},
		"hour":   {"%d hour ago", "%d hours ago", "in %d hour", "in %d hours"},
		"day":    {"%d day ago", "%d days ago", "in %d day", "in %d days"},
		"week":   {"%d week ago", "%d weeks ago", "in %d week", "in %d weeks"},
		"month":  {"%d month ago", "%d months ago", "in %d month", "in %d months"},
		"year":   {"%d year ago", "%d years ago", "in %d year", "in %d years"},
	},
	language.Chinese: {
		"second": same("%d秒钟前", "%d秒钟后"),
		"minute": same("%d分钟前", "%d分钟后"),
		"hour":   same("%d小时前", "%d小时后"),
		"day":    same("%d天前", "%d天后"),
		"week":   same("%d周前", "%d周后"),
		"month":  same("%d个月前", "%d个月后"),
		"year":   same("%d年前", "%d年后"),
	},
	language.Japanese: {
		"second": same("%d 秒前", "%d 秒後"),
		"minute": same("%d 分前", "%d 分後"),
		"hour":   same("%d 時間前", "%d 時間後"),
		"day":    same("%d 日前", "%d 日後"),
		"week":   same("%d 週間前", "%d 週間後"),
		"month":  same("%d か月前", "%d か月後"),
		"year":   same("%d 年前", "%d 年後"),
	},
}

var (
	relTimeTags    = []language.Tag{language.English, language.Chinese, language.Japanese}
	relTimeMatcher = language.NewMatcher(relTimeTags)
	relTimeCatalog = newRelTimeCatalog()
)

func newRelTimeCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, units := range phrasebook {
		for unit, p := range units {
			if err := setPhrase(b, tag, relTimeKey(false, unit), p.pastOne, p.pastOther); err != nil {
				panic(err)
			}
			if err := setPhrase(b, tag, relTimeKey(true, unit), p.futureOne, p.futureOther); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func setPhrase(b *catalog.Builder, tag language.Tag, key, one, other string) error {
	if one == "" {
		return b.SetString(tag, key, other)
	}
	return b.Set(tag, key, plural.Selectf(1, "%d", "one", one, "other", other))
}

func relTimeKey(future bool, unit string) string {
	if future {
		return "reltime.future." + unit
	}
	return "reltime.past." + unit
}

// RelativeTime formats ts relative to now, e.g. "3 days ago" or "in 2 hours".
// The value is truncated toward zero. Unknown timestamps format as "".
func RelativeTime(ts content.Timestamp, now time.Time, tag language.Tag) string {
	t, ok := ts.Time()
	if !ok {
		return ""
	}

	elapsed := int64(now.Sub(t) / time.Second)
	future := elapsed < 0
	if future {
		elapsed = -elapsed
	}

	unit := timeUnits[len(timeUnits)-1]
	for _, u := range timeUnits {
		if elapsed < u.below {
			unit = u
			break
		}
	}

	_, idx, _ := relTimeMatcher.Match(tag)
	p := message.NewPrinter(relTimeTags[idx], message.Catalog(relTimeCatalog))
	return p.Sprintf(relTimeKey(future, unit.name), int(elapsed/unit.seconds))
}
