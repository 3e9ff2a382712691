package articles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ip812/helloadp/content"
)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		tag  language.Tag
		want string
	}{
		{"seconds", 59 * time.Second, language.English, "59 seconds ago"},
		{"one minute", 60 * time.Second, language.English, "1 minute ago"},
		{"truncates", 119 * time.Minute, language.English, "1 hour ago"},
		{"days", 3 * 24 * time.Hour, language.English, "3 days ago"},
		{"weeks", 14 * 24 * time.Hour, language.English, "2 weeks ago"},
		{"months", 65 * 24 * time.Hour, language.English, "2 months ago"},
		{"years", 800 * 24 * time.Hour, language.English, "2 years ago"},
		{"future", -2 * time.Hour, language.English, "in 2 hours"},
		{"zh", 3 * 24 * time.Hour, language.Chinese, "3天前"},
		{"zh future", -5 * time.Minute, language.Chinese, "5分钟后"},
		{"ja", 3 * time.Hour, language.Japanese, "3 時間前"},
		{"zh singular", 24 * time.Hour, language.Chinese, "1天前"},
		{"ja singular future", -time.Minute, language.Japanese, "1 分後"},
		{"unsupported falls back to english", 24 * time.Hour, language.French, "1 day ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTime(content.Resolved(now.Add(-tt.ago)), now, tt.tag)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeTime_Unknown(t *testing.T) {
	require.Empty(t, RelativeTime(content.Unknown(), now, language.English))
}

func TestRelativeTime_EpochZeroIsKnown(t *testing.T) {
	got := RelativeTime(content.Resolved(time.Unix(0, 0)), now, language.English)
	require.Equal(t, "55 years ago", got)
}

func TestRelTimeCatalog_CoversEveryUnit(t *testing.T) {
	for _, tag := range relTimeTags {
		for _, u := range timeUnits {
			for _, future := range []bool{false, true} {
				p := message.NewPrinter(tag, message.Catalog(newRelTimeCatalog()))
				got := p.Sprintf(relTimeKey(future, u.name), 2)
				require.Contains(t, got, "2", "%s %s future=%v", tag, u.name, future)
				require.NotContains(t, got, "reltime.", "%s %s", tag, u.name)
			}
		}
	}
}
