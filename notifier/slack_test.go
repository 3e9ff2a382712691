package notifier

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/logger"
)

type fakeSlack struct {
	mu       sync.Mutex
	channels []string
	texts    []string
}

func newFakeSlack(t *testing.T) (*fakeSlack, *httptest.Server) {
	f := &fakeSlack{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.mu.Lock()
		f.channels = append(f.channels, r.PostForm.Get("channel"))
		f.texts = append(f.texts, r.PostForm.Get("text"))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1700000000.000100"}`))
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func TestSlack_SendMsg(t *testing.T) {
	fake, srv := newFakeSlack(t)
	s := NewSlack("xoxb-test", logger.NewNop(), slack.OptionAPIURL(srv.URL+"/"))

	require.NoError(t, s.NotifyComment("C1", "/en/docs/intro", "user_42", "nice"))

	require.Equal(t, []string{"C1"}, fake.channels)
	require.Contains(t, fake.texts[0], "*user_42*")
	require.Contains(t, fake.texts[0], "> nice")
}

func TestSlack_ReturnsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	t.Cleanup(srv.Close)
	s := NewSlack("xoxb-test", logger.NewNop(), slack.OptionAPIURL(srv.URL+"/"))

	err := s.NotifyComment("C404", "/en/docs/intro", "user_42", "nice")
	require.ErrorContains(t, err, "channel_not_found")

	err = s.NotifyPublished("C404", "https://hello-adp.test", []content.Page{{URL: "/en/docs/intro", Title: "Intro"}})
	require.ErrorContains(t, err, "channel_not_found")
}

func TestSlack_DisabledWithoutToken(t *testing.T) {
	fake, srv := newFakeSlack(t)
	s := NewSlack("", logger.NewNop(), slack.OptionAPIURL(srv.URL+"/"))

	require.NoError(t, s.SendMsg("C1", "hello"))
	require.NoError(t, NewSlack("xoxb-test", logger.NewNop(), slack.OptionAPIURL(srv.URL+"/")).SendMsg("", "hello"))
	require.Empty(t, fake.texts)
}

func TestSlack_NotifyPublishedSkipsEmpty(t *testing.T) {
	fake, srv := newFakeSlack(t)
	s := NewSlack("xoxb-test", logger.NewNop(), slack.OptionAPIURL(srv.URL+"/"))

	require.NoError(t, s.NotifyPublished("C2", "https://adp.example.com", nil))
	require.Empty(t, fake.texts)
}

func TestCommentMessage_TruncatesAndQuotes(t *testing.T) {
	msg := CommentMessage("/en/docs/a", "user_1", strings.Repeat("字", 300)+"\nsecond")

	require.True(t, strings.HasPrefix(msg, "New comment by *user_1* on /en/docs/a\n> "))
	require.Contains(t, msg, "…")
	require.NotContains(t, msg, "second")
}

func TestPublishedMessage(t *testing.T) {
	pages := []content.Page{
		{URL: "/en/docs/b", Title: "B", Lang: "en"},
		{URL: "/zh/docs/b", Title: "乙", Lang: "zh"},
	}

	require.Equal(t,
		"2 new docs published:\n• <https://adp.example.com/en/docs/b|B> (en)\n• <https://adp.example.com/zh/docs/b|乙> (zh)",
		PublishedMessage("https://adp.example.com", pages))
	require.Equal(t,
		"New doc published:\n• <https://adp.example.com/en/docs/b|B> (en)",
		PublishedMessage("https://adp.example.com", pages[:1]))
}
