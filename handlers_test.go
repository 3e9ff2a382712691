package main

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/config"
	"github.com/ip812/helloadp/logger"
)

var testNow = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) NotifyComment(channelID, pageURL, username, text string) error {
	f.calls++
	return nil
}

type staticDB struct {
	db *sql.DB
}

func (s staticDB) DB() (*sql.DB, error) {
	return s.db, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{
			Env:          config.Production,
			BaseURL:      "https://hello-adp.test",
			FrameSources: []string{"'self'"},
		},
		Content: config.Content{
			Extension:          ".mdx",
			DefaultLanguage:    "en",
			Languages:          []string{"en", "zh", "ja"},
			ResolveConcurrency: 2,
		},
	}
}

func testDocs() fstest.MapFS {
	return fstest.MapFS{
		"intro.mdx": {
			Data:    []byte("---\ntitle: Getting started\ndescription: Build your first bot\nauthor: Jane\ndemo_url: https://demo.hello-adp.test/bot\n---\n# Getting started\n\n## Create the app\n\nHello.\n"),
			ModTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		"guides/workflow.mdx": {
			Data:    []byte("---\ntitle: Workflows\n---\nBody.\n"),
			ModTime: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func newTestRouter(t *testing.T, fsys fstest.MapFS, db DBWrapper) (http.Handler, *fakeNotifier) {
	t.Helper()

	cfg := testConfig()
	log := logger.NewNop()
	slack := &fakeNotifier{}
	clock := func() time.Time { return testNow }

	s := newSite(cfg, fsys, log)
	s.builder.WithClock(clock)

	hnd := &Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		log:           log,
		site:          s,
		db:            db,
		slacknotifier: slack,
		now:           clock,
	}
	return newRouter(hnd), slack
}

func do(t *testing.T, h http.Handler, method, target string, body url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Redirects(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	tests := []struct {
		name     string
		target   string
		location string
	}{
		{name: "root", target: "/", location: "/en"},
		{name: "unsupported language", target: "/fr/docs", location: "/en/docs"},
		{name: "unsupported language keeps query", target: "/fr/search?q=bot", location: "/en/search?q=bot"},
		{name: "unknown route", target: "/en/nowhere/else", location: "/en"},
		{name: "empty search", target: "/en/search?q=++", location: "/en/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestRouter_StaticFiles(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/static/css/site.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}

func TestLandingPageView(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/zh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), `<html lang="zh">`)
}

func TestDocsView(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "Getting started")
	require.Contains(t, body, "Workflows")
	require.Contains(t, body, "3 days ago")
	require.Less(t, strings.Index(body, "Getting started"), strings.Index(body, "Workflows"), "newest document is featured first")
	require.NotContains(t, body, `id="demo-modal"`)
}

func TestDocsView_Empty(t *testing.T) {
	h, _ := newTestRouter(t, fstest.MapFS{}, NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `data-empty="true"`)
	require.Contains(t, rec.Body.String(), "No tutorials yet")
}

func TestDocsView_DemoOverlay(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs?demo="+url.QueryEscape("/en/docs/intro"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `id="demo-modal"`)
	require.Contains(t, rec.Body.String(), "https://demo.hello-adp.test/bot")

	rec = do(t, h, http.MethodGet, "/en/docs?demo="+url.QueryEscape("/en/docs/guides/workflow"), nil)
	require.NotContains(t, rec.Body.String(), `id="demo-modal"`, "cards without a demo open nothing")
}

func TestDocPageView(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs/intro", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `<h2 id="create-the-app">Create the app</h2>`)
	require.Contains(t, body, `href="#create-the-app"`)
	require.Contains(t, body, "Comments are unavailable right now.")
	require.NotContains(t, body, `id="comment-list"`)
}

func TestDocPageView_FallsBackToDefaultLanguage(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/zh/docs/guides/workflow", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Workflows")
	require.Contains(t, rec.Body.String(), `<html lang="zh">`)
}

func TestDocPageView_NotFound(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs/missing/page", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Page not found")
}

func TestDocPageView_IndexPathShowsShowcase(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/docs/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Browse by category")
}

func TestSearchView(t *testing.T) {
	h, _ := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/en/search?q=workflow", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Workflows")
	require.NotContains(t, rec.Body.String(), "Build your first bot")
}

func TestComments_DatabaseNotReady(t *testing.T) {
	h, slack := newTestRouter(t, testDocs(), NewSwappableDB())

	rec := do(t, h, http.MethodGet, "/api/public/v0/comments?page=/en/docs/intro", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/public/v0/comments", url.Values{
		"page":    {"/en/docs/intro"},
		"content": {"Nice guide"},
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Zero(t, slack.calls)
}

func TestComments_RejectedBeforeQuerying(t *testing.T) {
	// sql.Open does not dial; any query against this handle would fail.
	db, err := sql.Open("postgres", "postgres://u:p@127.0.0.1:1/helloadp?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h, slack := newTestRouter(t, testDocs(), staticDB{db: db})

	tests := []struct {
		name string
		form url.Values
		code int
	}{
		{name: "blank content", form: url.Values{"page": {"/en/docs/intro"}, "content": {"   "}}, code: http.StatusBadRequest},
		{name: "too long", form: url.Values{"page": {"/en/docs/intro"}, "content": {strings.Repeat("a", 2001)}}, code: http.StatusBadRequest},
		{name: "relative page", form: url.Values{"page": {"en/docs/intro"}, "content": {"hi"}}, code: http.StatusBadRequest},
		{name: "unknown page", form: url.Values{"page": {"/en/docs/missing"}, "content": {"hi"}}, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/public/v0/comments", tt.form)
			require.Equal(t, tt.code, rec.Code)
		})
	}

	rec := do(t, h, http.MethodGet, "/api/public/v0/comments?page=/en/docs/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, slack.calls)
}

func TestSplitSlugs(t *testing.T) {
	require.Nil(t, splitSlugs(""))
	require.Equal(t, []string{"guides", "bot"}, splitSlugs("/guides//bot/"))
}
