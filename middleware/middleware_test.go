package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/o11y"
)

func TestRequestIDHeaderMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(RequestIDHeaderMiddleware)
	mux.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(Metrics)
	mux.Get("/{lang}/docs/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := o11y.HTTPRequests.WithLabelValues("/{lang}/docs/*", http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/docs/guides/a", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestLogging_ErrorsOnServerFailures(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, zerolog.InfoLevel)

	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Contains(t, buf.String(), `"level":"error"`)
	require.Contains(t, buf.String(), "GET /boom -> 502")

	buf.Reset()
	ok := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fine", nil))
	require.Empty(t, buf.String(), "successful requests log at debug")
}

func TestContentSecurityPolicy(t *testing.T) {
	h := ContentSecurityPolicy([]string{"'self'", "https://giscus.app"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	csp := rec.Header().Get("Content-Security-Policy")
	require.Contains(t, csp, "frame-src 'self' https://giscus.app;")
	require.Contains(t, csp, "img-src 'self' data: https:;")

	require.Contains(t, buildPolicy(nil), "frame-src 'self';")
}
