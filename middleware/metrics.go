package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ip812/helloadp/o11y"
)

// Metrics records request counts and latency per chi route pattern. Requests
// no route matched are recorded as "unmatched".
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		o11y.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(status(ww))).Inc()
		o11y.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
