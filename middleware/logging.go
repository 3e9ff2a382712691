package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ip812/helloadp/logger"
)

func Logging(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			reqLog := log.With("request_id", chimw.GetReqID(r.Context()))
			msg := "%s %s -> %d (%s)"
			args := []any{r.Method, r.URL.Path, status(ww), time.Since(start)}
			if status(ww) >= http.StatusInternalServerError {
				reqLog.Error(msg, args...)
				return
			}
			reqLog.Debug(msg, args...)
		})
	}
}

func status(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
