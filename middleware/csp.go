package middleware

import (
	"net/http"
	"strings"
)

// ContentSecurityPolicy allows embedding demos from frameSources and loading
// avatars from any https host.
func ContentSecurityPolicy(frameSources []string) func(http.Handler) http.Handler {
	policy := buildPolicy(frameSources)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Security-Policy", policy)
			next.ServeHTTP(w, r)
		})
	}
}

func buildPolicy(frameSources []string) string {
	frames := "'self'"
	if len(frameSources) > 0 {
		frames = strings.Join(frameSources, " ")
	}

	directives := []string{
		"default-src 'self'",
		"frame-ancestors 'self'",
		"frame-src " + frames,
		"child-src " + frames,
		"img-src 'self' data: https:",
		"script-src 'self' 'unsafe-inline' https://cdn.tailwindcss.com",
		"style-src 'self' 'unsafe-inline'",
		"connect-src 'self'",
	}
	return strings.Join(directives, "; ") + ";"
}
