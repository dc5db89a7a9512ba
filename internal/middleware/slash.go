package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects paths with a trailing slash to the same path without it.
// Safe methods get 301. Everything else gets 308 so that uploads and deletes
// keep their method and body when the client follows the redirect.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if len(path) <= 1 || !strings.HasSuffix(path, "/") {
				next.ServeHTTP(w, r)
				return
			}

			target := strings.TrimRight(path, "/")
			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			status := http.StatusPermanentRedirect
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				status = http.StatusMovedPermanently
			}
			http.Redirect(w, r, target, status)
		})
	}
}
