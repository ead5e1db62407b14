package middlewares

import (
	"net/http"
	"slices"
	"strings"
)

// CORSMiddleware sets the CORS headers for the configured origins and
// short-circuits preflight requests
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only browser requests carry an Origin header; everything
			// else passes through without CORS headers.
			if origin := r.Header.Get("Origin"); origin != "" {
				if allowed := resolveOrigin(origin, allowedOrigins, wildcard); allowed != "" {
					w.Header().Set("Access-Control-Allow-Origin", allowed)
				}
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "3600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// resolveOrigin returns the Allow-Origin value for a request origin:
// "*" when every origin is allowed, the origin itself when it matches
// the configured list, or "" when it is not allowed
func resolveOrigin(requestOrigin string, allowedOrigins []string, wildcard bool) string {
	if wildcard {
		return "*"
	}

	for _, allowed := range allowedOrigins {
		if strings.EqualFold(requestOrigin, allowed) {
			return requestOrigin
		}
	}

	return ""
}
