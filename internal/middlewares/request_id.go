package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// headerRequestID is the header used to propagate request IDs between
// services and back to the client
const headerRequestID = "X-Request-ID"

// RequestIDMiddleware tags each request with an ID for log correlation.
// An ID supplied by the caller is kept so traces survive proxies.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(headerRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), requestIDKey, requestID),
		))
	})
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
