package http

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
)

// RateLimitMiddleware rejects clients that exhausted their bucket with a
// JSON 429 and a Retry-After hint.
func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *slog.Logger,
	next http.Handler,
) http.Handler {

	retryAfter := strconv.Itoa(int(math.Ceil(1 / float64(limiter.limit))))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !limiter.Allow(client) {
			logger.Warn("rate limit exceeded",
				"client", client,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()),
			)
			w.Header().Set("Retry-After", retryAfter)
			writeError(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"}, logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
