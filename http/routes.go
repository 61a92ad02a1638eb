package http

import (
	"log/slog"
	"net/http"
)

// NewRouter wires the mortgage endpoints behind rate limiting and request
// logging.
func NewRouter(handler *MortgageHandler, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	mux := http.NewServeMux()

	mux.Handle(
		"/mortgage/schedule",
		RateLimitMiddleware(
			limiter,
			logger,
			http.HandlerFunc(handler.CalculateSchedule),
		),
	)

	mux.Handle(
		"/mortgage/combined",
		RateLimitMiddleware(
			limiter,
			logger,
			http.HandlerFunc(handler.CalculateCombined),
		),
	)

	mux.HandleFunc("/healthz", handler.Health)

	return RequestLogger(logger, mux)
}
