package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"mortgage-planner/domain"
	"mortgage-planner/repository"
	"mortgage-planner/service"
)

// maxBodyBytes bounds request bodies; valid requests are a few hundred bytes.
const maxBodyBytes = 1 << 16

type MortgageHandler struct {
	service *service.MortgageService
	cache   repository.CacheRepository
	logger  *slog.Logger
}

// NewMortgageHandler creates a handler. cache may be nil to disable
// response caching.
func NewMortgageHandler(
	service *service.MortgageService,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *MortgageHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MortgageHandler{service: service, cache: cache, logger: logger}
}

func (h *MortgageHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respond(w, r, "schedule", req, func() (any, error) {
		report, err := h.service.CalculateSchedule(req)
		if err != nil {
			return nil, err
		}
		return newScheduleResponse(report), nil
	})
}

func (h *MortgageHandler) CalculateCombined(w http.ResponseWriter, r *http.Request) {
	var req domain.CombinedRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respond(w, r, "combined", req, func() (any, error) {
		report, err := h.service.CalculateCombined(req)
		if err != nil {
			return nil, err
		}
		return newCombinedResponse(report), nil
	})
}

func (h *MortgageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (h *MortgageHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.logger.Warn("error decoding request body", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"}, h.logger)
		return false
	}
	return true
}

// respond serves the cached body for req when present, otherwise computes,
// encodes and caches it. Only successful responses are cached.
func (h *MortgageHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	req any,
	compute func() (any, error),
) {
	ctx := r.Context()
	key, keyErr := cacheKey(route, req)

	if h.cache != nil && keyErr == nil {
		if body, ok := h.cache.Get(ctx, key); ok {
			w.Header().Set("X-Cache", "HIT")
			writeBody(w, http.StatusOK, []byte(body), h.logger)
			return
		}
	}

	resp, err := compute()
	if err != nil {
		h.logger.Info("calculation rejected", "route", route, "error", err, "request_id", RequestIDFromContext(ctx))
		writeCalculationError(w, err, h.logger)
		return
	}

	body, err := encodeJSON(resp)
	if err != nil {
		h.logger.Error("error encoding response", "error", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"}, h.logger)
		return
	}

	// Guardar en cache (no crítico si falla)
	if h.cache != nil && keyErr == nil {
		if err := h.cache.Set(ctx, key, string(body)); err != nil {
			h.logger.Warn("failed to cache response", "route", route, "error", err)
		}
		w.Header().Set("X-Cache", "MISS")
	}
	writeBody(w, http.StatusOK, body, h.logger)
}

// cacheKey derives a stable key from the decoded request, so equivalent
// bodies with different whitespace or field order share an entry.
func cacheKey(route string, req any) (string, error) {
	canonical, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return route + ":" + hex.EncodeToString(sum[:]), nil
}
