// Package api exposes the coordinate conversions over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/sextant/internal/latlng"
	"github.com/UnknownOlympus/sextant/internal/metrics"
	"golang.org/x/time/rate"
)

// Common errors returned to API clients.
var (
	ErrMissingValue = errors.New("query parameter 'value' is required")
	ErrInvalidValue = errors.New("query parameter 'value' must be a finite number")
	ErrMissingDMS   = errors.New("query parameter 'dms' is required")
	ErrRateLimited  = errors.New("too many requests")
)

// Handler serves the conversion endpoints.
type Handler struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	limiter *rate.Limiter
}

// DMSResponse is returned by the /v1/dms endpoint.
type DMSResponse struct {
	latlng.DMS
	Text string `json:"text"`
}

// DecimalResponse is returned by the /v1/decimal endpoint.
type DecimalResponse struct {
	DMS   latlng.DMS `json:"dms"`
	Value float64    `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a Handler. A nil limiter disables rate limiting.
func NewHandler(log *slog.Logger, metrics *metrics.Metrics, limiter *rate.Limiter) *Handler {
	return &Handler{log: log, metrics: metrics, limiter: limiter}
}

// Register mounts the conversion endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/dms", h.limit("dms", h.toDMS))
	mux.HandleFunc("GET /v1/ddm", h.limit("ddm", h.toDDM))
	mux.HandleFunc("GET /v1/decimal", h.limit("decimal", h.toDecimal))
}

func (h *Handler) toDMS(writer http.ResponseWriter, req *http.Request) int {
	value, hint, err := decimalQuery(req)
	if err != nil {
		return h.writeError(writer, req, http.StatusBadRequest, err)
	}

	dms := latlng.ToDegreesMinutesSeconds(value, hint)

	return h.writeJSON(writer, req, http.StatusOK, DMSResponse{DMS: dms, Text: latlng.FormatDMS(dms)})
}

func (h *Handler) toDDM(writer http.ResponseWriter, req *http.Request) int {
	value, hint, err := decimalQuery(req)
	if err != nil {
		return h.writeError(writer, req, http.StatusBadRequest, err)
	}

	return h.writeJSON(writer, req, http.StatusOK, latlng.ToDegreesMinutes(value, hint))
}

func (h *Handler) toDecimal(writer http.ResponseWriter, req *http.Request) int {
	text := req.URL.Query().Get("dms")
	if text == "" {
		return h.writeError(writer, req, http.StatusBadRequest, ErrMissingDMS)
	}

	dms, err := latlng.ParseDMS(text)
	if err != nil {
		return h.writeError(writer, req, http.StatusUnprocessableEntity, err)
	}

	return h.writeJSON(writer, req, http.StatusOK, DecimalResponse{
		DMS:   dms,
		Value: latlng.DegreesMinutesSecondsToDecimal(dms),
	})
}

func decimalQuery(req *http.Request) (float64, latlng.Hint, error) {
	query := req.URL.Query()

	raw := query.Get("value")
	if raw == "" {
		return 0, latlng.HintNone, ErrMissingValue
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(value) {
		return 0, latlng.HintNone, ErrInvalidValue
	}

	hint, err := latlng.ParseHint(query.Get("hint"))
	if err != nil {
		return 0, latlng.HintNone, err
	}

	return value, hint, nil
}

// limit wraps an endpoint with the rate limiter and request accounting.
func (h *Handler) limit(endpoint string, next func(http.ResponseWriter, *http.Request) int) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		var status int
		if h.limiter != nil && !h.limiter.Allow() {
			status = h.writeError(writer, req, http.StatusTooManyRequests, ErrRateLimited)
		} else {
			status = next(writer, req)
		}

		h.metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
}

func (h *Handler) writeError(writer http.ResponseWriter, req *http.Request, status int, err error) int {
	h.log.DebugContext(req.Context(), "Rejected conversion request",
		"path", req.URL.Path, "status", status, "error", err)

	return h.writeJSON(writer, req, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(writer http.ResponseWriter, req *http.Request, status int, body any) int {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if err := json.NewEncoder(writer).Encode(body); err != nil {
		h.log.ErrorContext(req.Context(), "failed to write reply", "error", err)
	}

	return status
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
