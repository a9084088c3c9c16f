package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"time"

	"clash-player-proxy/internal/domain"
	"clash-player-proxy/internal/logging"
	"clash-player-proxy/internal/providers"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the player provider.
type Handler struct {
	provider providers.PlayerProvider
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(provider providers.PlayerProvider, logger *slog.Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	applyCORS(w)

	// Preflight short-circuits before any routing or validation.
	if r.Method == nethttp.MethodOptions {
		w.WriteHeader(nethttp.StatusOK)
		return
	}

	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/player":
		h.PlayerLookup(w, r)
	default:
		writeError(w, nethttp.StatusNotFound, msgNotFound, nil, false, h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, nethttp.StatusMethodNotAllowed, msgMethodNotAllowed, nil, false, h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, nethttp.StatusServiceUnavailable, "shutting down", nil, false, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// PlayerLookup validates and normalizes the tag query parameter, fetches the
// player from the upstream provider, and renders the response envelope.
func (h *Handler) PlayerLookup(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	if r.Method != nethttp.MethodGet {
		writeError(w, nethttp.StatusMethodNotAllowed, msgMethodNotAllowed, nil, false, logger)
		return
	}

	// Coercion rule for multi-valued parameters: take the first value,
	// reject when none is present.
	values := r.URL.Query()["tag"]
	if len(values) == 0 || values[0] == "" {
		writeError(w, nethttp.StatusBadRequest, msgTagRequired, nil, false, logger)
		return
	}

	// The value is unescaped once more on top of transport decoding, so
	// clients that send an encoded '#' (%23) and clients that send it raw
	// both resolve to the same tag.
	decoded, err := url.QueryUnescape(values[0])
	if err != nil {
		writeError(w, nethttp.StatusBadRequest, msgTagInvalid, nil, false, logger)
		return
	}

	tag, err := domain.NormalizeTag(decoded)
	if err != nil {
		writeError(w, nethttp.StatusBadRequest, msgTagInvalid, nil, false, logger)
		return
	}

	data, err := h.provider.FetchPlayer(r.Context(), tag)
	if err != nil {
		h.writeFetchError(w, logger, tag, err)
		return
	}

	logging.Info(logger, "player lookup succeeded", logging.FieldTag, tag, "bytes", len(data))
	writeJSON(w, nethttp.StatusOK, domain.LookupResponse{
		Data:      data,
		Success:   true,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}, logger)
}

// writeFetchError translates typed provider errors into the failure envelope.
func (h *Handler) writeFetchError(w nethttp.ResponseWriter, logger *slog.Logger, tag string, err error) {
	logging.Warn(logger, "player lookup failed", logging.FieldTag, tag, "error", err)

	if errors.Is(err, providers.ErrAPIKeyMissing) {
		writeError(w, nethttp.StatusInternalServerError, msgKeyNotConfigured, nil, false, logger)
		return
	}

	if upErr, ok := providers.AsUpstreamError(err); ok {
		details := upErr.Reason
		if details == "" {
			details = "Unknown error"
		}
		writeError(w, upErr.StatusCode, upstreamMessage(upErr.StatusCode, upErr.Reason), details, true, logger)
		return
	}

	if trErr, ok := providers.AsTransportError(err); ok {
		msg := msgInternalError
		switch trErr.Kind {
		case providers.FailureTimeout:
			msg = msgTimeout
		case providers.FailureNetwork:
			msg = msgNetworkError
		}
		writeError(w, nethttp.StatusInternalServerError, msg, trErr.Err.Error(), false, logger)
		return
	}

	writeError(w, nethttp.StatusInternalServerError, msgInternalError, err.Error(), false, logger)
}
