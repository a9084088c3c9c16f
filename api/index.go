package handler

import (
	"net/http"

	"clash-player-proxy/internal/config"
	"clash-player-proxy/internal/logging"
	"clash-player-proxy/internal/metrics"
	"clash-player-proxy/internal/server"
)

var defaultHandler http.Handler

func init() {
	// No metrics listener in this runtime; the in-memory recorder still
	// backs the per-request instrumentation.
	defaultHandler = server.NewHTTPHandler(config.Load(), logging.NewLogger(), metrics.NewRecorder())
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultHandler.ServeHTTP(w, r)
}
