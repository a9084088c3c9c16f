package server

import (
	"log/slog"
	"strings"

	"clash-player-proxy/internal/config"
	"clash-player-proxy/internal/metrics"
	"clash-player-proxy/internal/providers"
	"clash-player-proxy/internal/providers/clash"
	"clash-player-proxy/internal/providers/fixture"
)

// providerFactory assembles the provider with the instrumentation wrapper.
// No retry or rate-limit wrappers: a single upstream failure is a single
// reported failure.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PlayerProvider {
	base, name := selectProvider(cfg)
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config) (providers.PlayerProvider, string) {
	switch strings.ToLower(cfg.Provider) {
	case fixture.ProviderName:
		return fixture.New(), fixture.ProviderName
	default:
		client := clash.NewClient(clash.Config{
			BaseURL: cfg.Clash.BaseURL,
			APIKey:  cfg.Clash.APIKey,
			Timeout: cfg.Clash.Timeout,
		})
		return client, clash.ProviderName
	}
}
