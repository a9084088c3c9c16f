package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"clash-player-proxy/internal/logging"
	"clash-player-proxy/internal/metrics"
)

// InstrumentedProvider wraps a PlayerProvider with attempt metrics and
// structured logging. It performs no retries; a single upstream failure is a
// single reported failure.
type InstrumentedProvider struct {
	inner    PlayerProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider wraps the given provider. name is the provider name
// used in metrics and log fields.
func NewInstrumentedProvider(inner PlayerProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) *InstrumentedProvider {
	return &InstrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

// FetchPlayer delegates to the wrapped provider, recording latency, errors,
// and rate-limit hits.
func (p *InstrumentedProvider) FetchPlayer(ctx context.Context, tag string) (json.RawMessage, error) {
	start := time.Now()
	data, err := p.inner.FetchPlayer(ctx, tag)
	duration := time.Since(start)

	p.recorder.RecordProviderAttempt(p.name, duration, err)

	if err != nil {
		if upErr, ok := AsUpstreamError(err); ok && upErr.StatusCode == 429 {
			p.recorder.RecordRateLimit(p.name, upErr.RetryAfter)
		}
		logging.Warn(p.logger, "player fetch failed",
			slog.String(logging.FieldProvider, p.name),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logging.Info(p.logger, "player fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}
