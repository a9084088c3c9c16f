package testutil

import (
	"context"
	"encoding/json"
	"sync"
)

// StubProvider is a PlayerProvider that returns canned data and records calls.
type StubProvider struct {
	mu   sync.Mutex
	Data json.RawMessage
	Err  error

	calls []string
}

// FetchPlayer records the tag and returns the configured data or error.
func (p *StubProvider) FetchPlayer(ctx context.Context, tag string) (json.RawMessage, error) {
	_ = ctx
	p.mu.Lock()
	p.calls = append(p.calls, tag)
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Data, nil
}

// Calls returns the tags fetched so far.
func (p *StubProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}
