package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
)

// ErrAPIKeyMissing is returned before any outbound call when a provider
// requires a credential and none is configured.
var ErrAPIKeyMissing = errors.New("api key not configured")

// UpstreamError captures a non-2xx response from an upstream provider.
// Reason carries the upstream-supplied error code when the body parsed.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Reason     string
	Message    string
	RetryAfter time.Duration
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (status=%d, reason=%s)", e.Provider, msg, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// FailureKind classifies transport-level provider failures.
type FailureKind string

const (
	FailureTimeout FailureKind = "timeout"
	FailureNetwork FailureKind = "network"
	FailureDecode  FailureKind = "decode"
	FailureUnknown FailureKind = "unknown"
)

// TransportError wraps a failure that prevented a usable upstream response:
// timeouts, network errors, and undecodable success bodies.
type TransportError struct {
	Provider string
	Kind     FailureKind
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Provider, e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var trErr *TransportError
	if errors.As(err, &trErr) {
		return trErr, true
	}
	return nil, false
}

// ClassifyTransport wraps an outbound-call error with an explicit failure
// kind so callers never have to inspect error strings.
func ClassifyTransport(provider string, err error) *TransportError {
	kind := FailureUnknown
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimeout
	case isTimeout(err):
		kind = FailureTimeout
	case isNetwork(err):
		kind = FailureNetwork
	}
	return &TransportError{Provider: provider, Kind: kind, Err: err}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
