package clash

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"clash-player-proxy/internal/domain"
	"clash-player-proxy/internal/providers"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// Config controls how the clash client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches players from the Clash of Clans API. The player payload is
// returned verbatim; only errors are normalized.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	timeout    time.Duration
}

// NewClient constructs a clash client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		timeout:    resolveTimeout(cfg.Timeout),
	}
}

// errorBody is the shape of upstream error responses we care about.
type errorBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// FetchPlayer retrieves a player by normalized tag. It returns
// providers.ErrAPIKeyMissing without any outbound call when no credential is
// configured, *providers.UpstreamError for non-2xx responses, and
// *providers.TransportError for timeouts, network failures, and bodies that
// fail to decode.
func (c *Client) FetchPlayer(ctx context.Context, tag string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, providers.ErrAPIKeyMissing
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.buildRequest(ctx, tag)
	if err != nil {
		return nil, providers.ClassifyTransport(ProviderName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.ClassifyTransport(ProviderName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.upstreamError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.ClassifyTransport(ProviderName, err)
	}
	if !json.Valid(body) {
		return nil, &providers.TransportError{
			Provider: ProviderName,
			Kind:     providers.FailureDecode,
			Err:      errInvalidJSON,
		}
	}

	return json.RawMessage(body), nil
}

func (c *Client) buildRequest(ctx context.Context, tag string) (*http.Request, error) {
	// EncodeTag keeps the '#' percent-encoded in the path segment.
	url := c.baseURL + playersPath + domain.EncodeTag(tag)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// upstreamError maps a non-2xx response into a typed error. A body that fails
// to parse leaves the reason empty; the status alone drives the caller's
// message selection in that case.
func (c *Client) upstreamError(resp *http.Response) *providers.UpstreamError {
	upErr := &providers.UpstreamError{
		Provider:   ProviderName,
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		upErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return upErr
	}
	var body errorBody
	if json.Unmarshal(raw, &body) != nil {
		return upErr
	}
	upErr.Reason = body.Reason
	upErr.Message = body.Message
	return upErr
}
