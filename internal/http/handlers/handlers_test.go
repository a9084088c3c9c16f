package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clash-player-proxy/internal/domain"
	"clash-player-proxy/internal/providers"
	"clash-player-proxy/internal/testutil"
)

var errBoom = errors.New("connection refused by peer")

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	testutil.DecodeJSON(t, rr, &resp)
	if !resp.Error {
		t.Fatalf("expected error flag set, got %+v", resp)
	}
	return resp
}

func assertCORS(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != corsAllowMethods {
		t.Fatalf("unexpected allow-methods %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != corsAllowHeaders {
		t.Fatalf("unexpected allow-headers %q", got)
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(&testutil.StubProvider{}, nil)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assertCORS(t, rr)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	h := NewHandler(&testutil.StubProvider{}, nil)

	rr := testutil.Serve(h, http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	assertCORS(t, rr)
}

func TestOptionsShortCircuitsWithCORS(t *testing.T) {
	provider := &testutil.StubProvider{}
	h := NewHandler(provider, nil)

	for _, path := range []string{"/player", "/player?tag=bogus!!", "/health", "/anything"} {
		rr := testutil.Serve(h, http.MethodOptions, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		assertCORS(t, rr)
		if rr.Body.Len() != 0 {
			t.Fatalf("expected empty preflight body for %s, got %q", path, rr.Body.String())
		}
	}
	if calls := provider.Calls(); len(calls) != 0 {
		t.Fatalf("expected no provider calls during preflight, got %v", calls)
	}
}

func TestNonGetMethodsRejected(t *testing.T) {
	h := NewHandler(&testutil.StubProvider{}, nil)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead} {
		rr := testutil.Serve(h, method, "/player?tag=2PP", nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		assertCORS(t, rr)

		resp := decodeError(t, rr)
		if resp.Message != msgMethodNotAllowed {
			t.Fatalf("unexpected message %q for %s", resp.Message, method)
		}
	}
}

func TestMissingTagRejected(t *testing.T) {
	provider := &testutil.StubProvider{}
	h := NewHandler(provider, nil)

	for _, path := range []string{"/player", "/player?tag="} {
		rr := testutil.Serve(h, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)

		resp := decodeError(t, rr)
		if resp.Message != msgTagRequired {
			t.Fatalf("unexpected message %q for %s", resp.Message, path)
		}
	}
	if calls := provider.Calls(); len(calls) != 0 {
		t.Fatalf("expected no provider calls, got %v", calls)
	}
}

func TestMalformedQueryPairTreatedAsMissing(t *testing.T) {
	provider := &testutil.StubProvider{}
	h := NewHandler(provider, nil)

	// A pair that is invalid at the transport level is dropped during query
	// parsing, so the tag never arrives and the request reads as missing one.
	rr := testutil.Serve(h, http.MethodGet, "/player?tag=%ZZ", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	resp := decodeError(t, rr)
	if resp.Message != msgTagRequired {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if calls := provider.Calls(); len(calls) != 0 {
		t.Fatalf("expected no provider calls, got %v", calls)
	}
}

func TestInvalidTagRejected(t *testing.T) {
	provider := &testutil.StubProvider{}
	h := NewHandler(provider, nil)

	// %23ABC%21 decodes to "#ABC!", which falls outside the tag alphabet.
	rr := testutil.Serve(h, http.MethodGet, "/player?tag=%23ABC%21", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	resp := decodeError(t, rr)
	if resp.Message != msgTagInvalid {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if calls := provider.Calls(); len(calls) != 0 {
		t.Fatalf("expected no provider calls, got %v", calls)
	}
}

func TestUndecodableTagRejected(t *testing.T) {
	h := NewHandler(&testutil.StubProvider{}, nil)

	// The transport layer decodes once; the handler's second unescape sees
	// the stray percent sign and fails.
	rr := testutil.Serve(h, http.MethodGet, "/player?tag=2PP%2541%25", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	resp := decodeError(t, rr)
	if resp.Message != msgTagInvalid {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestFirstTagValueWins(t *testing.T) {
	provider := &testutil.StubProvider{Data: json.RawMessage(`{}`)}
	h := NewHandler(provider, nil)

	rr := testutil.Serve(h, http.MethodGet, "/player?tag=%232pp&tag=8QU", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	calls := provider.Calls()
	if len(calls) != 1 || calls[0] != "2PP" {
		t.Fatalf("expected single normalized fetch of 2PP, got %v", calls)
	}
}

func TestMissingCredentialSkipsUpstream(t *testing.T) {
	provider := &testutil.StubProvider{Err: providers.ErrAPIKeyMissing}
	h := NewHandler(provider, nil)

	rr := testutil.Serve(h, http.MethodGet, "/player?tag=%232PP", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	resp := decodeError(t, rr)
	if resp.Message != msgKeyNotConfigured {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestUpstreamErrorsMapped(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		reason      string
		wantMessage string
		wantDetails string
	}{
		{"403 invalid ip", 403, "accessDenied.invalidIp", msgKeyIPNotWhitelisted, "accessDenied.invalidIp"},
		{"403 access denied", 403, "accessDenied", msgAccessDenied, "accessDenied"},
		{"403 other reason", 403, "somethingElse", msgInvalidKey, "somethingElse"},
		{"403 no reason", 403, "", msgInvalidKey, "Unknown error"},
		{"404", 404, "notFound", msgPlayerNotFound, "notFound"},
		{"429", 429, "", msgTooManyRequests, "Unknown error"},
		{"503", 503, "inMaintenance", msgServiceUnavailable, "inMaintenance"},
		{"502 falls through", 502, "", msgFetchFailed, "Unknown error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &testutil.StubProvider{Err: &providers.UpstreamError{
				Provider:   "clash",
				StatusCode: tc.status,
				Reason:     tc.reason,
			}}
			h := NewHandler(provider, nil)

			rr := testutil.Serve(h, http.MethodGet, "/player?tag=%232PP", nil)
			testutil.AssertStatus(t, rr, tc.status)
			assertCORS(t, rr)

			resp := decodeError(t, rr)
			if resp.Message != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, resp.Message)
			}
			if resp.Status != tc.status {
				t.Fatalf("expected envelope status %d, got %d", tc.status, resp.Status)
			}
			if resp.Details != tc.wantDetails {
				t.Fatalf("expected details %q, got %v", tc.wantDetails, resp.Details)
			}
		})
	}
}

func TestTransportFailuresMapped(t *testing.T) {
	cases := []struct {
		name        string
		kind        providers.FailureKind
		wantMessage string
	}{
		{"timeout", providers.FailureTimeout, msgTimeout},
		{"network", providers.FailureNetwork, msgNetworkError},
		{"decode", providers.FailureDecode, msgInternalError},
		{"unknown", providers.FailureUnknown, msgInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &testutil.StubProvider{Err: &providers.TransportError{
				Provider: "clash",
				Kind:     tc.kind,
				Err:      errBoom,
			}}
			h := NewHandler(provider, nil)

			rr := testutil.Serve(h, http.MethodGet, "/player?tag=%232PP", nil)
			testutil.AssertStatus(t, rr, http.StatusInternalServerError)

			resp := decodeError(t, rr)
			if resp.Message != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, resp.Message)
			}
			if resp.Details != errBoom.Error() {
				t.Fatalf("expected raw failure details, got %v", resp.Details)
			}
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	provider := &testutil.StubProvider{Data: json.RawMessage(`{"name":"Alice","tag":"#ABC123"}`)}
	h := NewHandler(provider, nil)
	fixedNow := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	h.now = func() time.Time { return fixedNow }

	rr := testutil.Serve(h, http.MethodGet, "/player?tag=%232PP", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assertCORS(t, rr)

	var resp domain.LookupResponse
	testutil.DecodeJSON(t, rr, &resp)

	if !resp.Success {
		t.Fatalf("expected success flag, got %+v", resp)
	}
	if resp.Timestamp != "2024-05-01T12:30:00Z" {
		t.Fatalf("unexpected timestamp %q", resp.Timestamp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}

	var player map[string]any
	if err := json.Unmarshal(resp.Data, &player); err != nil {
		t.Fatalf("data not valid JSON: %v", err)
	}
	if player["name"] != "Alice" {
		t.Fatalf("expected upstream payload passed through, got %v", player)
	}
}
