package clash

import (
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := normalizeBaseURL("http://example.com/"); got != "http://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

func TestResolveTimeout(t *testing.T) {
	if got := resolveTimeout(0); got != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", got)
	}
	if got := resolveTimeout(-time.Second); got != defaultHTTPTimeout {
		t.Fatalf("expected default timeout for negative input, got %s", got)
	}
	if got := resolveTimeout(3 * time.Second); got != 3*time.Second {
		t.Fatalf("expected explicit timeout preserved, got %s", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Second},
		{" 5 ", 5 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2015 07:28:00 GMT", 0},
	}
	for _, tc := range cases {
		if got := parseRetryAfter(tc.in); got != tc.want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
