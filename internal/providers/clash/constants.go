package clash

import "time"

const (
	// ProviderName identifies this provider in metrics and logs.
	ProviderName = "clash"

	defaultBaseURL     = "https://api.clashofclans.com"
	defaultHTTPTimeout = 10 * time.Second

	playersPath = "/v1/players/"

	// Cap on how much of an upstream error body is read.
	maxErrorBodyBytes = 64 << 10
)
