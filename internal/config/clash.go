package config

import "time"

const (
	envClashBaseURL = "CLASH_BASE_URL"
	envClashAPIKey  = "CLASH_API_KEY"
	envClashTimeout = "CLASH_TIMEOUT"

	defaultClashBaseURL = "https://api.clashofclans.com"
	defaultClashTimeout = 10 * time.Second
)

// ClashConfig controls how we talk to the Clash of Clans API.
type ClashConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadClash() ClashConfig {
	return ClashConfig{
		BaseURL: envOrDefault(envClashBaseURL, defaultClashBaseURL),
		APIKey:  envOrDefault(envClashAPIKey, ""),
		Timeout: durationEnvOrDefault(envClashTimeout, defaultClashTimeout),
	}
}
