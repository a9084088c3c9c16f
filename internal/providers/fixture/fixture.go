package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"clash-player-proxy/internal/providers"
)

// ProviderName identifies the fixture provider in metrics and logs.
const ProviderName = "fixture"

// Provider returns a static player payload useful for local testing and
// bootstrapping without an API key.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayer returns a deterministic example player for the given tag.
// Unknown tags are simulated with an upstream 404 so handler error paths can
// be exercised locally.
func (p *Provider) FetchPlayer(ctx context.Context, tag string) (json.RawMessage, error) {
	_ = ctx

	if tag == "0000" {
		return nil, &providers.UpstreamError{
			Provider:   ProviderName,
			StatusCode: 404,
			Reason:     "notFound",
		}
	}

	payload := fmt.Sprintf(`{
		"tag": "#%s",
		"name": "Fixture Player",
		"townHallLevel": 14,
		"expLevel": 180,
		"trophies": 5200,
		"bestTrophies": 5600,
		"warStars": 1450,
		"clan": {
			"tag": "#2PP",
			"name": "Fixture Clan",
			"clanLevel": 20
		}
	}`, tag)

	return json.RawMessage(payload), nil
}
