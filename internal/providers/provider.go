package providers

import (
	"context"
	"encoding/json"
)

// PlayerProvider defines how upstream player data is fetched.
// The tag parameter must already be normalized (upper-case, no leading '#');
// providers are not expected to re-validate it.
type PlayerProvider interface {
	FetchPlayer(ctx context.Context, tag string) (json.RawMessage, error)
}
