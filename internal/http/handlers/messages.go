package handlers

import "net/http"

// User-facing error messages. The upstream mapping follows the Clash API's
// observed status/reason pairs; unmapped reasons fall through to the
// per-status message.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgTagRequired      = "Player tag is required"
	msgTagInvalid       = "Invalid player tag format"
	msgKeyNotConfigured = "Server configuration error: API key not configured"
	msgTimeout          = "Request timeout"
	msgNetworkError     = "Network error"
	msgInternalError    = "Internal server error"
	msgNotFound         = "not found"

	msgKeyIPNotWhitelisted = "API key IP is not whitelisted for Clash of Clans API"
	msgAccessDenied        = "API access denied. Check your Clash API key permissions"
	msgInvalidKey          = "Invalid API key or access denied"
	msgPlayerNotFound      = "Player not found"
	msgTooManyRequests     = "Too many requests, please try again later"
	msgServiceUnavailable  = "Service temporarily unavailable"
	msgFetchFailed         = "Failed to fetch player data"
)

// upstreamMessage selects the user-facing message for a non-2xx upstream
// status and its optional reason code.
func upstreamMessage(status int, reason string) string {
	switch status {
	case http.StatusForbidden:
		switch reason {
		case "accessDenied.invalidIp":
			return msgKeyIPNotWhitelisted
		case "accessDenied":
			return msgAccessDenied
		default:
			return msgInvalidKey
		}
	case http.StatusNotFound:
		return msgPlayerNotFound
	case http.StatusTooManyRequests:
		return msgTooManyRequests
	case http.StatusServiceUnavailable:
		return msgServiceUnavailable
	default:
		return msgFetchFailed
	}
}
