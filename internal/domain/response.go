package domain

import "encoding/json"

// LookupResponse is the success envelope returned to callers. Data carries the
// upstream player payload verbatim.
type LookupResponse struct {
	Data      json.RawMessage `json:"data"`
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
}

// ErrorResponse is the failure envelope. Status and Details are omitted when
// the failure carries no upstream context.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details any    `json:"details,omitempty"`
}
