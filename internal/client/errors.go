package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired means no valid access token can be obtained; tokens
	// have been cleared and the user must authenticate again.
	ErrSessionExpired = errors.New("session expired")
	// ErrNetwork wraps transport failures where the backend was never
	// reached. These are not retried here.
	ErrNetwork = errors.New("network failure")
)

// APIError is any non-2xx response other than a recovered 401. The original
// status and payload are preserved for the caller to interpret.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, detail)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Detail extracts the "detail" field from the backend's JSON error
// payloads. Returns "" when the payload has no such field.
func (e *APIError) Detail() string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
