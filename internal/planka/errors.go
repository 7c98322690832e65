package planka

import (
	"errors"
	"fmt"
)

// Transport failures are classified into two sentinels so callers can
// pick the right user-facing message without inspecting url.Error
// internals. HTTP-level failures carry the status code instead.
var (
	// ErrTimeout marks a request that exceeded the client timeout.
	ErrTimeout = errors.New("planka: request timed out")

	// ErrConnect marks a request that never reached the server.
	ErrConnect = errors.New("planka: connection failed")
)

// StatusError is returned for any response with a 4xx/5xx status.
type StatusError struct {
	Status   int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("planka: %s returned HTTP %d", e.Endpoint, e.Status)
}
