package api

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the upstream clients. Callers are expected
// to branch on these with errors.Is rather than inspecting messages.
var (
	// ErrNotFound means the upstream authoritatively reported that the
	// requested entity does not exist.
	ErrNotFound = errors.New("upstream entity not found")

	// ErrInvalidCredentials means the upstream rejected our API key.
	ErrInvalidCredentials = errors.New("upstream rejected credentials")

	// ErrNoGuild means the player exists but belongs to no guild.
	ErrNoGuild = errors.New("player has no guild")
)

// HTTPError is returned for unexpected non-2xx upstream responses.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d for %s", e.StatusCode, e.URL)
}
