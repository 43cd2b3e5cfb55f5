// Package cache holds the staleness policy applied to every stored
// entity. It is pure: callers supply the record's fetch time, the TTL
// they want enforced, and the current time.
package cache

import "time"

// Fresh reports whether a record fetched at lastFetch is still inside
// its TTL window at now. A zero or negative TTL is never fresh, which
// is how callers force a refresh.
func Fresh(lastFetch time.Time, ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(lastFetch) < ttl
}

// State classifies a cache lookup outcome.
type State int

const (
	// Miss means no record exists.
	Miss State = iota
	// Stale means a record exists but its TTL has elapsed.
	Stale
	// Hit means a record exists and is within its TTL.
	Hit
)

// Classify maps a lookup to Miss/Stale/Hit. found is false when the
// store had no record at all.
func Classify(found bool, lastFetch time.Time, ttl time.Duration, now time.Time) State {
	if !found {
		return Miss
	}
	if !Fresh(lastFetch, ttl, now) {
		return Stale
	}
	return Hit
}

func (s State) String() string {
	switch s {
	case Miss:
		return "miss"
	case Stale:
		return "stale"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}
