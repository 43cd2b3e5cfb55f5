package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreshBoundary(t *testing.T) {
	fetched := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 2 * time.Minute

	assert.True(t, Fresh(fetched, ttl, fetched))
	assert.True(t, Fresh(fetched, ttl, fetched.Add(ttl-time.Nanosecond)))
	assert.False(t, Fresh(fetched, ttl, fetched.Add(ttl)))
	assert.False(t, Fresh(fetched, ttl, fetched.Add(time.Hour)))
}

func TestFreshZeroTTLForcesRefresh(t *testing.T) {
	now := time.Now()
	assert.False(t, Fresh(now, 0, now))
	assert.False(t, Fresh(now, -time.Second, now))
}

func TestClassify(t *testing.T) {
	fetched := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := time.Minute

	assert.Equal(t, Miss, Classify(false, time.Time{}, ttl, fetched))
	assert.Equal(t, Hit, Classify(true, fetched, ttl, fetched.Add(30*time.Second)))
	assert.Equal(t, Stale, Classify(true, fetched, ttl, fetched.Add(2*time.Minute)))
}
