package constants

import "time"

const (
	// How long a cached Mojang profile is trusted before a refetch.
	ProfileCacheTTL = 2 * time.Minute

	// Hypixel player stats change about as often as profiles do.
	PlayerStatsCacheTTL = 2 * time.Minute

	// Guild rosters move slowly, so they get a longer window.
	GuildCacheTTL = 12 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Concurrent Mojang fallback lookups when resolving guild member
	// names. Kept small to stay inside Mojang rate limits.
	NameResolverWorkers = 4

	// Default cap on the roster size returned to callers.
	DefaultGuildMembers = 10

	// Mojang usernames are at most 16 characters; anything longer is
	// treated as a UUID.
	MaxUsernameLength = 16
)
