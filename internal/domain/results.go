package domain

// Status tags the outcome of a lookup so callers can switch on failure
// kinds instead of comparing error strings.
type Status string

const (
	// StatusSuccess means a complete record was produced.
	StatusSuccess Status = "success"

	// StatusNotFound means the upstream authoritatively said the entity
	// does not exist. Nothing was cached.
	StatusNotFound Status = "not_found"

	// StatusUnavailable covers transport failures, HTTP errors and
	// timeouts. The cache was left untouched and a retry may succeed.
	StatusUnavailable Status = "upstream_unavailable"

	// StatusAuthRejected means the upstream refused our credentials.
	StatusAuthRejected Status = "auth_rejected"
)

// Source records where a successful lookup was served from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceUpstream Source = "upstream"
)

// ProfileResult is the tagged outcome of a profile lookup. Profile is
// non-nil only when Status is StatusSuccess.
type ProfileResult struct {
	Status  Status
	Source  Source
	Profile *Profile
}

// PlayerGuildResult is the tagged outcome of a combined Hypixel
// player-and-guild lookup. Stats is non-nil only on success. GuildName
// is nil and Members empty when the player has no guild.
type PlayerGuildResult struct {
	Status    Status
	Source    Source
	Stats     *PlayerStats
	GuildName *string
	Members   []ResolvedMember
}
