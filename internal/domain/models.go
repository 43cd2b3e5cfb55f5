package domain

import (
	"time"
)

// Profile is a cached Mojang identity: who the player is and what they
// currently wear. Image payloads are base64-encoded PNGs ready for the
// frontend.
type Profile struct {
	UUID         string
	Username     string
	HasCape      bool
	CapeName     *string
	SkinShowcase *string
	CapeFront    *string
	CapeBack     *string
	FetchedAt    time.Time
}

// PlayerStats is the cached Hypixel view of a player. FirstLogin and Rank
// are nil when Hypixel has no record of them; GuildID is nil when the
// player is guildless.
type PlayerStats struct {
	UUID       string
	FirstLogin *time.Time
	Rank       *string
	GuildID    *string
	FetchedAt  time.Time
}

// Guild is a cached guild roster, bounded to the member cap it was
// fetched with rather than the guild's true size.
type Guild struct {
	ID          string
	Name        string
	MemberUUIDs []string
	FetchedAt   time.Time
}

// ResolvedMember pairs a roster UUID with a display name. Name is the
// "N/A" sentinel when resolution failed. Never persisted.
type ResolvedMember struct {
	UUID string
	Name string
}

// UnresolvedName marks a guild member whose name lookup failed.
const UnresolvedName = "N/A"

// Favorite is a player the user pinned for quick lookup.
type Favorite struct {
	UUID      string
	Username  string
	CreatedAt time.Time
}
