package service

import (
	"context"
	"errors"
	"fakemc-server/internal/api"
	"fakemc-server/internal/domain"
)

// The upstream clients are consumed through these interfaces so the
// reconciliation flow can be exercised against fakes.

// IdentityGateway resolves a player identity from Mojang. Exactly one of
// name or uuid is non-empty per call.
type IdentityGateway interface {
	Fetch(ctx context.Context, name, uuid string) (*api.IdentityProfile, error)
}

// StatsGateway fetches Hypixel player stats and guild rosters.
type StatsGateway interface {
	GetPlayer(ctx context.Context, uuid string) (*api.HypixelPlayer, error)
	GetGuild(ctx context.Context, uuid string, maxMembers int) (*api.GuildInfo, error)
}

// HypixelStatusGateway probes whether a player is online on Hypixel.
type HypixelStatusGateway interface {
	IsOnline(ctx context.Context, uuid string) (bool, error)
}

// WynncraftStatusGateway probes whether a player is online on Wynncraft.
type WynncraftStatusGateway interface {
	IsOnline(ctx context.Context, name string) (bool, error)
}

// statusFromUpstreamErr maps a gateway error onto the result taxonomy.
func statusFromUpstreamErr(err error) domain.Status {
	switch {
	case errors.Is(err, api.ErrNotFound):
		return domain.StatusNotFound
	case errors.Is(err, api.ErrInvalidCredentials):
		return domain.StatusAuthRejected
	default:
		return domain.StatusUnavailable
	}
}
