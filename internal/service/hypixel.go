package service

import (
	"context"
	"database/sql"
	"errors"
	"fakemc-server/internal/api"
	"fakemc-server/internal/cache"
	"fakemc-server/internal/config"
	"fakemc-server/internal/constants"
	"fakemc-server/internal/domain"
	"fakemc-server/internal/repository"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// NameResolver is the member-name resolution half of the engine,
// implemented by ProfileService.
type NameResolver interface {
	ResolveNames(ctx context.Context, uuids []string) []domain.ResolvedMember
}

type HypixelService struct {
	hypixel  StatsGateway
	stats    *repository.StatsRepository
	guilds   *repository.GuildRepository
	resolver NameResolver
	cfg      *config.Config
	logger   zerolog.Logger
	now      func() time.Time
}

func NewHypixelService(
	hypixel StatsGateway,
	stats *repository.StatsRepository,
	guilds *repository.GuildRepository,
	resolver NameResolver,
	cfg *config.Config,
	logger zerolog.Logger,
) *HypixelService {
	return &HypixelService{
		hypixel:  hypixel,
		stats:    stats,
		guilds:   guilds,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// ResolvePlayerAndGuild returns the Hypixel view of a player: stats plus
// the resolved guild roster capped at maxMembers.
//
// Player stats and guild roster are cached with independent TTLs. A
// fresh stats entry alone never pins a stale roster: when the cached
// stats point at a guild whose cache entry is stale or absent, the whole
// lookup falls through to a full upstream refresh. A non-nil error
// alongside a success result means the fetch succeeded but could not be
// cached.
func (s *HypixelService) ResolvePlayerAndGuild(ctx context.Context, uuid string, maxMembers int) (domain.PlayerGuildResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if !s.cfg.HypixelEnabled() {
		s.logger.Debug().Msg("hypixel integration disabled, no api key")
		return domain.PlayerGuildResult{Status: domain.StatusAuthRejected}, nil
	}
	if maxMembers <= 0 {
		maxMembers = constants.DefaultGuildMembers
	}

	state := cache.Miss
	cached, err := s.stats.Get(ctx, uuid)
	switch {
	case err == nil:
		state = cache.Classify(true, cached.FetchedAt, s.cfg.PlayerStatsTTL, s.now())
	case errors.Is(err, sql.ErrNoRows):
	default:
		s.logger.Warn().Err(err).Str("uuid", uuid).Msg("stats cache read failed, treating as miss")
	}

	s.logger.Debug().Str("uuid", uuid).Stringer("cache", state).Msg("stats cache decision")

	if state != cache.Hit {
		return s.refresh(ctx, uuid, maxMembers)
	}

	if cached.GuildID == nil {
		s.logger.Info().Str("uuid", uuid).Msg("returning cached stats, player is guildless")
		return domain.PlayerGuildResult{
			Status:  domain.StatusSuccess,
			Source:  domain.SourceCache,
			Stats:   cached,
			Members: []domain.ResolvedMember{},
		}, nil
	}

	// Guild freshness is evaluated on its own TTL; a dangling guild id
	// counts as a miss.
	guildState := cache.Miss
	guild, err := s.guilds.Get(ctx, *cached.GuildID)
	switch {
	case err == nil:
		guildState = cache.Classify(true, guild.FetchedAt, s.cfg.GuildTTL, s.now())
	case errors.Is(err, sql.ErrNoRows):
	default:
		s.logger.Warn().Err(err).Str("guild_id", *cached.GuildID).Msg("guild cache read failed, treating as miss")
	}

	if guildState != cache.Hit {
		s.logger.Debug().
			Str("uuid", uuid).
			Str("guild_id", *cached.GuildID).
			Stringer("cache", guildState).
			Msg("guild roster needs refresh")
		return s.refresh(ctx, uuid, maxMembers)
	}

	roster := guild.MemberUUIDs
	if len(roster) > maxMembers {
		roster = roster[:maxMembers]
	}

	s.logger.Info().Str("uuid", uuid).Str("guild_id", guild.ID).Msg("returning cached stats and guild")
	return domain.PlayerGuildResult{
		Status:    domain.StatusSuccess,
		Source:    domain.SourceCache,
		Stats:     cached,
		GuildName: &guild.Name,
		Members:   s.resolver.ResolveNames(ctx, roster),
	}, nil
}

// refresh performs the full upstream fetch: player stats and guild
// roster in one logical operation. The store is written only when both
// calls succeed, so a mid-fetch failure can never leave a half-updated
// pair behind.
func (s *HypixelService) refresh(ctx context.Context, uuid string, maxMembers int) (domain.PlayerGuildResult, error) {
	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	player, err := s.hypixel.GetPlayer(apiCtx, uuid)
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to fetch hypixel player")
		return domain.PlayerGuildResult{Status: statusFromUpstreamErr(err), Source: domain.SourceUpstream}, nil
	}

	var guild *domain.Guild
	info, err := s.hypixel.GetGuild(apiCtx, uuid, maxMembers)
	switch {
	case err == nil:
		guild = &domain.Guild{
			ID:          info.ID,
			Name:        info.Name,
			MemberUUIDs: info.MemberUUIDs,
			FetchedAt:   s.now(),
		}
	case errors.Is(err, api.ErrNoGuild):
	default:
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to fetch hypixel guild")
		return domain.PlayerGuildResult{Status: statusFromUpstreamErr(err), Source: domain.SourceUpstream}, nil
	}

	stats := &domain.PlayerStats{
		UUID:       uuid,
		FirstLogin: player.FirstLogin,
		Rank:       player.Rank,
		FetchedAt:  s.now(),
	}
	if guild != nil {
		stats.GuildID = &guild.ID
	}

	result := domain.PlayerGuildResult{
		Status:  domain.StatusSuccess,
		Source:  domain.SourceUpstream,
		Stats:   stats,
		Members: []domain.ResolvedMember{},
	}
	if guild != nil {
		result.GuildName = &guild.Name
	}

	if err := s.stats.Upsert(ctx, stats); err != nil {
		return result, fmt.Errorf("stats fetched but not cached: %w", err)
	}
	if guild != nil {
		if err := s.guilds.Upsert(ctx, guild); err != nil {
			return result, fmt.Errorf("guild fetched but not cached: %w", err)
		}
		result.Members = s.resolver.ResolveNames(ctx, guild.MemberUUIDs)
	}

	s.logger.Info().
		Str("uuid", uuid).
		Bool("has_guild", guild != nil).
		Msg("hypixel data fetched and cached")
	return result, nil
}
