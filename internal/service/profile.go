package service

import (
	"context"
	"database/sql"
	"errors"
	"fakemc-server/internal/cache"
	"fakemc-server/internal/config"
	"fakemc-server/internal/constants"
	"fakemc-server/internal/domain"
	"fakemc-server/internal/repository"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ProfileService struct {
	mojang IdentityGateway
	repo   *repository.ProfileRepository
	cfg    *config.Config
	logger zerolog.Logger
	now    func() time.Time
}

func NewProfileService(mojang IdentityGateway, repo *repository.ProfileRepository, cfg *config.Config, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		mojang: mojang,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve looks up a player profile by username or UUID, serving from
// cache when the entry is inside its TTL and refetching from Mojang
// otherwise. A non-nil error alongside a success result means the fetch
// succeeded but could not be cached.
func (s *ProfileService) Resolve(ctx context.Context, term string) (domain.ProfileResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	state := cache.Miss
	cached, err := s.repo.GetByTerm(ctx, term)
	switch {
	case err == nil:
		state = cache.Classify(true, cached.FetchedAt, s.cfg.ProfileTTL, s.now())
	case errors.Is(err, sql.ErrNoRows):
	default:
		// A broken store read degrades to a miss so the lookup can
		// still be served from upstream.
		s.logger.Warn().Err(err).Str("term", term).Msg("profile cache read failed, treating as miss")
	}

	s.logger.Debug().Str("term", term).Stringer("cache", state).Msg("profile cache decision")

	if state == cache.Hit {
		s.logger.Info().Str("uuid", cached.UUID).Msg("returning cached profile")
		return domain.ProfileResult{
			Status:  domain.StatusSuccess,
			Source:  domain.SourceCache,
			Profile: cached,
		}, nil
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	name, uuid := classifyTerm(term)
	identity, err := s.mojang.Fetch(apiCtx, name, uuid)
	if err != nil {
		status := statusFromUpstreamErr(err)
		if status == domain.StatusNotFound {
			s.logger.Info().Str("term", term).Msg("mojang lookup failed, no such player")
		} else {
			s.logger.Error().Err(err).Str("term", term).Msg("failed to fetch mojang profile")
		}
		return domain.ProfileResult{Status: status, Source: domain.SourceUpstream}, nil
	}

	profile := &domain.Profile{
		UUID:         identity.UUID,
		Username:     identity.Username,
		HasCape:      identity.HasCape,
		CapeName:     identity.CapeName,
		SkinShowcase: identity.SkinShowcase,
		CapeFront:    identity.CapeFront,
		CapeBack:     identity.CapeBack,
		FetchedAt:    s.now(),
	}

	result := domain.ProfileResult{
		Status:  domain.StatusSuccess,
		Source:  domain.SourceUpstream,
		Profile: profile,
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("uuid", profile.UUID).Msg("failed to cache profile")
		return result, fmt.Errorf("profile fetched but not cached: %w", err)
	}

	s.logger.Info().Str("uuid", profile.UUID).Msg("profile fetched and cached")
	return result, nil
}

// ResolveNames maps a roster of UUIDs to display names. One bulk cache
// read covers the whole batch; misses fall back to individual profile
// lookups issued concurrently. A failed lookup yields the "N/A" sentinel
// for its slot. Output order and length always match the input.
func (s *ProfileService) ResolveNames(ctx context.Context, uuids []string) []domain.ResolvedMember {
	if len(uuids) == 0 {
		return []domain.ResolvedMember{}
	}

	cached, err := s.repo.GetNames(ctx, uuids)
	if err != nil {
		s.logger.Warn().Err(err).Msg("bulk name read failed, falling back to lookups")
		cached = map[string]string{}
	}
	s.logger.Debug().
		Int("total", len(uuids)).
		Int("cached", len(cached)).
		Msg("resolving member names")

	members := make([]domain.ResolvedMember, len(uuids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.NameResolverWorkers)

	for i, uuid := range uuids {
		members[i] = domain.ResolvedMember{UUID: uuid}
		if name, ok := cached[uuid]; ok {
			members[i].Name = name
			continue
		}

		g.Go(func() error {
			// each worker writes only its own slot
			res, err := s.Resolve(gctx, uuid)
			if res.Status == domain.StatusSuccess {
				members[i].Name = res.Profile.Username
			} else {
				members[i].Name = domain.UnresolvedName
			}
			if err != nil {
				s.logger.Warn().Err(err).Str("uuid", uuid).Msg("member profile not cached")
			}
			return nil
		})
	}
	_ = g.Wait()

	return members
}

// classifyTerm decides whether a search term is a username or a UUID.
// Mojang usernames are capped at 16 characters, so anything longer must
// be a UUID.
func classifyTerm(term string) (name, uuid string) {
	if len(term) <= constants.MaxUsernameLength {
		return term, ""
	}
	return "", term
}
