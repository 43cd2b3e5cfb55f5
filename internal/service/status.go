package service

import (
	"context"
	"fakemc-server/internal/config"
	"fakemc-server/internal/constants"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// OnlineStatus names the network a player is currently on.
type OnlineStatus string

const (
	StatusWynncraft OnlineStatus = "Wynncraft"
	StatusHypixel   OnlineStatus = "Hypixel"
	StatusOffline   OnlineStatus = "offline"
)

type StatusService struct {
	wynncraft WynncraftStatusGateway
	hypixel   HypixelStatusGateway
	cfg       *config.Config
	logger    zerolog.Logger
}

func NewStatusService(wynncraft WynncraftStatusGateway, hypixel HypixelStatusGateway, cfg *config.Config, logger zerolog.Logger) *StatusService {
	return &StatusService{wynncraft: wynncraft, hypixel: hypixel, cfg: cfg, logger: logger}
}

// CheckOnline probes Wynncraft and Hypixel concurrently. A failed probe
// counts as offline for that network; Wynncraft wins when both report
// online. Results are never cached, presence is too volatile for a TTL.
func (s *StatusService) CheckOnline(ctx context.Context, name, uuid string) OnlineStatus {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	var onWynncraft, onHypixel bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		online, err := s.wynncraft.IsOnline(gctx, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("wynncraft status probe failed")
			return nil
		}
		onWynncraft = online
		return nil
	})
	g.Go(func() error {
		if !s.cfg.HypixelEnabled() {
			return nil
		}
		online, err := s.hypixel.IsOnline(gctx, uuid)
		if err != nil {
			s.logger.Warn().Err(err).Str("uuid", uuid).Msg("hypixel status probe failed")
			return nil
		}
		onHypixel = online
		return nil
	})
	_ = g.Wait()

	s.logger.Debug().
		Bool("wynncraft", onWynncraft).
		Bool("hypixel", onHypixel).
		Msg("online status probes completed")

	switch {
	case onWynncraft:
		return StatusWynncraft
	case onHypixel:
		return StatusHypixel
	default:
		return StatusOffline
	}
}
