package fx

import (
	"fakemc-server/internal/api"
	"fakemc-server/internal/config"
	"fakemc-server/internal/database"
	"fakemc-server/internal/logger"
	"fakemc-server/internal/repository"
	"fakemc-server/internal/server"
	"fakemc-server/internal/service"

	"go.uber.org/fx"
)

func provideIdentityGateway(c *api.MojangClient) service.IdentityGateway {
	return c
}

func provideStatsGateway(c *api.HypixelClient) service.StatsGateway {
	return c
}

func provideHypixelStatusGateway(c *api.HypixelClient) service.HypixelStatusGateway {
	return c
}

func provideWynncraftStatusGateway(c *api.WynncraftClient) service.WynncraftStatusGateway {
	return c
}

func provideNameResolver(s *service.ProfileService) service.NameResolver {
	return s
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewProfileRepository),
	fx.Provide(repository.NewStatsRepository),
	fx.Provide(repository.NewGuildRepository),
	fx.Provide(repository.NewFavoriteRepository),
	// api clients
	fx.Provide(api.NewMojangClient),
	fx.Provide(api.NewHypixelClient),
	fx.Provide(api.NewWynncraftClient),
	fx.Provide(provideIdentityGateway),
	fx.Provide(provideStatsGateway),
	fx.Provide(provideHypixelStatusGateway),
	fx.Provide(provideWynncraftStatusGateway),
	// svc
	fx.Provide(service.NewProfileService),
	fx.Provide(provideNameResolver),
	fx.Provide(service.NewHypixelService),
	fx.Provide(service.NewStatusService),
	fx.Provide(service.NewFavoriteService),
	// server
	fx.Provide(server.New),
)
