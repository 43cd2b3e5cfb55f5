package service

import (
	"context"
	"fakemc-server/internal/constants"
	"fakemc-server/internal/domain"
	"fakemc-server/internal/repository"

	"github.com/rs/zerolog"
)

type FavoriteService struct {
	repo   *repository.FavoriteRepository
	logger zerolog.Logger
}

func NewFavoriteService(repo *repository.FavoriteRepository, logger zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, logger: logger}
}

func (s *FavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.List(ctx)
}

func (s *FavoriteService) Add(ctx context.Context, uuid, username string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Info().Str("uuid", uuid).Str("username", username).Msg("adding favorite")
	return s.repo.Put(ctx, uuid, username)
}

func (s *FavoriteService) Remove(ctx context.Context, uuid string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Info().Str("uuid", uuid).Msg("removing favorite")
	return s.repo.Delete(ctx, uuid)
}
