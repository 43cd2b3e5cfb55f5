package repository

import (
	"context"
	"database/sql"
	"fakemc-server/internal/domain"
	"fmt"

	"github.com/rs/zerolog"
)

type StatsRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewStatsRepository(db *sql.DB, logger zerolog.Logger) *StatsRepository {
	return &StatsRepository{db: db, logger: logger}
}

// Get returns the cached Hypixel stats for a UUID, or sql.ErrNoRows.
func (r *StatsRepository) Get(ctx context.Context, uuid string) (*domain.PlayerStats, error) {
	var s domain.PlayerStats
	err := r.db.QueryRowContext(ctx, `
		SELECT uuid, first_login, rank, guild_id, fetched_at
		FROM player_stats
		WHERE uuid = ?`,
		uuid,
	).Scan(&s.UUID, &s.FirstLogin, &s.Rank, &s.GuildID, &s.FetchedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatsRepository) Upsert(ctx context.Context, s *domain.PlayerStats) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO player_stats (uuid, first_login, rank, guild_id, fetched_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.UUID, s.FirstLogin, s.Rank, s.GuildID, s.FetchedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("uuid", s.UUID).Msg("failed to upsert player stats")
		return fmt.Errorf("failed to upsert player stats %s: %w", s.UUID, err)
	}
	return nil
}
