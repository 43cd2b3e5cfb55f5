package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fakemc-server/internal/domain"
	"fmt"

	"github.com/rs/zerolog"
)

type GuildRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewGuildRepository(db *sql.DB, logger zerolog.Logger) *GuildRepository {
	return &GuildRepository{db: db, logger: logger}
}

// Get returns the cached guild roster, or sql.ErrNoRows.
func (r *GuildRepository) Get(ctx context.Context, id string) (*domain.Guild, error) {
	var g domain.Guild
	var members string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, member_uuids, fetched_at
		FROM guilds
		WHERE id = ?`,
		id,
	).Scan(&g.ID, &g.Name, &members, &g.FetchedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(members), &g.MemberUUIDs); err != nil {
		return nil, fmt.Errorf("failed to decode member list for guild %s: %w", id, err)
	}
	return &g, nil
}

func (r *GuildRepository) Upsert(ctx context.Context, g *domain.Guild) error {
	members, err := json.Marshal(g.MemberUUIDs)
	if err != nil {
		return fmt.Errorf("failed to encode member list for guild %s: %w", g.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO guilds (id, name, member_uuids, fetched_at)
		VALUES (?, ?, ?, ?)`,
		g.ID, g.Name, string(members), g.FetchedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("guild_id", g.ID).Msg("failed to upsert guild")
		return fmt.Errorf("failed to upsert guild %s: %w", g.ID, err)
	}
	return nil
}
