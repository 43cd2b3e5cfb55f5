package repository

import (
	"context"
	"database/sql"
	"fakemc-server/internal/domain"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type ProfileRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewProfileRepository(db *sql.DB, logger zerolog.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

// GetByTerm looks up a profile by UUID or by case-insensitive username.
// Returns sql.ErrNoRows when nothing matches.
func (r *ProfileRepository) GetByTerm(ctx context.Context, term string) (*domain.Profile, error) {
	lowered := strings.ToLower(term)
	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, username, has_cape, cape_name, skin_showcase_b64, cape_front_b64, cape_back_b64, fetched_at
		FROM profiles
		WHERE uuid = ? OR username_lower = ?`,
		lowered, lowered,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profiles
			(uuid, username, username_lower, has_cape, cape_name, skin_showcase_b64, cape_front_b64, cape_back_b64, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UUID, p.Username, strings.ToLower(p.Username), p.HasCape,
		p.CapeName, p.SkinShowcase, p.CapeFront, p.CapeBack, p.FetchedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("uuid", p.UUID).Msg("failed to upsert profile")
		return fmt.Errorf("failed to upsert profile %s: %w", p.UUID, err)
	}
	return nil
}

// GetNames resolves usernames for a batch of UUIDs in a single query.
// Only UUIDs present in the store appear in the result; freshness is
// deliberately not checked here, a stale name beats a network call.
func (r *ProfileRepository) GetNames(ctx context.Context, uuids []string) (map[string]string, error) {
	if len(uuids) == 0 {
		return map[string]string{}, nil
	}

	placeholders := strings.Repeat("?,", len(uuids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(uuids))
	for i, id := range uuids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT uuid, username FROM profiles WHERE uuid IN (%s)", placeholders),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(uuids))
	for rows.Next() {
		var uuid, username string
		if err := rows.Scan(&uuid, &username); err != nil {
			return nil, fmt.Errorf("failed to scan username row: %w", err)
		}
		names[uuid] = username
	}
	return names, rows.Err()
}

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UUID, &p.Username, &p.HasCape, &p.CapeName,
		&p.SkinShowcase, &p.CapeFront, &p.CapeBack, &p.FetchedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
