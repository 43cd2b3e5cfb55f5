package repository

import (
	"context"
	"database/sql"
	"fakemc-server/internal/domain"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type FavoriteRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewFavoriteRepository(db *sql.DB, logger zerolog.Logger) *FavoriteRepository {
	return &FavoriteRepository{db: db, logger: logger}
}

func (r *FavoriteRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uuid, username, created_at
		FROM favorites
		ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.UUID, &f.Username, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *FavoriteRepository) Put(ctx context.Context, uuid, username string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO favorites (uuid, username, created_at)
		VALUES (?, ?, ?)`,
		uuid, username, time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to save favorite")
		return fmt.Errorf("failed to save favorite %s: %w", uuid, err)
	}
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, uuid string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM favorites WHERE uuid = ?", uuid)
	if err != nil {
		return fmt.Errorf("failed to delete favorite %s: %w", uuid, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
