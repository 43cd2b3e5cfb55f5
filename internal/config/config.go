package config

import (
	"fakemc-server/internal/constants"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	HypixelAPIKey string
	DBPath        string
	ServerPort    string
	LogLevel      string

	ProfileTTL     time.Duration
	PlayerStatsTTL time.Duration
	GuildTTL       time.Duration
}

// HypixelEnabled reports whether the Hypixel integration is usable. The
// app degrades to Mojang-only lookups without a key.
func (c *Config) HypixelEnabled() bool {
	return c.HypixelAPIKey != ""
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		HypixelAPIKey:  getEnv("HYPIXEL_API_KEY", ""),
		DBPath:         getEnv("DB_PATH", "fakemc.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ProfileTTL:     constants.ProfileCacheTTL,
		PlayerStatsTTL: constants.PlayerStatsCacheTTL,
		GuildTTL:       constants.GuildCacheTTL,
	}

	if !cfg.HypixelEnabled() {
		logger.Warn().Msg("HYPIXEL_API_KEY not set, hypixel integration disabled")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("profile_ttl", cfg.ProfileTTL).
		Dur("player_stats_ttl", cfg.PlayerStatsTTL).
		Dur("guild_ttl", cfg.GuildTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
