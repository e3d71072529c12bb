// Package config loads application configuration from the environment.
// Only boundary collaborators are configured here; the replay core itself
// takes no configuration.
package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// PGNFile is the source opened at startup when no path is given on
	// the command line.
	PGNFile string

	// Coach chat endpoint. Chat stays disabled while the URL is empty.
	ChatAPIURL string
	ChatAPIKey string
	ChatModel  string

	// RedisURL enables the Redis-backed chat transcript store.
	RedisURL string
	// DatabaseURL enables the Postgres game archive.
	DatabaseURL string

	// ArchiveHistoryLimit caps recent-game listings.
	ArchiveHistoryLimit int
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ChatModel:           "coach-default",
		ArchiveHistoryLimit: 20,
	}

	cfg.PGNFile = strings.TrimSpace(os.Getenv("PGN_FILE"))
	cfg.ChatAPIURL = strings.TrimSpace(os.Getenv("CHAT_API_URL"))
	cfg.ChatAPIKey = strings.TrimSpace(os.Getenv("CHAT_API_KEY"))
	if v := strings.TrimSpace(os.Getenv("CHAT_MODEL")); v != "" {
		cfg.ChatModel = v
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if v := strings.TrimSpace(os.Getenv("ARCHIVE_HISTORY_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ArchiveHistoryLimit = n
		}
	}

	return cfg, nil
}
