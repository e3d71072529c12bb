package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chessmate/internal/applog"
	"github.com/rxtech-lab/chessmate/internal/archive"
	"github.com/rxtech-lab/chessmate/internal/chat"
	appcfg "github.com/rxtech-lab/chessmate/internal/config"
	"github.com/rxtech-lab/chessmate/internal/pgn"
	"github.com/rxtech-lab/chessmate/internal/replay"
	"github.com/rxtech-lab/chessmate/internal/settings"
	"github.com/rxtech-lab/chessmate/internal/tui"
)

func main() {
	_ = godotenv.Load()

	if err := applog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := applog.L()
	defer func() { _ = logger.Sync() }()

	cfg, err := appcfg.Load()
	if err != nil {
		logger.Fatal("config error", zap.Error(err))
	}

	prefs, err := settings.Load()
	if err != nil {
		logger.Warn("settings unusable, using defaults", zap.Error(err))
		prefs = settings.Default()
	}

	path := cfg.PGNFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" && prefs.LastFile != "" {
		path = prefs.LastFile
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: chessmate <file.pgn>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("read pgn source", zap.String("path", path), zap.Error(err))
	}

	games := pgn.LoadText(string(raw))
	if len(games) == 0 {
		logger.Fatal("no games found in source", zap.String("path", path))
	}
	logger.Info("loaded pgn source", zap.String("path", path), zap.Int("games", len(games)))

	repo := buildArchive(cfg, logger)
	archiveGames(repo, games, logger)

	coach := buildCoach(cfg, logger)

	session := replay.NewSession(logger)
	app := tui.NewApp(games, session, prefs, coach, saveNextTo(path), logger)

	prefs.LastFile = path
	if err := settings.Save(prefs); err != nil {
		logger.Warn("persist settings", zap.Error(err))
	}

	if err := app.Run(); err != nil {
		logger.Fatal("ui error", zap.Error(err))
	}
}

func buildArchive(cfg *appcfg.AppConfig, logger *zap.Logger) archive.Repository {
	if cfg.DatabaseURL == "" {
		return archive.NewMemoryRepository()
	}
	repo, err := archive.NewRepository(cfg.DatabaseURL)
	if err != nil {
		logger.Warn("archive database unavailable, using memory", zap.Error(err))
		return archive.NewMemoryRepository()
	}
	return repo
}

func archiveGames(repo archive.Repository, games []*pgn.Game, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, g := range games {
		rec := &archive.Record{
			ID:         g.ID,
			Event:      g.Metadata.Event,
			Site:       g.Metadata.Site,
			Date:       g.Metadata.Date,
			Round:      g.Metadata.Round,
			White:      g.Metadata.White,
			Black:      g.Metadata.Black,
			Result:     g.Metadata.Result,
			PGN:        pgn.Encode(g.Metadata, g.Moves),
			ImportedAt: time.Now(),
		}
		err := repo.SaveGame(ctx, rec)
		if errors.Is(err, archive.ErrDuplicateGame) {
			continue
		}
		if err != nil {
			logger.Warn("archive game", zap.String("id", g.ID), zap.Error(err))
		}
	}
}

func buildCoach(cfg *appcfg.AppConfig, logger *zap.Logger) *tui.Coach {
	if cfg.ChatAPIURL == "" {
		return nil
	}

	var store chat.Store
	if cfg.RedisURL != "" {
		s, err := chat.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis transcript store unavailable, using memory", zap.Error(err))
			store = chat.NewMemoryStore()
		} else {
			store = s
		}
	} else {
		store = chat.NewMemoryStore()
	}

	client := chat.NewClient(cfg.ChatAPIURL, chat.WithAPIKey(cfg.ChatAPIKey))
	return &tui.Coach{Client: client, Store: store, Model: cfg.ChatModel}
}

// saveNextTo writes serialized games beside the source file.
func saveNextTo(sourcePath string) func(name, content string) error {
	dir := filepath.Dir(sourcePath)
	return func(name, content string) error {
		return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	}
}
