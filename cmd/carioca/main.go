// cmd/carioca/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jason-s-yu/carioca/internal/cache"
	"github.com/jason-s-yu/carioca/internal/config"
	"github.com/jason-s-yu/carioca/internal/console"
	"github.com/jason-s-yu/carioca/internal/database"
	"github.com/jason-s-yu/carioca/internal/game"
	"github.com/jason-s-yu/carioca/internal/i18n"
	"github.com/jason-s-yu/carioca/internal/store"
	"github.com/jason-s-yu/carioca/internal/store/sqlite"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// backend is a persistence adapter that holds a connection or file handle.
type backend interface {
	store.Adapter
	io.Closer
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	logger.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	adapter, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store, err)
	}
	defer adapter.Close()
	logger.WithField("store", cfg.Store).Info("store opened")

	slots := store.NewSlots(adapter, cfg.KeyPrefix, logger)
	engine := game.NewEngine(slots.LoadState(ctx), slots, logger)

	// first run: pick the display language from the locale
	if _, ok, err := adapter.Load(ctx, slots.Key(store.SlotLanguage)); err == nil && !ok {
		if err := engine.SetLanguage(i18n.MatchLanguage(cfg.Locale)); err != nil {
			logger.WithError(err).Warn("failed to apply locale language")
		}
	}

	ui := console.New(engine, os.Stdin, os.Stdout, logger)
	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatalf("console exited: %v", err)
	}
	logger.Debug("bye")
}

func openBackend(ctx context.Context, cfg config.Config) (backend, error) {
	switch cfg.Store {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendSQLite:
		return sqlite.Open(cfg.SQLitePath)
	case config.BackendRedis:
		return cache.ConnectRedis(cfg.RedisAddr, cfg.RedisDB)
	case config.BackendPostgres:
		return database.ConnectDB(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
