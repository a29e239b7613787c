package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/marek-a-m/vigor/internal/config"
	"github.com/marek-a-m/vigor/internal/db"
	"github.com/marek-a-m/vigor/internal/generosity"
	"github.com/marek-a-m/vigor/internal/paths"
	vredis "github.com/marek-a-m/vigor/internal/redis"
	"github.com/marek-a-m/vigor/internal/repository"
	"github.com/marek-a-m/vigor/internal/service"
	"github.com/marek-a-m/vigor/internal/storage"
	"github.com/marek-a-m/vigor/internal/xslog"
)

// setup builds a Service from the environment configuration. The presetName
// flag overrides the configured preset when non-empty. The returned closer
// releases whatever backends were opened.
func setup(ctx context.Context, presetName string) (*service.Service, func(), error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, nil, err
	}

	if presetName == "" {
		presetName = cfg.Preset
	}
	preset, err := generosity.PresetByName(presetName)
	if err != nil {
		return nil, nil, err
	}

	var logger *slog.Logger
	if cfg.Env.IsDevelopment() {
		logger = xslog.NewTextLogger(os.Stderr, xslog.FromEnv())
	} else {
		logger = xslog.NewLoggerFromEnv(os.Stderr)
	}

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store, err := openStore(ctx, cfg, &closers)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	opts := []service.Option{
		service.WithBaselineWindow(cfg.Baseline.WindowDays, cfg.Baseline.MinDays),
	}
	if cfg.Redis.URL != "" {
		client, err := vredis.New(ctx, vredis.Config{URL: cfg.Redis.URL})
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		opts = append(opts, service.WithCache(storage.NewRedisCache(client), cfg.Redis.CacheTTL))
	}

	return service.New(store, preset, logger, opts...), closeAll, nil
}

func openStore(ctx context.Context, cfg config.Config, closers *[]func()) (storage.ReadingStore, error) {
	if cfg.DatabaseURL != "" {
		pool, err := repository.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, pool.Close)
		return repository.NewReadingRepo(pool), nil
	}

	path := cfg.SQLitePath
	if path == "" {
		p, err := paths.DB()
		if err != nil {
			return nil, err
		}
		path = p
	}
	sqlDB, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	*closers = append(*closers, func() { _ = sqlDB.Close() })
	return storage.NewSQLiteStore(sqlDB), nil
}
