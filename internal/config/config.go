package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/marek-a-m/vigor/internal/env"
	"github.com/marek-a-m/vigor/internal/xerrors"
)

type Config struct {
	Env    appenv.Environment `env:"ENV" envDefault:"development"`
	Preset string             `env:"PRESET" envDefault:"balanced"`

	Baseline Baseline `envPrefix:"BASELINE_"`

	// DatabaseURL selects the Postgres reading store when set; otherwise the
	// local sqlite store is used.
	DatabaseURL string `env:"DATABASE_URL"`
	// SQLitePath overrides the default on-disk location of the local store.
	SQLitePath string `env:"SQLITE_PATH"`

	Redis Redis `envPrefix:"REDIS_"`
}

type Baseline struct {
	WindowDays int `env:"WINDOW_DAYS" envDefault:"30"`
	MinDays    int `env:"MIN_DAYS" envDefault:"5"`
}

type Redis struct {
	// URL enables the computed-metrics cache when set.
	URL      string        `env:"URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, xerrors.Configuration(
			xerrors.WithMessage("reading environment config"),
			xerrors.WithCause(err),
		)
	}
	if _, err := appenv.Parse(string(cfg.Env)); err != nil {
		return Config{}, xerrors.Configuration(xerrors.WithCause(err))
	}
	return cfg, nil
}
