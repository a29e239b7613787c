// Package service wires the pure engines to the reading store, the metrics
// cache, and the preset configuration. All I/O and concurrency live here;
// the engines themselves stay synchronous and side-effect free.
package service

import (
	"log/slog"
	"time"

	"github.com/marek-a-m/vigor/internal/baseline"
	"github.com/marek-a-m/vigor/internal/generosity"
	"github.com/marek-a-m/vigor/internal/storage"
)

type Service struct {
	store  storage.ReadingStore
	cache  storage.MetricsCache // nil disables caching
	preset generosity.Preset
	logger *slog.Logger

	windowDays int
	minDays    int
	cacheTTL   time.Duration
}

type Option func(*Service)

func WithCache(cache storage.MetricsCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func WithBaselineWindow(windowDays, minDays int) Option {
	return func(s *Service) {
		s.windowDays = windowDays
		s.minDays = minDays
	}
}

func New(store storage.ReadingStore, preset generosity.Preset, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:      store,
		preset:     preset,
		logger:     logger,
		windowDays: baseline.DefaultWindowDays,
		minDays:    baseline.DefaultMinDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
