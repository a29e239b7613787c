package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/ring"
)

var (
	_ ReadingStore = (*MemoryStore)(nil)
	_ MetricsCache = (*MemoryStore)(nil)
)

type cachedMetrics struct {
	metrics  ring.Metrics
	storedAt time.Time
	ttl      time.Duration
}

type metricsCacheKey struct {
	preset string
	day    time.Time
}

// MemoryStore is the in-process backend, used by tests and by CLI runs that
// have no database configured.
type MemoryStore struct {
	readingsMu sync.RWMutex
	readings   map[time.Time]health.DailyReading

	metricsMu sync.RWMutex
	metrics   map[metricsCacheKey]cachedMetrics
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		readings: make(map[time.Time]health.DailyReading),
		metrics:  make(map[metricsCacheKey]cachedMetrics),
	}
}

func (m *MemoryStore) SaveReading(_ context.Context, r health.DailyReading) error {
	day := r.Day.Truncate(24 * time.Hour)
	r.Day = day

	m.readingsMu.Lock()
	m.readings[day] = r
	m.readingsMu.Unlock()
	return nil
}

func (m *MemoryStore) ReadingsSince(_ context.Context, since time.Time) ([]health.DailyReading, error) {
	since = since.Truncate(24 * time.Hour)

	m.readingsMu.RLock()
	out := make([]health.DailyReading, 0, len(m.readings))
	for day, r := range m.readings {
		if !day.Before(since) {
			out = append(out, r)
		}
	}
	m.readingsMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (m *MemoryStore) Prune(_ context.Context, before time.Time) error {
	before = before.Truncate(24 * time.Hour)

	m.readingsMu.Lock()
	for day := range m.readings {
		if day.Before(before) {
			delete(m.readings, day)
		}
	}
	m.readingsMu.Unlock()
	return nil
}

func (m *MemoryStore) GetMetrics(_ context.Context, preset string, day time.Time) (ring.Metrics, error) {
	key := metricsCacheKey{preset: preset, day: day.Truncate(24 * time.Hour)}

	m.metricsMu.RLock()
	c, ok := m.metrics[key]
	m.metricsMu.RUnlock()

	if !ok {
		return ring.Metrics{}, ErrNotFound
	}
	if c.ttl > 0 && time.Since(c.storedAt) > c.ttl {
		return ring.Metrics{}, ErrNotFound
	}
	return c.metrics, nil
}

func (m *MemoryStore) SetMetrics(_ context.Context, preset string, metrics ring.Metrics, ttl time.Duration) error {
	key := metricsCacheKey{preset: preset, day: metrics.Date.Truncate(24 * time.Hour)}

	m.metricsMu.Lock()
	m.metrics[key] = cachedMetrics{metrics: metrics, storedAt: time.Now(), ttl: ttl}
	m.metricsMu.Unlock()
	return nil
}
