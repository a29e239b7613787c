package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/marek-a-m/vigor/internal/ring"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	t.Parallel()

	cache, _ := newTestRedisCache(t)

	want := ring.Metrics{
		Date:             day(0),
		ActiveEnergyKcal: 640.5,
		ExerciseMinutes:  42,
		StandHours:       ring.NewHourSet(8, 12, 18),
	}

	if err := cache.SetMetrics(t.Context(), "balanced", want, time.Hour); err != nil {
		t.Fatal(err)
	}

	got, err := cache.GetMetrics(t.Context(), "balanced", day(0))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisCacheMiss(t *testing.T) {
	t.Parallel()

	cache, _ := newTestRedisCache(t)

	if _, err := cache.GetMetrics(t.Context(), "balanced", day(0)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetMetrics() error = %v, want ErrNotFound", err)
	}
}

func TestRedisCacheExpiry(t *testing.T) {
	t.Parallel()

	cache, mr := newTestRedisCache(t)

	m := ring.Metrics{Date: day(0), ActiveEnergyKcal: 100}
	if err := cache.SetMetrics(t.Context(), "balanced", m, time.Minute); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.GetMetrics(t.Context(), "balanced", day(0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMetrics() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestRedisCacheKeyedByDay(t *testing.T) {
	t.Parallel()

	cache, _ := newTestRedisCache(t)

	a := ring.Metrics{Date: day(0), ActiveEnergyKcal: 100}
	b := ring.Metrics{Date: day(1), ActiveEnergyKcal: 200}
	if err := cache.SetMetrics(t.Context(), "balanced", a, time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := cache.SetMetrics(t.Context(), "balanced", b, time.Hour); err != nil {
		t.Fatal(err)
	}

	got, err := cache.GetMetrics(t.Context(), "balanced", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveEnergyKcal != 200 {
		t.Errorf("day(1) calories = %v, want 200", got.ActiveEnergyKcal)
	}
}

func TestRedisCacheKeyedByPreset(t *testing.T) {
	t.Parallel()

	cache, _ := newTestRedisCache(t)

	balanced := ring.Metrics{Date: day(0), ActiveEnergyKcal: 1278}
	generous := ring.Metrics{Date: day(0), ActiveEnergyKcal: 1378}
	if err := cache.SetMetrics(t.Context(), "balanced", balanced, time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := cache.SetMetrics(t.Context(), "generous", generous, time.Hour); err != nil {
		t.Fatal(err)
	}

	got, err := cache.GetMetrics(t.Context(), "generous", day(0))
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveEnergyKcal != 1378 {
		t.Errorf("generous calories = %v, want 1378 (one preset must never see another's entry)", got.ActiveEnergyKcal)
	}
	if _, err := cache.GetMetrics(t.Context(), "conservative", day(0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMetrics() for uncached preset error = %v, want ErrNotFound", err)
	}
}
