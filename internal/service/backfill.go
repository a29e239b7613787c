package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marek-a-m/vigor/internal/whoop"
	"github.com/marek-a-m/vigor/internal/xslog"
)

const maxBackfillConcurrency = 4

// BackfillResult reports how a directory backfill went. Payloads that fail
// to decode or transform are counted and logged, not fatal.
type BackfillResult struct {
	Processed int
	Skipped   int
}

// Backfill decodes every JSON payload under dir, ingests its baseline
// readings, and transforms it so the metrics cache is warm. Files are
// processed concurrently with a bounded worker count.
func (s *Service) Backfill(ctx context.Context, dir string) (BackfillResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("reading payload directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	s.logger.InfoContext(ctx, "starting backfill",
		xslog.Path(dir),
		xslog.Count(len(paths)))
	started := time.Now()

	results := make([]bool, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBackfillConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := s.backfillFile(gctx, path); err != nil {
				s.logger.WarnContext(gctx, "failed to backfill payload",
					xslog.Path(path),
					xslog.Error(err))
				return nil
			}
			results[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BackfillResult{}, err
	}

	var result BackfillResult
	for _, ok := range results {
		if ok {
			result.Processed++
		} else {
			result.Skipped++
		}
	}

	s.logger.InfoContext(ctx, "backfill complete",
		xslog.Count(result.Processed),
		xslog.Duration(time.Since(started)))
	return result, nil
}

func (s *Service) backfillFile(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening payload: %w", err)
	}
	defer f.Close()

	payload, err := whoop.DecodeDailyPayload(f)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	if err := s.IngestPayload(ctx, payload); err != nil {
		return fmt.Errorf("ingesting payload: %w", err)
	}
	if _, err := s.TransformDay(ctx, payload); err != nil {
		return fmt.Errorf("transforming payload: %w", err)
	}
	return nil
}
