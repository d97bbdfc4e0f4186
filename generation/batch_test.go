package generation

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"ebiten-caves/config"
)

func TestRunBatch(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.Width, cfg.Height = 30, 30

	seeds := make([]string, 12)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("batch-%d", i)
	}

	results, err := RunBatch(context.Background(), cfg, seeds, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("Expected %d results, got %d", len(seeds), len(results))
	}

	for i, r := range results {
		if r.Seed != seeds[i] {
			t.Errorf("Expected result %d to be for seed %s, got %s", i, seeds[i], r.Seed)
		}
		if r.Invalid != nil {
			t.Errorf("Expected valid outlines for seed %s, got %v", r.Seed, r.Invalid)
		}

		// Concurrent runs must match a sequential run of the same seed
		gen, err := NewCaveGenerator(cfg)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		gen.SetSeed(seeds[i])
		cave, err := gen.Generate()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if r.Rooms != len(cave.Rooms) || r.Triangles != cave.Floor.TriangleCount() || r.Outlines != len(cave.Outlines) {
			t.Errorf("Expected batch result for %s to match a sequential run", seeds[i])
		}
	}
}

func TestRunBatchRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.SquareSize = 0
	if _, err := RunBatch(context.Background(), cfg, []string{"a"}, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, config.DefaultCaveConfig(), []string{"a", "b"}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
