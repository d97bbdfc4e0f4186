package generation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ebiten-caves/config"
)

// BatchResult summarises one cave of a batch run
type BatchResult struct {
	Seed      string
	Rooms     int
	Triangles int
	Outlines  int
	Invalid   error // Outline validation failure, if any
}

// RunBatch generates one cave per seed with at most limit generators running at
// once. Generators share nothing, so each goroutine owns its own. Results come
// back in seed order. A generation error cancels the batch.
func RunBatch(ctx context.Context, cfg config.CaveConfig, seeds []string, limit int) ([]BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gen, err := NewCaveGenerator(cfg)
			if err != nil {
				return err
			}
			gen.SetSeed(seed)
			cave, err := gen.Generate()
			if err != nil {
				return err
			}
			results[i] = BatchResult{
				Seed:      cave.Seed,
				Rooms:     len(cave.Rooms),
				Triangles: cave.Floor.TriangleCount(),
				Outlines:  len(cave.Outlines),
				Invalid:   cave.ValidateOutlines(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
