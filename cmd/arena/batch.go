package main

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/arena"
)

var (
	batchRuns        int
	batchParallelism int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Play many seeded runs concurrently",
	Long: `Play consecutive seeds starting at the configured seed, each with the
scripted pilot, and print per-seed results with an aggregate.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchRuns, "runs", 0, "number of runs override")
	batchCmd.Flags().IntVar(&batchParallelism, "parallelism", 0, "concurrent runs override")
}

// batchResult is one seed's outcome.
type batchResult struct {
	Seed    uint64           `yaml:"seed"`
	Summary progress.Summary `yaml:"summary"`
}

// batchReport aggregates a batch.
type batchReport struct {
	Runs        int           `yaml:"runs"`
	BestWave    int           `yaml:"best_wave"`
	MeanWave    float64       `yaml:"mean_wave"`
	MeanKills   float64       `yaml:"mean_kills"`
	MeanEssence float64       `yaml:"mean_essence"`
	Results     []batchResult `yaml:"results"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := withSignals(cmd.Context())
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	batch := a.cfg.Batch
	if batchRuns > 0 {
		batch.Runs = batchRuns
	}
	if batchParallelism > 0 {
		batch.Parallelism = batchParallelism
	}

	report, err := playBatch(ctx, a.arena, a.cfg.Run, batch, a.logger)
	if err != nil {
		return err
	}
	return printYAML(cmd, report)
}

// playBatch runs batch.Runs seeds through svc with at most batch.Parallelism
// in flight. Batched runs never credit a profile.
func playBatch(ctx context.Context, svc arena.Service, run config.RunConfig, batch config.BatchConfig, logger *slog.Logger) (*batchReport, error) {
	run.ProfileID = ""

	var (
		mu      sync.Mutex
		results = make([]batchResult, 0, batch.Runs)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batch.Parallelism)

	for i := 0; i < batch.Runs; i++ {
		seed := run.Seed + uint64(i)
		g.Go(func() error {
			p := &pilot{svc: svc, run: run, logger: logger}
			out, err := p.play(gctx, seed)
			if err != nil {
				return err
			}

			mu.Lock()
			results = append(results, batchResult{Seed: seed, Summary: out.Summary})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b batchResult) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})

	report := &batchReport{Runs: len(results), Results: results}
	if len(results) == 0 {
		return report, nil
	}

	var waves, kills, essence int
	for _, r := range results {
		waves += r.Summary.Wave
		kills += r.Summary.Kills
		essence += r.Summary.Essence
		report.BestWave = max(report.BestWave, r.Summary.Wave)
	}
	n := float64(len(results))
	report.MeanWave = float64(waves) / n
	report.MeanKills = float64(kills) / n
	report.MeanEssence = float64(essence) / n

	logger.Info("batch complete",
		"runs", report.Runs,
		"best_wave", report.BestWave,
		"mean_wave", report.MeanWave)

	return report, nil
}
