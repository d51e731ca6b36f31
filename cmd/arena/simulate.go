package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

var (
	simCharacter string
	simProfile   string
	simSeed      uint64
	simMaxWaves  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play one scripted run",
	Long:  `Play one seeded run with a scripted pilot and print its summary as YAML.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simCharacter, "character", "", "character override")
	simulateCmd.Flags().StringVar(&simProfile, "profile", "", "profile to credit when the run ends")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "seed override")
	simulateCmd.Flags().IntVar(&simMaxWaves, "max-waves", -1, "stop after this many waves; 0 is unlimited")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := withSignals(cmd.Context())
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	run := a.cfg.Run
	if cmd.Flags().Changed("character") {
		run.Character = simCharacter
	}
	if cmd.Flags().Changed("profile") {
		run.ProfileID = simProfile
	}
	if cmd.Flags().Changed("seed") {
		run.Seed = simSeed
	}
	if cmd.Flags().Changed("max-waves") {
		run.MaxWaves = simMaxWaves
	}

	p := &pilot{svc: a.arena, run: run, logger: a.logger}
	out, err := p.play(ctx, run.Seed)
	if err != nil {
		return err
	}

	return printYAML(cmd, map[string]any{
		"seed":    run.Seed,
		"summary": out.Summary,
	})
}

// printYAML writes v to the command's output.
func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return enc.Close()
}

// withSignals is the context every long-running command uses.
func withSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
