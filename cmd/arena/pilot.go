package main

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/simulation"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/arena"
)

const (
	// orbitRate is how fast the scripted player circles, in radians per second.
	orbitRate = 0.8

	// swipeEvery is the simulated time between scripted dashes.
	swipeEvery    = 3 * time.Second
	swipeLength   = 80
	swipeDuration = 150 * time.Millisecond
)

// pilot plays one run through the arena service with a fixed script: circle
// the arena, swipe periodically and buy the cheapest affordable upgrade.
type pilot struct {
	svc    arena.Service
	run    config.RunConfig
	logger *slog.Logger
}

// play starts a run with seed, drives it until it ends and credits it.
func (p *pilot) play(ctx context.Context, seed uint64) (*arena.EndRunOutput, error) {
	started, err := p.svc.StartRun(ctx, &arena.StartRunInput{
		ProfileID:   p.run.ProfileID,
		CharacterID: p.run.Character,
		Seed:        &seed,
	})
	if err != nil {
		return nil, err
	}

	runID := started.RunID
	logger := p.logger.With("run_id", runID, "seed", seed)
	logger.Debug("pilot started", "character", started.CharacterID)

	if err := p.drive(ctx, runID, started.State); err != nil {
		// Abandoned runs are still credited; the drive error wins.
		if _, endErr := p.svc.EndRun(ctx, &arena.EndRunInput{RunID: runID}); endErr != nil {
			logger.Warn("failed to end abandoned run", "error", endErr)
		}
		return nil, err
	}

	return p.svc.EndRun(ctx, &arena.EndRunInput{RunID: runID})
}

func (p *pilot) drive(ctx context.Context, runID string, state simulation.State) error {
	var elapsed, sinceSwipe time.Duration

	for elapsed < p.run.MaxDuration {
		if err := ctx.Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "run interrupted")
		}

		switch state.Phase {
		case simulation.PhaseOver:
			return nil
		case simulation.PhaseIntermission:
			if p.run.MaxWaves > 0 && state.Wave >= p.run.MaxWaves {
				return nil
			}
			next, err := p.shop(ctx, runID)
			if err != nil {
				return err
			}
			state = next
			continue
		}

		out, err := p.svc.Tick(ctx, &arena.TickInput{
			RunID: runID,
			Delta: p.run.Tick,
			Move:  orbit(elapsed),
		})
		if err != nil {
			return err
		}
		state = out.State
		elapsed += p.run.Tick
		sinceSwipe += p.run.Tick

		if sinceSwipe >= swipeEvery && state.Phase == simulation.PhaseActive {
			sinceSwipe = 0
			dir := geom.FromAngle(orbitAngle(elapsed)+math.Pi/2, swipeLength)
			if _, err := p.svc.Swipe(ctx, &arena.SwipeInput{
				RunID:    runID,
				From:     state.Pos,
				To:       state.Pos.Add(dir),
				Duration: swipeDuration,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// shop buys the cheapest affordable offer, or skips when nothing fits.
func (p *pilot) shop(ctx context.Context, runID string) (simulation.State, error) {
	choices, err := p.svc.GetChoices(ctx, &arena.GetChoicesInput{RunID: runID})
	if err != nil {
		return simulation.State{}, err
	}

	offers := slices.Clone(choices.Choices)
	slices.SortStableFunc(offers, func(a, b simulation.Offer) int { return a.Cost - b.Cost })

	for _, offer := range offers {
		if offer.Cost > choices.Currency {
			break
		}
		out, err := p.svc.SelectUpgrade(ctx, &arena.SelectUpgradeInput{RunID: runID, UpgradeID: offer.ID})
		if errors.IsFailedPrecondition(err) {
			// maxed out; try the next one
			continue
		}
		if err != nil {
			return simulation.State{}, err
		}
		p.logger.Debug("pilot bought upgrade", "run_id", runID, "upgrade", offer.ID, "cost", offer.Cost)
		return out.State, nil
	}

	out, err := p.svc.Skip(ctx, &arena.SkipInput{RunID: runID})
	if err != nil {
		return simulation.State{}, err
	}
	return out.State, nil
}

func orbitAngle(elapsed time.Duration) float64 {
	return elapsed.Seconds() * orbitRate
}

func orbit(elapsed time.Duration) geom.Vec {
	return geom.FromAngle(orbitAngle(elapsed), 1)
}
