package arena

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
	"github.com/KirkDiggler/rpg-arena/internal/engine/simulation"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// StartRunInput defines the request for starting a run
type StartRunInput struct {
	// ProfileID selects the character and settings; empty runs on defaults
	// and nothing is credited at the end.
	ProfileID string
	// CharacterID overrides the profile's selected character
	CharacterID string
	// Seed makes the run deterministic when set
	Seed *uint64
}

// StartRunOutput defines the response for starting a run
type StartRunOutput struct {
	RunID       string
	CharacterID string
	State       simulation.State
}

// TickInput advances a run
type TickInput struct {
	RunID string
	Delta time.Duration
	Move  geom.Vec
}

// TickOutput carries the state after the tick
type TickOutput struct {
	State simulation.State
}

// DashInput requests a dash along Direction
type DashInput struct {
	RunID     string
	Direction geom.Vec
}

// DashOutput reports whether the dash started
type DashOutput struct {
	Dashed bool
}

// SwipeInput is a completed pointer gesture
type SwipeInput struct {
	RunID    string
	From     geom.Vec
	To       geom.Vec
	Duration time.Duration
}

// SwipeOutput reports whether the gesture produced a dash
type SwipeOutput struct {
	Dashed bool
}

// GetChoicesInput requests the pending upgrade offers
type GetChoicesInput struct {
	RunID string
}

// GetChoicesOutput lists the offers and what the player can afford
type GetChoicesOutput struct {
	Choices     []simulation.Offer
	Currency    int
	RerollsLeft int
}

// SelectUpgradeInput buys an offered upgrade
type SelectUpgradeInput struct {
	RunID     string
	UpgradeID string
}

// SelectUpgradeOutput carries the state of the new wave
type SelectUpgradeOutput struct {
	State simulation.State
}

// RerollInput pays for fresh offers
type RerollInput struct {
	RunID string
}

// RerollOutput lists the new offers
type RerollOutput struct {
	Choices  []simulation.Offer
	Currency int
}

// SkipInput declines the offers
type SkipInput struct {
	RunID string
}

// SkipOutput carries the state of the new wave
type SkipOutput struct {
	State simulation.State
}

// PauseInput pauses or resumes a run
type PauseInput struct {
	RunID string
}

// PauseOutput carries the state after the change
type PauseOutput struct {
	State simulation.State
}

// GetStateInput requests a run's state
type GetStateInput struct {
	RunID string
}

// GetStateOutput carries the run's state and its summary so far
type GetStateOutput struct {
	State   simulation.State
	Summary progress.Summary
}

// EndRunInput finishes a run
type EndRunInput struct {
	RunID string
}

// EndRunOutput carries the final summary and the credited profile, if any
type EndRunOutput struct {
	Summary progress.Summary
	Profile *entities.Profile
}

// RestartRunInput restarts a finished run
type RestartRunInput struct {
	RunID string
}

// RestartRunOutput carries the finished run's summary, the credited profile,
// if any, and the state of the fresh first wave
type RestartRunOutput struct {
	Summary progress.Summary
	Profile *entities.Profile
	State   simulation.State
}
