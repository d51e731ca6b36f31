// Package progress tracks a run's level, xp, spendable currency, essence and
// kills.
package progress

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/engine/upgrades"
)

// Level track
const (
	StartingXPToNext = 100
	LevelGrowth      = 1.2
	StartingCurrency = 5
)

// Run is the aggregate progress of one run.
type Run struct {
	level    int
	xp       int
	xpToNext int
	currency int
	essence  int
	kills    int
	gameOver bool
}

// New returns progress for a fresh run.
func New() *Run {
	return &Run{level: 1, xpToNext: StartingXPToNext}
}

// AddXP scales raw by mult, rounds, and credits the result to both the level
// track and the currency. Non-positive or non-finite multipliers count as 1.
func (r *Run) AddXP(raw int, mult float64) (gained, levelsUp int) {
	if raw <= 0 {
		return 0, 0
	}
	if mult <= 0 || math.IsNaN(mult) || math.IsInf(mult, 0) {
		mult = 1
	}

	gained = int(math.Round(float64(raw) * mult))
	r.currency += gained
	r.xp += gained

	for r.xp >= r.xpToNext {
		r.xp -= r.xpToNext
		r.level++
		r.xpToNext = int(math.Round(float64(r.xpToNext) * LevelGrowth))
		levelsUp++
	}
	return gained, levelsUp
}

// AddEssence counts collected essence.
func (r *Run) AddEssence(n int) {
	if n > 0 {
		r.essence += n
	}
}

// Spend deducts cost from the currency. It fails without side effects when
// the balance is short.
func (r *Run) Spend(cost int) bool {
	if cost < 0 || cost > r.currency {
		return false
	}
	r.currency -= cost
	return true
}

// SetCurrency overwrites the balance.
func (r *Run) SetCurrency(n int) { r.currency = max(0, n) }

// RecordKill counts one kill.
func (r *Run) RecordKill() { r.kills++ }

// End flags the run as over. It reports false if it was already over.
func (r *Run) End() bool {
	if r.gameOver {
		return false
	}
	r.gameOver = true
	return true
}

// Over reports whether the run has ended.
func (r *Run) Over() bool { return r.gameOver }

func (r *Run) Level() int    { return r.level }
func (r *Run) XP() int       { return r.xp }
func (r *Run) XPToNext() int { return r.xpToNext }
func (r *Run) Currency() int { return r.currency }
func (r *Run) Essence() int  { return r.essence }
func (r *Run) Kills() int    { return r.kills }

// Summary is the end-of-run report.
type Summary struct {
	Wave          int                 `json:"wave" yaml:"wave"`
	Kills         int                 `json:"kills" yaml:"kills"`
	Essence       int                 `json:"essence" yaml:"essence"`
	Level         int                 `json:"level" yaml:"level"`
	UpgradesCount int                 `json:"upgrades_count" yaml:"upgrades_count"`
	Upgrades      []upgrades.Acquired `json:"upgrades" yaml:"upgrades"`
}

// Summary builds the report for the given wave and acquired upgrades.
func (r *Run) Summary(wave int, acquired []upgrades.Acquired) Summary {
	return Summary{
		Wave:          wave,
		Kills:         r.kills,
		Essence:       r.essence,
		Level:         r.level,
		UpgradesCount: len(acquired),
		Upgrades:      acquired,
	}
}
