// Package upgrades holds the static upgrade table and the per-run catalog that
// samples offers, tracks acquired levels and owns the resolved stat snapshot.
package upgrades

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// RerollsPerIntermission is the base reroll allowance.
const RerollsPerIntermission = 1

// Config configures a Catalog.
type Config struct {
	Roller dice.Roller

	// Base defaults to stats.Base() when nil.
	Base *stats.Snapshot

	Modifiers    stats.Modifiers
	ExtraRerolls int
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.ExtraRerolls < 0 {
		vb.Fieldf("ExtraRerolls", "must not be negative, got %d", c.ExtraRerolls)
	}

	return vb.Build()
}

// Acquired is a held upgrade and its level.
type Acquired struct {
	Definition `yaml:",inline"`
	Level      int `json:"level" yaml:"level"`
}

// Catalog is the per-run upgrade state. It is not safe for concurrent use;
// the owning simulation serialises access.
type Catalog struct {
	roller       dice.Roller
	base         stats.Snapshot
	mods         stats.Modifiers
	extraRerolls int

	levels      map[string]int
	order       []string
	snapshot    stats.Snapshot
	rerollsUsed int
}

// New creates a catalog with nothing acquired.
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid upgrade catalog config")
	}

	base := stats.Base()
	if cfg.Base != nil {
		base = *cfg.Base
	}

	c := &Catalog{
		roller:       cfg.Roller,
		base:         base,
		mods:         cfg.Modifiers,
		extraRerolls: cfg.ExtraRerolls,
	}
	c.Reset()
	return c, nil
}

// Reset drops every acquired upgrade and restores the base snapshot.
func (c *Catalog) Reset() {
	c.levels = make(map[string]int)
	c.order = nil
	c.rerollsUsed = 0
	c.recompute()
}

// Stats returns the current snapshot.
func (c *Catalog) Stats() stats.Snapshot {
	return c.snapshot
}

// Level returns the held level of id, 0 when not acquired.
func (c *Catalog) Level(id string) int {
	return c.levels[id]
}

// IsMaxed reports whether id is at its max level. Unknown ids count as maxed.
func (c *Catalog) IsMaxed(id string) bool {
	def, ok := Lookup(id)
	if !ok {
		return true
	}
	return c.levels[id] >= def.MaxLevel
}

// Apply raises id by one level and recomputes the snapshot. It returns false,
// leaving everything unchanged, for unknown or maxed upgrades.
func (c *Catalog) Apply(id string) bool {
	if c.IsMaxed(id) {
		return false
	}
	if c.levels[id] == 0 {
		c.order = append(c.order, id)
	}
	c.levels[id]++
	c.recompute()
	return true
}

// Acquired lists held upgrades in acquisition order.
func (c *Catalog) Acquired() []Acquired {
	out := make([]Acquired, 0, len(c.order))
	for _, id := range c.order {
		def, _ := Lookup(id)
		out = append(out, Acquired{Definition: def, Level: c.levels[id]})
	}
	return out
}

// RandomChoices samples up to n distinct upgrades that are not maxed,
// weighted by rarity and without replacement. Fewer than n are returned when
// the pool runs dry.
func (c *Catalog) RandomChoices(n int) []Definition {
	pool := make([]Definition, 0, len(definitions))
	for _, def := range definitions {
		if !c.IsMaxed(def.ID) {
			pool = append(pool, def)
		}
	}

	var picks []Definition
	for len(picks) < n && len(pool) > 0 {
		total := 0
		for _, def := range pool {
			total += def.Rarity.Weight()
		}

		roll := rng.Intn(c.roller, total)
		idx := len(pool) - 1
		for i, def := range pool {
			roll -= def.Rarity.Weight()
			if roll < 0 {
				idx = i
				break
			}
		}

		picks = append(picks, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return picks
}

// RerollsLeft is the remaining allowance for the current intermission.
func (c *Catalog) RerollsLeft() int {
	left := RerollsPerIntermission + c.extraRerolls - c.rerollsUsed
	if left < 0 {
		return 0
	}
	return left
}

// CanReroll reports whether a reroll is still allowed this intermission.
func (c *Catalog) CanReroll() bool {
	return c.RerollsLeft() > 0
}

// UseReroll consumes one reroll. It returns false when none are left.
func (c *Catalog) UseReroll() bool {
	if !c.CanReroll() {
		return false
	}
	c.rerollsUsed++
	return true
}

// ResetRerolls restores the allowance at the start of an intermission.
func (c *Catalog) ResetRerolls() {
	c.rerollsUsed = 0
}

func (c *Catalog) recompute() {
	applied := make([]stats.Applied, 0, len(c.order))
	for _, id := range c.order {
		def, _ := Lookup(id)
		applied = append(applied, stats.Applied{ID: id, Level: c.levels[id], Effect: def.Effect})
	}
	c.snapshot = stats.Recompute(c.base, c.mods, applied)
}
