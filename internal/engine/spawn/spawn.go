// Package spawn is the wave director: wave timing, spawn cadence, the enemy
// pool unlocked by wave number and the boss cadence.
package spawn

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Cadence tuning
const (
	FirstInterval    = 2000 * time.Millisecond
	IntervalStep     = 100 * time.Millisecond
	MinInterval      = 800 * time.Millisecond
	MaxBatch         = 4
	BossEvery        = 5
	BossWaveDuration = 40 * time.Second
	EdgeInset        = 30.0
	EdgeMargin       = 50.0
	BossSpawnY       = 100.0
)

// State is the director's phase.
type State int

// States
const (
	Idle State = iota
	Active
	Intermission
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Intermission:
		return "intermission"
	default:
		return "idle"
	}
}

// Spawn is one enemy the simulation should create.
type Spawn struct {
	Kind       entity.Kind
	Pos        geom.Vec
	Multiplier float64
}

// Wave describes a wave that just started.
type Wave struct {
	Number   int
	Duration time.Duration
	Boss     *Spawn
}

// Report is the outcome of one Advance.
type Report struct {
	Spawns []Spawn
	// Expired is true on exactly the call that ends the wave.
	Expired bool
}

// Config configures a Director.
type Config struct {
	Bounds geom.Rect
	Roller dice.Roller
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Bounds.Width() <= 2*EdgeMargin || c.Bounds.Height() <= 2*EdgeMargin {
		vb.Fieldf("Bounds", "must be larger than %v on each side", 2*EdgeMargin)
	}

	return vb.Build()
}

// Director runs the Active/Intermission cycle.
type Director struct {
	bounds geom.Rect
	roller dice.Roller

	state      State
	wave       int
	remaining  time.Duration
	sinceSpawn time.Duration
	interval   time.Duration
}

// New creates an idle director.
func New(cfg *Config) (*Director, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid spawn config")
	}
	return &Director{bounds: cfg.Bounds, roller: cfg.Roller}, nil
}

// StartWave advances to the next wave. The first batch spawns on the next
// Advance.
func (d *Director) StartWave() Wave {
	d.wave++
	d.state = Active
	d.remaining = Duration(d.wave)
	d.interval = FirstInterval
	d.sinceSpawn = d.interval

	w := Wave{Number: d.wave, Duration: d.remaining}
	if IsBossWave(d.wave) {
		w.Boss = &Spawn{
			Kind:       entity.Boss,
			Pos:        geom.V(d.bounds.Min.X+d.bounds.Width()/2, d.bounds.Min.Y+BossSpawnY),
			Multiplier: BossMultiplier(d.wave),
		}
	}
	return w
}

// Advance runs the wave clock. It does nothing outside Active.
func (d *Director) Advance(dt time.Duration) Report {
	if d.state != Active || dt < 0 {
		return Report{}
	}

	var r Report
	d.remaining -= dt
	d.sinceSpawn += dt

	// The call that ends the wave never spawns.
	if d.remaining <= 0 {
		d.remaining = 0
		d.state = Intermission
		r.Expired = true
		return r
	}

	if d.sinceSpawn >= d.interval {
		d.sinceSpawn = 0
		mult := Multiplier(d.wave)
		for i := 0; i < BatchSize(d.wave); i++ {
			r.Spawns = append(r.Spawns, Spawn{
				Kind:       d.pickKind(),
				Pos:        d.edgePosition(),
				Multiplier: mult,
			})
		}
		d.interval = Interval(d.wave)
	}
	return r
}

func (d *Director) pickKind() entity.Kind {
	pool := Pool(d.wave)
	return pool[rng.Intn(d.roller, len(pool))]
}

// edgePosition picks a point just inside one of the four arena edges.
func (d *Director) edgePosition() geom.Vec {
	b := d.bounds
	along := func(lo, hi float64) float64 {
		span := int(hi - lo)
		return lo + float64(rng.Intn(d.roller, span+1))
	}

	switch rng.Intn(d.roller, 4) {
	case 0:
		return geom.V(along(b.Min.X+EdgeMargin, b.Max.X-EdgeMargin), b.Min.Y+EdgeInset)
	case 1:
		return geom.V(b.Max.X-EdgeInset, along(b.Min.Y+EdgeMargin, b.Max.Y-EdgeMargin))
	case 2:
		return geom.V(along(b.Min.X+EdgeMargin, b.Max.X-EdgeMargin), b.Max.Y-EdgeInset)
	default:
		return geom.V(b.Min.X+EdgeInset, along(b.Min.Y+EdgeMargin, b.Max.Y-EdgeMargin))
	}
}

// State returns the current phase.
func (d *Director) State() State { return d.state }

// Wave returns the current wave number, zero before the first wave.
func (d *Director) Wave() int { return d.wave }

// Remaining is the time left on the wave clock.
func (d *Director) Remaining() time.Duration { return d.remaining }

// Reset returns the director to idle before wave one.
func (d *Director) Reset() {
	*d = Director{bounds: d.bounds, roller: d.roller}
}

// Pool lists the kinds unlocked at wave.
func Pool(wave int) []entity.Kind {
	pool := []entity.Kind{entity.Chaser}
	if wave >= 2 {
		pool = append(pool, entity.Shooter)
	}
	if wave >= 3 {
		pool = append(pool, entity.Tank)
	}
	if wave >= 4 {
		pool = append(pool, entity.Splitter)
	}
	if wave >= 5 {
		pool = append(pool, entity.Bomber)
	}
	return pool
}

// Interval is the spawn cadence after the first batch of wave.
func Interval(wave int) time.Duration {
	i := FirstInterval - time.Duration(wave)*IntervalStep
	if i < MinInterval {
		return MinInterval
	}
	return i
}

// BatchSize is how many enemies spawn per batch.
func BatchSize(wave int) int {
	return min(1+wave/3, MaxBatch)
}

// Multiplier scales regular enemy hp and damage.
func Multiplier(wave int) float64 {
	return 1 + float64(wave-1)*0.15
}

// BossMultiplier scales the boss's hp and damage.
func BossMultiplier(wave int) float64 {
	return 1 + math.Floor(float64(wave)/BossEvery)*0.3
}

// IsBossWave reports whether wave spawns a boss.
func IsBossWave(wave int) bool {
	return wave > 0 && wave%BossEvery == 0
}

// Duration is the length of wave.
func Duration(wave int) time.Duration {
	if IsBossWave(wave) {
		return BossWaveDuration
	}
	return time.Duration(25+min(wave, 10)) * time.Second
}
