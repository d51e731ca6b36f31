// Package world holds the state shared by every stage of a tick: the clock,
// the entity lists, the deferred-action queue and the resolved stats.
package world

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/schedule"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

// Arena size
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Config configures a World.
type Config struct {
	// Bounds defaults to the 800x600 arena.
	Bounds    geom.Rect
	Roller    dice.Roller
	IDs       idgen.Generator
	Presenter fx.Presenter
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDs == nil {
		vb.RequiredField("IDs")
	}
	if c.Bounds != (geom.Rect{}) && (c.Bounds.Width() <= 0 || c.Bounds.Height() <= 0) {
		vb.Field("Bounds", "must have positive size")
	}

	return vb.Build()
}

// World is owned by one simulation and only touched inside its tick.
type World struct {
	Bounds geom.Rect
	Now    time.Duration

	Player  *entity.Player
	Enemies []*entity.Enemy
	Shots   []*entity.Projectile
	Pickups []*entity.Pickup
	Trails  []*entity.Trail

	Queue  *schedule.Queue
	Roller dice.Roller
	FX     fx.Presenter
	Stats  stats.Snapshot

	ids   idgen.Generator
	index map[string]*entity.Enemy
}

// New creates an empty world.
func New(cfg *Config) (*World, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid world config")
	}

	bounds := cfg.Bounds
	if bounds == (geom.Rect{}) {
		bounds = geom.NewRect(DefaultWidth, DefaultHeight)
	}
	presenter := cfg.Presenter
	if presenter == nil {
		presenter = fx.Nop()
	}

	w := &World{
		Bounds: bounds,
		Roller: cfg.Roller,
		FX:     presenter,
		Stats:  stats.Base(),
		ids:    cfg.IDs,
		index:  make(map[string]*entity.Enemy),
	}
	w.Queue = schedule.New(w)
	return w, nil
}

// NextID returns a fresh entity id.
func (w *World) NextID() string {
	return w.ids.Generate()
}

// Live implements schedule.Liveness. The player is live until dead and an
// enemy until deactivated; unknown ids are not live.
func (w *World) Live(id string) bool {
	if w.Player != nil && id == w.Player.ID {
		return w.Player.Live()
	}
	e, ok := w.index[id]
	return ok && e.Active
}

// Enemy returns the enemy with id.
func (w *World) Enemy(id string) (*entity.Enemy, bool) {
	e, ok := w.index[id]
	return e, ok
}

// AddEnemy spawns an enemy of kind at pos.
func (w *World) AddEnemy(kind entity.Kind, pos geom.Vec, mult float64) *entity.Enemy {
	e := entity.NewEnemy(w.NextID(), kind, pos, mult, w.Now)
	w.track(e)
	return e
}

// AddMiniSplitter spawns one split child of parent.
func (w *World) AddMiniSplitter(parent *entity.Enemy, dx float64) *entity.Enemy {
	e := entity.NewMiniSplitter(w.NextID(), parent, dx)
	w.track(e)
	return e
}

func (w *World) track(e *entity.Enemy) {
	w.Enemies = append(w.Enemies, e)
	w.index[e.ID] = e
}

// AddPlayerShots turns an attack volley into projectiles.
func (w *World) AddPlayerShots(shots []entity.Shot) {
	for _, shot := range shots {
		w.Shots = append(w.Shots, entity.NewPlayerProjectile(w.NextID(), shot, w.Stats, w.Now))
	}
}

// AddEnemyShot fires a hostile projectile.
func (w *World) AddEnemyShot(origin geom.Vec, angle, damage, speed float64) *entity.Projectile {
	p := entity.NewEnemyProjectile(w.NextID(), origin, angle, damage, speed, w.Now)
	w.Shots = append(w.Shots, p)
	return p
}

// SpawnPickup drops a pickup at pos.
func (w *World) SpawnPickup(kind entity.PickupKind, pos geom.Vec, value int) *entity.Pickup {
	p := entity.NewPickup(w.NextID(), kind, pos, value)
	w.Pickups = append(w.Pickups, p)
	return p
}

// AddTrail lays a dash-trail zone.
func (w *World) AddTrail(origin, dir geom.Vec, damage float64) *entity.Trail {
	t := entity.NewTrail(w.NextID(), origin, dir, damage, w.Now)
	w.Trails = append(w.Trails, t)
	return t
}

// Targetable reports whether e can be hit or can hurt by contact. A bomber
// counting down to detonation is neither.
func Targetable(e *entity.Enemy) bool {
	return e.Active && !(e.Kind == entity.Bomber && e.Bomber.Exploding)
}

// ActiveEnemies returns the enemies that can currently be targeted.
func (w *World) ActiveEnemies() []*entity.Enemy {
	out := make([]*entity.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if Targetable(e) {
			out = append(out, e)
		}
	}
	return out
}

// NearestEnemy returns the closest targetable enemy to from within maxDist
// that skip does not exclude. Ties go to the earlier spawn.
func (w *World) NearestEnemy(from geom.Vec, maxDist float64, skip func(*entity.Enemy) bool) *entity.Enemy {
	var best *entity.Enemy
	bestDist := maxDist
	for _, e := range w.Enemies {
		if !Targetable(e) || (skip != nil && skip(e)) {
			continue
		}
		d := geom.Dist(from, e.Pos)
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// LiveEnemyCount counts active enemies including detonating bombers.
func (w *World) LiveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// ClearEnemyShots deactivates every hostile projectile.
func (w *World) ClearEnemyShots() {
	for _, p := range w.Shots {
		if p.Hostile {
			p.Deactivate()
		}
	}
}

// Compact drops dead enemies, spent shots, collected pickups and expired
// trails. It must only run between resolution passes.
func (w *World) Compact() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Active {
			enemies = append(enemies, e)
			continue
		}
		delete(w.index, e.ID)
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	shots := w.Shots[:0]
	for _, p := range w.Shots {
		if p.Active {
			shots = append(shots, p)
		}
	}
	clear(w.Shots[len(shots):])
	w.Shots = shots

	pickups := w.Pickups[:0]
	for _, p := range w.Pickups {
		if !p.Collected {
			pickups = append(pickups, p)
		}
	}
	clear(w.Pickups[len(pickups):])
	w.Pickups = pickups

	trails := w.Trails[:0]
	for _, t := range w.Trails {
		if !t.Expired(w.Now) {
			trails = append(trails, t)
		}
	}
	clear(w.Trails[len(trails):])
	w.Trails = trails
}

// Reset empties the world for a new run.
func (w *World) Reset() {
	w.Now = 0
	w.Player = nil
	w.Enemies = nil
	w.Shots = nil
	w.Pickups = nil
	w.Trails = nil
	w.Stats = stats.Base()
	w.index = make(map[string]*entity.Enemy)
	w.Queue.Clear()
}
