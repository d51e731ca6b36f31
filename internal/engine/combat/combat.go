// Package combat resolves overlaps between the actors of a tick and owns the
// death and drop policy.
package combat

import (
	"math"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/world"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Resolution tuning
const (
	SceneInvulnerability = 400 * time.Millisecond
	ChainRadius          = 150.0
	ChainDamageFactor    = 0.5
	BounceRadius         = 200.0
	ExplosionRadius      = 60.0
	EssenceDropChance    = 0.3
)

// Tally receives kill credit.
type Tally interface {
	RecordKill()
}

// Config configures a Resolver.
type Config struct {
	World *world.World
	Tally Tally

	// ThornsReflect is the fraction of landed damage the character reflects
	// at its attacker, rounded. Zero disables it.
	ThornsReflect float64
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Tally == nil {
		vb.RequiredField("Tally")
	}
	if c.ThornsReflect < 0 || math.IsNaN(c.ThornsReflect) {
		vb.Field("ThornsReflect", "must not be negative")
	}

	return vb.Build()
}

// Resolver applies damage between the player and enemies.
type Resolver struct {
	world  *world.World
	tally  Tally
	thorns float64

	// invulnUntil is the scene-level hit window, independent of the
	// player's own flag.
	invulnUntil time.Duration
	// exploding is set while explosive-kill damage is being applied so that
	// kills it causes do not explode in turn.
	exploding bool
}

// New creates a resolver.
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combat config")
	}

	return &Resolver{
		world:  cfg.World,
		tally:  cfg.Tally,
		thorns: cfg.ThornsReflect,
	}, nil
}

// Reset clears the scene-level hit window.
func (r *Resolver) Reset() {
	r.invulnUntil = 0
	r.exploding = false
}

// Resolve runs one pass over player shots, enemy shots, contacts, dash
// trails and orbiting blades.
func (r *Resolver) Resolve() {
	r.resolvePlayerShots()
	r.resolveEnemyShots()
	r.resolveContacts()
	r.resolveTrails()
	r.resolveBlades()
}

func (r *Resolver) resolvePlayerShots() {
	w := r.world
	for _, shot := range w.Shots {
		if shot.Hostile {
			continue
		}
		// Iterate by index: kills may append mini splitters.
		for i := 0; i < len(w.Enemies) && shot.Active; i++ {
			e := w.Enemies[i]
			if !world.Targetable(e) || shot.HasHit(e.ID) {
				continue
			}
			if geom.Dist(shot.Pos, e.Pos) >= shot.Radius+e.Radius {
				continue
			}
			r.hit(shot, e)
		}
	}
}

func (r *Resolver) hit(shot *entity.Projectile, e *entity.Enemy) {
	w := r.world
	angle := geom.AngleTo(shot.Pos, e.Pos)
	damage := shot.Damage

	r.DamageEnemy(e, damage, &angle, shot.Crit)

	if w.Stats.LifestealPercent > 0 && damage > 0 && w.Player != nil {
		w.Player.Heal(damage * w.Stats.LifestealPercent)
	}

	shot.MarkHit(e.ID)
	if shot.Chain > 0 {
		r.chain(shot, e)
	}

	switch shot.Continue() {
	case entity.Pierced:
	case entity.Bounced:
		next := w.NearestEnemy(shot.Pos, BounceRadius, func(c *entity.Enemy) bool { return shot.HasHit(c.ID) })
		if next == nil {
			shot.Deactivate()
			return
		}
		shot.Redirect(next.Pos)
	default:
		shot.Deactivate()
	}
}

// chain arcs half damage from source to the nearest not-yet-hit enemies.
// Chained targets are marked hit and do not chain further.
func (r *Resolver) chain(shot *entity.Projectile, source *entity.Enemy) {
	origin := source.Pos
	var candidates []*entity.Enemy
	for _, e := range r.world.Enemies {
		if world.Targetable(e) && !shot.HasHit(e.ID) {
			candidates = append(candidates, e)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return geom.Dist(origin, candidates[i].Pos) < geom.Dist(origin, candidates[j].Pos)
	})
	if len(candidates) > shot.Chain {
		candidates = candidates[:shot.Chain]
	}

	for _, e := range candidates {
		if geom.Dist(origin, e.Pos) >= ChainRadius {
			continue
		}
		r.DamageEnemy(e, shot.Damage*ChainDamageFactor, nil, false)
		shot.MarkHit(e.ID)
	}
}

func (r *Resolver) resolveEnemyShots() {
	p := r.world.Player
	if p == nil {
		return
	}
	for _, shot := range r.world.Shots {
		if !shot.Hostile || !shot.Active {
			continue
		}
		if geom.Dist(shot.Pos, p.Pos) >= shot.Radius+entity.PlayerRadius {
			continue
		}
		r.ApplyPlayerDamage(shot.Damage, nil)
		shot.Deactivate()
	}
}

func (r *Resolver) resolveContacts() {
	p := r.world.Player
	if p == nil {
		return
	}
	for i := 0; i < len(r.world.Enemies); i++ {
		e := r.world.Enemies[i]
		if !world.Targetable(e) {
			continue
		}
		if geom.Dist(e.Pos, p.Pos) >= e.Radius+entity.PlayerRadius {
			continue
		}
		r.ApplyPlayerDamage(e.Damage, e)
	}
}

func (r *Resolver) resolveTrails() {
	w := r.world
	for _, t := range w.Trails {
		if t.Expired(w.Now) {
			continue
		}
		for i := 0; i < len(w.Enemies); i++ {
			e := w.Enemies[i]
			if !world.Targetable(e) || e.TrailCooldown || !t.Overlaps(e.Pos, e.Radius) {
				continue
			}
			r.DamageEnemy(e, t.Damage, nil, false)
			e.TrailCooldown = true
			w.Queue.Schedule(w.Now+entity.TrailCooldown, e.ID, func() { e.TrailCooldown = false })
		}
	}
}

func (r *Resolver) resolveBlades() {
	w := r.world
	if w.Player == nil || w.Player.Dead {
		return
	}
	for _, blade := range w.Player.BladePositions() {
		for i := 0; i < len(w.Enemies); i++ {
			e := w.Enemies[i]
			if !world.Targetable(e) || e.BladeCooldown {
				continue
			}
			if geom.Dist(blade, e.Pos) >= entity.BladeProximity {
				continue
			}
			r.DamageEnemy(e, entity.BladeDamage, nil, false)
			e.BladeCooldown = true
			w.Queue.Schedule(w.Now+entity.BladeCooldown, e.ID, func() { e.BladeCooldown = false })
		}
	}
}

// ApplyPlayerDamage is the single path by which anything hurts the player.
// Damage lands only when both the scene-level window and the player's own
// flags allow it. It returns true when the hit kills the player.
func (r *Resolver) ApplyPlayerDamage(amount float64, source *entity.Enemy) bool {
	w := r.world
	p := w.Player
	if p == nil || p.Dead {
		return false
	}
	if p.Invulnerable || p.Dashing || w.Now < r.invulnUntil {
		return false
	}
	if !geom.Finite(amount) || amount <= 0 {
		return false
	}

	var from *geom.Vec
	if source != nil {
		pos := source.Pos
		from = &pos
	}

	outcome, died := p.TakeDamage(w.Now, amount, from, w.Queue)
	switch outcome {
	case entity.BarrierAbsorbed:
		w.FX.Sound(fx.CueBlock)
		w.FX.Notify(fx.NoticeBarrierBlock, nil)
	case entity.ShieldAbsorbed:
		w.FX.Sound(fx.CueBlock)
		w.FX.Notify(fx.NoticeShieldBlock, nil)
	case entity.Damaged:
		r.invulnUntil = w.Now + SceneInvulnerability
		w.FX.DamageNumber(p.Pos, amount, false)
		w.FX.Shake(100*time.Millisecond, 0.01)
		w.FX.Sound(fx.CueHit)
		r.reflect(amount, source)
	}
	return died
}

// reflect returns thorns damage to the attacker: the upgrade share plus the
// character share, which is rounded.
func (r *Resolver) reflect(amount float64, source *entity.Enemy) {
	if source == nil || !world.Targetable(source) {
		return
	}
	damage := 0.0
	if pct := r.world.Stats.ThornsPercent; pct > 0 {
		damage += amount * pct
	}
	if r.thorns > 0 {
		damage += math.Round(amount * r.thorns)
	}
	if damage > 0 {
		r.DamageEnemy(source, damage, nil, false)
	}
}

// DamageEnemy applies damage from any player source, rolls freeze and runs
// the kill path on a lethal hit. It returns true when e died.
func (r *Resolver) DamageEnemy(e *entity.Enemy, amount float64, angle *float64, crit bool) bool {
	w := r.world
	if !world.Targetable(e) {
		return false
	}

	lethal := e.TakeDamage(amount, angle)
	w.FX.DamageNumber(e.Pos, amount, crit)

	if w.Stats.FreezeChance > 0 && rng.Chance(w.Roller, w.Stats.FreezeChance) {
		e.Freeze(entity.FreezeDuration)
		w.FX.Notify(fx.NoticeFreeze, map[string]any{"enemy_id": e.ID})
	}

	if lethal {
		r.kill(e)
	}
	return lethal
}

func (r *Resolver) kill(e *entity.Enemy) {
	w := r.world
	r.tally.RecordKill()

	if e.Kind == entity.Bomber {
		r.StartDetonation(e)
		return
	}

	e.Kill()
	r.drop(e)

	if dmg := w.Stats.ExplosiveKillDamage; dmg > 0 && !r.exploding {
		r.explode(e, dmg)
	}

	if e.Kind == entity.Splitter && !e.IsMini() {
		w.AddMiniSplitter(e, -entity.MiniSplitterOffset)
		w.AddMiniSplitter(e, entity.MiniSplitterOffset)
	}
}

func (r *Resolver) drop(e *entity.Enemy) {
	w := r.world
	w.SpawnPickup(entity.PickupXP, e.Pos, e.XP)
	if rng.Chance(w.Roller, EssenceDropChance) && e.Essence > 0 {
		w.SpawnPickup(entity.PickupEssence, e.Pos, e.Essence)
	}
}

func (r *Resolver) explode(source *entity.Enemy, damage float64) {
	w := r.world
	r.exploding = true
	defer func() { r.exploding = false }()

	// Snapshot the targets: kills inside the loop may append splitters.
	targets := make([]*entity.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e != source && world.Targetable(e) && geom.Dist(source.Pos, e.Pos) < ExplosionRadius {
			targets = append(targets, e)
		}
	}
	for _, e := range targets {
		r.DamageEnemy(e, damage, nil, false)
	}
}

// StartDetonation begins a bomber's self-destruct: BomberPulses telegraph
// pulses, then an explosion that hurts the player inside BomberRadius and
// leaves only an xp drop. Repeated calls are no-ops.
func (r *Resolver) StartDetonation(e *entity.Enemy) {
	w := r.world
	if !e.Active || e.Kind != entity.Bomber || e.Bomber.Exploding {
		return
	}
	e.Bomber.Exploding = true
	e.Vel = geom.Vec{}

	start := w.Now
	for i := 0; i < entity.BomberPulses; i++ {
		pulse := i + 1
		w.Queue.Schedule(start+time.Duration(i)*entity.BomberPulseInterval, e.ID, func() {
			w.FX.Notify(fx.NoticeTelegraph, map[string]any{"enemy_id": e.ID, "pulse": pulse})
		})
	}
	w.Queue.Schedule(start+entity.BomberPulses*entity.BomberPulseInterval, e.ID, func() {
		r.detonate(e)
	})
}

func (r *Resolver) detonate(e *entity.Enemy) {
	w := r.world
	if w.Player != nil && geom.Dist(e.Pos, w.Player.Pos) < entity.BomberRadius {
		r.ApplyPlayerDamage(e.Damage, e)
	}
	w.FX.Shake(150*time.Millisecond, 0.015)
	w.FX.Sound(fx.CueExplosion)

	e.Kill()
	w.SpawnPickup(entity.PickupXP, e.Pos, e.XP)
}

// Slam hurts the player when it is within radius of e. It is the landing of
// a telegraphed boss slam.
func (r *Resolver) Slam(e *entity.Enemy, radius float64) {
	w := r.world
	if !e.Active {
		return
	}
	if w.Player != nil && geom.Dist(e.Pos, w.Player.Pos) < radius {
		r.ApplyPlayerDamage(e.Damage, e)
	}
	w.FX.Shake(200*time.Millisecond, 0.02)
	w.FX.Sound(fx.CueExplosion)
}

// ClearWave kills every remaining enemy at wave end. Each drops its loot but
// does not split, explode or count as a kill. Hostile shots are removed.
func (r *Resolver) ClearWave() int {
	w := r.world
	cleared := 0
	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		e.Kill()
		r.drop(e)
		cleared++
	}
	w.ClearEnemyShots()
	return cleared
}

// InvulnerableUntil is the end of the scene-level hit window.
func (r *Resolver) InvulnerableUntil() time.Duration {
	return r.invulnUntil
}
