package entity

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/schedule"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
)

// PlayerType is the core.Entity type of the player.
const PlayerType = "player"

// Outcome describes what a hit on the player did.
type Outcome int

// Outcomes
const (
	Ignored Outcome = iota
	BarrierAbsorbed
	ShieldAbsorbed
	Damaged
)

// PlayerOptions carries the character parameters the player needs.
type PlayerOptions struct {
	// DashCooldownScale multiplies DashCooldown. Zero means 1.
	DashCooldownScale float64
	// Rage boosts damage while hp is below the rage threshold.
	Rage           bool
	RageThreshold  float64
	RageMultiplier float64
}

// Player is the player state machine. Movement states are idle/moving and
// dashing; invulnerability is an orthogonal flag; Dead is terminal.
type Player struct {
	ID string

	Pos       geom.Vec
	Vel       geom.Vec
	Knockback geom.Vec
	Facing    geom.Vec

	HP    float64
	MaxHP float64

	LastAttack time.Duration
	LastDash   time.Duration

	Dashing      bool
	Invulnerable bool
	Shield       bool
	Barrier      bool
	Dead         bool

	BarrierTimer    time.Duration
	OverchargeTimer time.Duration
	OrbitAngle      float64
	Blades          int

	opts PlayerOptions
	// invulnGen invalidates pending invulnerability clears.
	invulnGen uint64
}

var _ core.Entity = (*Player)(nil)

// NewPlayer creates a player at pos with full health.
func NewPlayer(id string, pos geom.Vec, maxHP float64, opts PlayerOptions) *Player {
	if !(opts.DashCooldownScale > 0) {
		opts.DashCooldownScale = 1
	}
	return &Player{
		ID:         id,
		Pos:        pos,
		Facing:     geom.V(1, 0),
		HP:         maxHP,
		MaxHP:      maxHP,
		LastAttack: -time.Second,
		LastDash:   -time.Second,
		opts:       opts,
	}
}

// GetID implements core.Entity
func (p *Player) GetID() string { return p.ID }

// GetType implements core.Entity
func (p *Player) GetType() string { return PlayerType }

// Live reports whether the player can still act.
func (p *Player) Live() bool { return !p.Dead }

// SetMaxHP raises or lowers the cap without healing.
func (p *Player) SetMaxHP(maxHP float64) {
	if !geom.Finite(maxHP) || maxHP <= 0 {
		return
	}
	p.MaxHP = maxHP
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Move sets the walking velocity from a joystick-style input. It is ignored
// while dashing.
func (p *Player) Move(input geom.Vec, st stats.Snapshot) {
	if p.Dead || p.Dashing {
		return
	}
	input = input.Sanitize()
	if input.Len() > 1 {
		input, _ = input.Normalize()
	}
	p.Vel = input.Scale(PlayerSpeed * st.MoveSpeedMultiplier).Sanitize()
	if !input.IsZero() {
		p.Facing = input
	}
}

// DashCooldown is the effective cooldown between dashes.
func (p *Player) DashCooldown(st stats.Snapshot) time.Duration {
	return time.Duration(float64(DashCooldown) * p.opts.DashCooldownScale * st.DashCooldownScale())
}

// CanDash reports whether a dash would start at now.
func (p *Player) CanDash(now time.Duration, st stats.Snapshot) bool {
	if p.Dead || p.Dashing {
		return false
	}
	return now-p.LastDash >= p.DashCooldown(st)
}

// Dash starts a dash toward dir. A degenerate dir falls back to the facing
// direction. The dash ends after DashDuration and invulnerability clears
// DashInvulnTail later unless another dash has started.
func (p *Player) Dash(now time.Duration, dir geom.Vec, st stats.Snapshot, sched *schedule.Queue) bool {
	if !p.CanDash(now, st) {
		return false
	}

	d, ok := dir.Normalize()
	if !ok {
		if d, ok = p.Facing.Normalize(); !ok {
			d = geom.V(1, 0)
		}
	}

	p.LastDash = now
	p.Dashing = true
	p.Invulnerable = true
	p.invulnGen++
	p.Facing = d
	p.Vel = d.Scale(DashSpeed)
	p.Knockback = geom.Vec{}

	if sched != nil {
		sched.Schedule(now+DashDuration, p.ID, func() { p.endDash(now+DashDuration, st, sched) })
	}
	return true
}

func (p *Player) endDash(at time.Duration, st stats.Snapshot, sched *schedule.Queue) {
	p.Dashing = false
	p.Vel = geom.Vec{}

	if st.ShieldOnDash {
		p.Shield = true
	}
	if st.OverchargeDuration > 0 {
		p.OverchargeTimer = st.OverchargeDuration
	}

	gen := p.invulnGen
	sched.Schedule(at+DashInvulnTail, p.ID, func() {
		if !p.Dashing && p.invulnGen == gen {
			p.Invulnerable = false
		}
	})
}

// Overcharged reports whether the post-dash fire-rate bonus is active.
func (p *Player) Overcharged() bool {
	return p.OverchargeTimer > 0
}

// CanAttack reports whether the attack cooldown has elapsed.
func (p *Player) CanAttack(now time.Duration, st stats.Snapshot) bool {
	if p.Dead {
		return false
	}
	return now-p.LastAttack >= st.AttackCooldown(AttackCooldown, p.Overcharged())
}

// Shot is one projectile produced by an attack.
type Shot struct {
	Origin geom.Vec
	Angle  float64
	Damage float64
	Crit   bool
}

// Attack fires at target if the cooldown allows. All shots of one volley
// share the crit roll and fan evenly across MultishotSpread.
func (p *Player) Attack(now time.Duration, target geom.Vec, st stats.Snapshot, roller dice.Roller) []Shot {
	if !p.CanAttack(now, st) {
		return nil
	}
	p.LastAttack = now

	damage := BaseDamage * st.DamageMultiplier
	if p.opts.Rage && p.HP < p.MaxHP*p.opts.RageThreshold {
		damage *= p.opts.RageMultiplier
	}
	crit := rng.Chance(roller, st.CritChance)
	if crit {
		damage *= st.CritDamageMultiplier
	}
	if !geom.Finite(damage) || damage < 0 {
		damage = 0
	}

	count := 1 + st.ExtraProjectiles
	if count < 1 {
		count = 1
	}
	spread := 0.0
	if count > 1 {
		spread = MultishotSpread
	}

	base := geom.AngleTo(p.Pos, target)
	shots := make([]Shot, 0, count)
	for i := 0; i < count; i++ {
		angle := base + spread*(float64(i)-float64(count-1)/2)
		shots = append(shots, Shot{
			Origin: p.Pos.Add(geom.FromAngle(angle, MuzzleOffset)),
			Angle:  angle,
			Damage: damage,
			Crit:   crit,
		})
	}
	return shots
}

// TakeDamage applies one hit. Barrier takes precedence over shield, which
// takes precedence over hp loss. A landed hit knocks the player away from
// source and grants HitInvulnerability.
func (p *Player) TakeDamage(now time.Duration, amount float64, source *geom.Vec, sched *schedule.Queue) (Outcome, bool) {
	if p.Dead || p.Invulnerable || p.Dashing {
		return Ignored, false
	}
	if !geom.Finite(amount) || amount <= 0 {
		return Ignored, false
	}

	if p.Barrier {
		p.Barrier = false
		p.BarrierTimer = 0
		return BarrierAbsorbed, false
	}
	if p.Shield {
		p.Shield = false
		return ShieldAbsorbed, false
	}

	p.HP = math.Max(0, p.HP-amount)

	p.Invulnerable = true
	p.invulnGen++
	gen := p.invulnGen
	if sched != nil {
		sched.Schedule(now+HitInvulnerability, p.ID, func() {
			if !p.Dashing && p.invulnGen == gen {
				p.Invulnerable = false
			}
		})
	}

	if source != nil {
		p.Knockback = geom.FromAngle(geom.AngleTo(*source, p.Pos), PlayerKnockback)
	}

	if p.HP <= 0 {
		p.Dead = true
		p.Vel = geom.Vec{}
		return Damaged, true
	}
	return Damaged, false
}

// Heal restores hp up to MaxHP.
func (p *Player) Heal(amount float64) {
	if p.Dead || !geom.Finite(amount) || amount <= 0 {
		return
	}
	p.HP = math.Min(p.HP+amount, p.MaxHP)
}

// Update advances the overcharge, barrier and orbit timers.
func (p *Player) Update(dt time.Duration, st stats.Snapshot) {
	if p.Dead {
		return
	}

	if p.OverchargeTimer > 0 {
		p.OverchargeTimer -= dt
		if p.OverchargeTimer < 0 {
			p.OverchargeTimer = 0
		}
	}

	if !p.Barrier && st.BarrierCharges > 0 {
		p.BarrierTimer += dt
		if p.BarrierTimer >= st.BarrierCooldown {
			p.Barrier = true
			p.BarrierTimer = 0
		}
	}

	p.Blades = st.OrbitingBlades
	p.OrbitAngle += float64(dt) / float64(time.Millisecond) * OrbitAngularSpeed
	if p.OrbitAngle > 2*math.Pi {
		p.OrbitAngle -= 2 * math.Pi
	}
}

// Integrate moves the player and keeps it inside bounds.
func (p *Player) Integrate(dt time.Duration, bounds geom.Rect) {
	if p.Dead {
		return
	}
	v := p.Vel.Add(p.Knockback).Sanitize()
	p.Pos = bounds.Clamp(p.Pos.Add(v.Scale(dt.Seconds())), PlayerRadius)
	p.Knockback = decay(p.Knockback, dt)
}

// BladePositions returns the current orbiting blade positions.
func (p *Player) BladePositions() []geom.Vec {
	if p.Blades <= 0 {
		return nil
	}
	out := make([]geom.Vec, p.Blades)
	step := 2 * math.Pi / float64(p.Blades)
	for i := range out {
		out[i] = p.Pos.Add(geom.FromAngle(p.OrbitAngle+float64(i)*step, OrbitRadius))
	}
	return out
}

// decay shrinks an impulse by KnockbackDecay per KnockbackDecayStep.
func decay(v geom.Vec, dt time.Duration) geom.Vec {
	if v.IsZero() || dt <= 0 {
		return v
	}
	f := math.Pow(KnockbackDecay, float64(dt)/float64(KnockbackDecayStep))
	v = v.Scale(f).Sanitize()
	if v.Len() < 0.5 {
		return geom.Vec{}
	}
	return v
}
