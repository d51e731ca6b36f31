package entity

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
)

// Continuation is what a player projectile does after hitting an enemy.
type Continuation int

// Continuations
const (
	Spent Continuation = iota
	Pierced
	Bounced
)

// Projectile is a player or enemy shot.
type Projectile struct {
	ID string

	Pos    geom.Vec
	Vel    geom.Vec
	Speed  float64
	Damage float64
	Radius float64

	Hostile bool
	Crit    bool

	Pierce int
	Bounce int
	Chain  int

	ExpiresAt time.Duration
	Active    bool

	hit map[string]struct{}
}

// NewPlayerProjectile creates a player shot carrying the continuation
// modifiers of st.
func NewPlayerProjectile(id string, shot Shot, st stats.Snapshot, now time.Duration) *Projectile {
	size := st.ProjectileSizeMultiplier
	if !(size > 0) {
		size = 1
	}
	return &Projectile{
		ID:        id,
		Pos:       shot.Origin.Sanitize(),
		Vel:       geom.FromAngle(shot.Angle, ProjectileSpeed),
		Speed:     ProjectileSpeed,
		Damage:    shot.Damage,
		Radius:    PlayerShotRadius * size,
		Crit:      shot.Crit,
		Pierce:    st.PierceCount,
		Bounce:    st.BounceCount,
		Chain:     st.ChainLightning,
		ExpiresAt: now + ProjectileLifetime,
		Active:    true,
		hit:       make(map[string]struct{}),
	}
}

// NewEnemyProjectile creates a hostile shot.
func NewEnemyProjectile(id string, origin geom.Vec, angle, damage, speed float64, now time.Duration) *Projectile {
	return &Projectile{
		ID:        id,
		Pos:       origin.Sanitize(),
		Vel:       geom.FromAngle(angle, speed),
		Speed:     speed,
		Damage:    damage,
		Radius:    EnemyShotRadius,
		Hostile:   true,
		ExpiresAt: now + ProjectileLifetime,
		Active:    true,
		hit:       make(map[string]struct{}),
	}
}

// Step moves the projectile and deactivates it once it expires or leaves
// bounds by more than OutOfBoundsMargin.
func (p *Projectile) Step(dt, now time.Duration, bounds geom.Rect) {
	if !p.Active {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt.Seconds())).Sanitize()
	if now >= p.ExpiresAt || !bounds.Contains(p.Pos, OutOfBoundsMargin) {
		p.Active = false
	}
}

// HasHit reports whether id was already hit by this projectile.
func (p *Projectile) HasHit(id string) bool {
	_, ok := p.hit[id]
	return ok
}

// MarkHit records id as hit.
func (p *Projectile) MarkHit(id string) {
	if p.hit == nil {
		p.hit = make(map[string]struct{})
	}
	p.hit[id] = struct{}{}
}

// Continue spends one pierce charge, or failing that one bounce charge.
func (p *Projectile) Continue() Continuation {
	if p.Pierce > 0 {
		p.Pierce--
		return Pierced
	}
	if p.Bounce > 0 {
		p.Bounce--
		return Bounced
	}
	return Spent
}

// Redirect points the projectile at target keeping its speed.
func (p *Projectile) Redirect(target geom.Vec) {
	p.Vel = geom.FromAngle(geom.AngleTo(p.Pos, target), p.Speed)
}

// Deactivate removes the projectile from play.
func (p *Projectile) Deactivate() {
	p.Active = false
}
