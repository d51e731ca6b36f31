// Package entity holds the mutable actors of a run: the player state
// machine, enemies and their per-kind behaviour policies, projectiles,
// pickups and dash-trail zones.
package entity

import "time"

// Player tuning
const (
	PlayerSpeed        = 180.0
	PlayerRadius       = 16.0
	BaseDamage         = 20.0
	AttackCooldown     = 500 * time.Millisecond
	DashCooldown       = 600 * time.Millisecond
	DashSpeed          = 500.0
	DashDuration       = 150 * time.Millisecond
	DashInvulnTail     = 50 * time.Millisecond
	HitInvulnerability = 300 * time.Millisecond
	PlayerKnockback    = 150.0
	AttackRange        = 300.0
	MultishotSpread    = 0.39269908169872414 // pi/8
)

// Projectile tuning
const (
	ProjectileSpeed      = 400.0
	ProjectileLifetime   = 2 * time.Second
	MuzzleOffset         = 18.0
	PlayerShotRadius     = 5.0
	EnemyShotRadius      = 6.0
	OutOfBoundsMargin    = 50.0
	EnemyShotSpeed       = 180.0
	EnemyShotOffset      = 16.0
	RingShotSpeed        = 150.0
	RingShotOffset       = 30.0
	RingShotCount        = 12
	RingShotStagger      = 50 * time.Millisecond
	RingShotDamageFactor = 0.5
)

// Companion tuning
const (
	OrbitRadius       = 45.0
	OrbitAngularSpeed = 0.003 // radians per millisecond
	BladeProximity    = 25.0
	BladeDamage       = 15.0
	BladeCooldown     = 300 * time.Millisecond
	TrailLength       = DashSpeed * 0.15 * 2
	TrailWidth        = 40.0
	TrailLifetime     = 300 * time.Millisecond
	TrailCooldown     = 200 * time.Millisecond
)

// Enemy tuning
const (
	EnemyKnockback      = 100.0
	KnockbackDecay      = 0.9
	KnockbackDecayStep  = time.Second / 60
	FreezeDuration      = 1500 * time.Millisecond
	ShooterPreferred    = 150.0
	ShooterTolerance    = 30.0
	ShooterRange        = 250.0
	ShooterCooldown     = 2 * time.Second
	ShooterTelegraph    = 300 * time.Millisecond
	BomberTrigger       = 40.0
	BomberRadius        = 70.0
	BomberPulses        = 3
	BomberPulseInterval = 300 * time.Millisecond
	BossSlamCooldown    = 4 * time.Second
	BossSlamRadius      = 100.0
	BossSlamTrigger     = BossSlamRadius + 20
	BossSlamTelegraph   = time.Second
	BossRingCooldown    = 6 * time.Second
	MiniSplitterSpeed   = 100.0
	MiniSplitterRadius  = 8.0
	MiniSplitterOffset  = 20.0
)

// Pickup tuning
const (
	PickupReach     = 20.0
	PickupPullSpeed = 300.0
)
