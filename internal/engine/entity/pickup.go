package entity

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

// PickupKind distinguishes xp orbs from essence coins.
type PickupKind int

// Pickup kinds
const (
	PickupXP PickupKind = iota
	PickupEssence
)

// String returns the pickup kind name
func (k PickupKind) String() string {
	if k == PickupEssence {
		return "essence"
	}
	return "xp"
}

// Pickup is a collectible dropped by a dead enemy.
type Pickup struct {
	ID        string
	Kind      PickupKind
	Value     int
	Pos       geom.Vec
	Vel       geom.Vec
	Collected bool
}

// NewPickup creates a pickup at pos.
func NewPickup(id string, kind PickupKind, pos geom.Vec, value int) *Pickup {
	return &Pickup{ID: id, Kind: kind, Value: value, Pos: pos.Sanitize()}
}

// Attract pulls the pickup toward target when it is within magnet range.
// The pull weakens linearly with distance and scale multiplies it.
func (p *Pickup) Attract(target geom.Vec, magnetRange, scale float64) {
	if p.Collected {
		return
	}
	d := geom.Dist(p.Pos, target)
	if !(magnetRange > 0) || d >= magnetRange {
		p.Vel = geom.Vec{}
		return
	}
	speed := PickupPullSpeed * (1 - d/magnetRange) * scale
	p.Vel = geom.FromAngle(geom.AngleTo(p.Pos, target), speed)
}

// Step moves the pickup by its velocity.
func (p *Pickup) Step(dt time.Duration) {
	if p.Collected {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt.Seconds())).Sanitize()
}

// InReach reports whether target is close enough to collect.
func (p *Pickup) InReach(target geom.Vec) bool {
	return !p.Collected && geom.Dist(p.Pos, target) < PickupReach
}

// Collect marks the pickup collected. Only the first call succeeds.
func (p *Pickup) Collect() bool {
	if p.Collected {
		return false
	}
	p.Collected = true
	p.Vel = geom.Vec{}
	return true
}
