// Package stats resolves the player's effective numbers from the base table,
// the selected character and the upgrades acquired during a run.
package stats

import (
	"math"
	"time"
)

// MinDashCooldownScale is the floor applied to DashCooldownMultiplier.
const MinDashCooldownScale = 0.3

// Snapshot is the fully resolved stat set. It is a plain value: consumers
// receive copies and a new snapshot replaces the old one wholesale.
type Snapshot struct {
	DamageMultiplier         float64       `json:"damageMultiplier"`
	AttackSpeedMultiplier    float64       `json:"attackSpeedMultiplier"`
	CritChance               float64       `json:"critChance"`
	CritDamageMultiplier     float64       `json:"critDamageMultiplier"`
	MaxHP                    float64       `json:"maxHp"`
	ThornsPercent            float64       `json:"thornsPercent"`
	MoveSpeedMultiplier      float64       `json:"moveSpeedMultiplier"`
	DashCooldownMultiplier   float64       `json:"dashCooldownMultiplier"`
	PierceCount              int           `json:"pierceCount"`
	BounceCount              int           `json:"bounceCount"`
	ExtraProjectiles         int           `json:"extraProjectiles"`
	ProjectileSizeMultiplier float64       `json:"projectileSizeMultiplier"`
	ChainLightning           int           `json:"chainLightning"`
	LifestealPercent         float64       `json:"lifestealPercent"`
	FreezeChance             float64       `json:"freezeChance"`
	ShieldOnDash             bool          `json:"shieldOnDash"`
	OrbitingBlades           int           `json:"orbitingBlades"`
	DashTrailDamage          float64       `json:"dashTrailDamage"`
	OverchargeBonus          float64       `json:"overchargeBonus"`
	OverchargeDuration       time.Duration `json:"overchargeDuration"`
	BarrierCharges           int           `json:"barrierCharges"`
	BarrierCooldown          time.Duration `json:"barrierCooldown"`
	ExplosiveKillDamage      float64       `json:"explosiveKillDamage"`
	MagnetRange              float64       `json:"magnetRange"`
	XPGainMultiplier         float64       `json:"xpGainMultiplier"`
	HealOnWave               float64       `json:"healOnWave"`
}

// Base returns the stat table every run starts from.
func Base() Snapshot {
	return Snapshot{
		DamageMultiplier:         1,
		AttackSpeedMultiplier:    1,
		CritChance:               0.05,
		CritDamageMultiplier:     1.5,
		MaxHP:                    100,
		MoveSpeedMultiplier:      1,
		DashCooldownMultiplier:   1,
		ProjectileSizeMultiplier: 1,
		BarrierCooldown:          15 * time.Second,
		MagnetRange:              60,
		XPGainMultiplier:         1,
	}
}

// DashCooldownScale is DashCooldownMultiplier floored at MinDashCooldownScale.
func (s Snapshot) DashCooldownScale() float64 {
	if !(s.DashCooldownMultiplier > MinDashCooldownScale) {
		return MinDashCooldownScale
	}
	return s.DashCooldownMultiplier
}

// AttackCooldown scales base by attack speed and, while overcharged, by the
// overcharge bonus.
func (s Snapshot) AttackCooldown(base time.Duration, overcharged bool) time.Duration {
	speed := s.AttackSpeedMultiplier
	if !(speed > 0) || math.IsInf(speed, 0) {
		speed = 1
	}
	cooldown := float64(base) / speed
	if overcharged && s.OverchargeBonus > 0 {
		cooldown /= 1 + s.OverchargeBonus
	}
	return time.Duration(cooldown)
}

// Effect is one level of an upgrade. level is the 1-based level being
// applied. Effects must only read and write their own fields.
type Effect func(s Snapshot, level int) Snapshot

// Modifiers are the selected character's multipliers. A zero multiplier means
// "unset" and is treated as 1.
type Modifiers struct {
	MaxHP       float64
	MoveSpeed   float64
	Damage      float64
	FireRate    float64
	PickupRange float64
	XPGain      float64

	// Perk is applied once after the multipliers and before any upgrade.
	Perk Effect
}

// Applied is an acquired upgrade as seen by Recompute.
type Applied struct {
	ID     string
	Level  int
	Effect Effect
}

// Recompute derives a snapshot from scratch: multipliers, then the perk, then
// each upgrade invoked once per held level in acquisition order. It never
// mutates its inputs.
func Recompute(base Snapshot, mods Modifiers, applied []Applied) Snapshot {
	s := base

	s.MaxHP = math.Round(s.MaxHP * unit(mods.MaxHP))
	s.MoveSpeedMultiplier *= unit(mods.MoveSpeed)
	s.DamageMultiplier *= unit(mods.Damage)
	s.AttackSpeedMultiplier *= unit(mods.FireRate)
	s.MagnetRange *= unit(mods.PickupRange)
	s.XPGainMultiplier *= unit(mods.XPGain)

	if mods.Perk != nil {
		s = mods.Perk(s, 1)
	}

	for _, a := range applied {
		if a.Effect == nil {
			continue
		}
		for level := 1; level <= a.Level; level++ {
			s = a.Effect(s, level)
		}
	}

	return s
}

func unit(m float64) float64 {
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 1
	}
	return m
}
