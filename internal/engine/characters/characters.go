// Package characters defines the playable characters: stat multipliers and a
// perk that changes how a run plays.
package characters

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
)

// Perk identifies a character's special rule.
type Perk string

// Perks
const (
	PerkNone               Perk = ""
	PerkThorns             Perk = "thorns"
	PerkCritBoost          Perk = "crit_boost"
	PerkDashTrail          Perk = "dash_trail"
	PerkAutoCollect        Perk = "auto_collect"
	PerkExtraUpgradeChoice Perk = "extra_upgrade_choice"
	PerkExtraProjectile    Perk = "extra_projectile"
	PerkRegen              Perk = "regen"
	PerkExtraRerolls       Perk = "extra_rerolls"
	PerkPierce             Perk = "pierce"
	PerkRage               Perk = "rage"
)

// Perk tuning
const (
	ThornsReflect     = 0.10
	CritBoost         = 0.10
	DashTrailBonus    = 15
	AutoCollectPull   = 2.0
	RegenAmount       = 1
	RegenInterval     = 3 * time.Second
	ExtraRerolls      = 2
	RageThreshold     = 0.3
	RageMultiplier    = 1.5
	BaseChoiceCount   = 3
	ScholarChoiceBump = 1
)

// StarterID is the character every profile owns.
const StarterID = "starter"

// Definition is a playable character.
type Definition struct {
	ID          string
	Name        string
	Description string

	MaxHP        float64
	MoveSpeed    float64
	Damage       float64
	FireRate     float64
	PickupRange  float64
	XPGain       float64
	DashCooldown float64

	Perk Perk
}

var definitions = []Definition{
	{ID: StarterID, Name: "Recruit", Description: "Balanced starter character"},
	{ID: "tank", Name: "Tank", Description: "+50% HP, -20% speed", MaxHP: 1.5, MoveSpeed: 0.8, Perk: PerkThorns},
	{ID: "glass_cannon", Name: "Glass Cannon", Description: "+50% damage, -40% HP", MaxHP: 0.6, Damage: 1.5, Perk: PerkCritBoost},
	{ID: "runner", Name: "Runner", Description: "+30% speed, -20% damage", MoveSpeed: 1.3, Damage: 0.8, DashCooldown: 0.8, Perk: PerkDashTrail},
	{ID: "magnet", Name: "Collector", Description: "+80% pickup range, -20% HP", MaxHP: 0.8, PickupRange: 1.8, Perk: PerkAutoCollect},
	{ID: "scholar", Name: "Scholar", Description: "+40% XP gain, -25% damage", Damage: 0.75, XPGain: 1.4, Perk: PerkExtraUpgradeChoice},
	{ID: "gunner", Name: "Gunner", Description: "+40% fire rate, -15% damage", Damage: 0.85, FireRate: 1.4, Perk: PerkExtraProjectile},
	{ID: "survivor", Name: "Survivor", Description: "HP regen, -20% damage", Damage: 0.8, Perk: PerkRegen},
	{ID: "gambler", Name: "Gambler", Description: "+2 rerolls, -15% HP", MaxHP: 0.85, Perk: PerkExtraRerolls},
	{ID: "sniper", Name: "Sniper", Description: "+60% damage, -35% fire rate", MaxHP: 0.9, Damage: 1.6, FireRate: 0.65, Perk: PerkPierce},
	{ID: "berserker", Name: "Berserker", Description: "More damage when low HP, -25% max HP", MaxHP: 0.75, Perk: PerkRage},
}

// All returns every character in menu order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a character by id.
func Lookup(id string) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Resolve returns the character for id, falling back to the starter.
func Resolve(id string) Definition {
	if d, ok := Lookup(id); ok {
		return d
	}
	return definitions[0]
}

// Modifiers converts the character into stat aggregation input.
func (d Definition) Modifiers() stats.Modifiers {
	return stats.Modifiers{
		MaxHP:       d.MaxHP,
		MoveSpeed:   d.MoveSpeed,
		Damage:      d.Damage,
		FireRate:    d.FireRate,
		PickupRange: d.PickupRange,
		XPGain:      d.XPGain,
		Perk:        d.perkEffect(),
	}
}

func (d Definition) perkEffect() stats.Effect {
	switch d.Perk {
	case PerkCritBoost:
		return func(s stats.Snapshot, _ int) stats.Snapshot { s.CritChance += CritBoost; return s }
	case PerkDashTrail:
		return func(s stats.Snapshot, _ int) stats.Snapshot { s.DashTrailDamage += DashTrailBonus; return s }
	case PerkExtraProjectile:
		return func(s stats.Snapshot, _ int) stats.Snapshot { s.ExtraProjectiles++; return s }
	case PerkPierce:
		return func(s stats.Snapshot, _ int) stats.Snapshot { s.PierceCount++; return s }
	default:
		return nil
	}
}

// DashCooldownScale multiplies the player's base dash cooldown.
func (d Definition) DashCooldownScale() float64 {
	if d.DashCooldown > 0 {
		return d.DashCooldown
	}
	return 1
}

// ChoiceCount is how many upgrades are offered per intermission.
func (d Definition) ChoiceCount() int {
	if d.Perk == PerkExtraUpgradeChoice {
		return BaseChoiceCount + ScholarChoiceBump
	}
	return BaseChoiceCount
}

// ExtraRerolls is the reroll allowance on top of the base one.
func (d Definition) ExtraRerolls() int {
	if d.Perk == PerkExtraRerolls {
		return ExtraRerolls
	}
	return 0
}

// PickupPullScale multiplies the magnet pull speed.
func (d Definition) PickupPullScale() float64 {
	if d.Perk == PerkAutoCollect {
		return AutoCollectPull
	}
	return 1
}
