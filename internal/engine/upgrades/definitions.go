package upgrades

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
)

// Rarity is the weight class of an upgrade.
type Rarity int

// Rarity tiers
const (
	Common Rarity = iota
	Rare
	Epic
)

var rarityNames = map[Rarity]string{
	Common: "common",
	Rare:   "rare",
	Epic:   "epic",
}

// String returns the lower-case tier name.
func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the tier by name.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Weight is the relative sampling weight of the tier.
func (r Rarity) Weight() int {
	switch r {
	case Common:
		return 60
	case Rare:
		return 30
	case Epic:
		return 10
	default:
		return 0
	}
}

// BaseCost is the currency price of the tier before wave scaling.
func (r Rarity) BaseCost() int {
	switch r {
	case Common:
		return 10
	case Rare:
		return 20
	case Epic:
		return 35
	default:
		return 0
	}
}

// ChoiceCost is what an offered upgrade costs during the intermission after wave.
func ChoiceCost(r Rarity, wave int) int {
	return r.BaseCost() + waveSurcharge(wave)
}

// RerollCost is the price of replacing the offered choices after wave.
func RerollCost(wave int) int {
	return 5 + waveSurcharge(wave)
}

func waveSurcharge(wave int) int {
	if wave <= 2 {
		return 0
	}
	return wave - 2
}

// Definition is a static upgrade. Effect is applied once per held level.
type Definition struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Rarity      Rarity       `json:"rarity" yaml:"rarity"`
	MaxLevel    int          `json:"max_level" yaml:"max_level"`
	Effect      stats.Effect `json:"-" yaml:"-"`
}

// Upgrade ids
const (
	DamageUp        = "damage_up"
	AttackSpeed     = "attack_speed"
	MaxHP           = "max_hp"
	MoveSpeed       = "move_speed"
	DashCooldown    = "dash_cooldown"
	XPGain          = "xp_gain"
	MagnetRange     = "magnet_range"
	ProjectileSize  = "projectile_size"
	Lifesteal       = "lifesteal"
	CritChance      = "crit_chance"
	CritDamage      = "crit_damage"
	Pierce          = "pierce"
	Bounce          = "bounce"
	FreezeChance    = "freeze_chance"
	Thorns          = "thorns"
	HealOnWave      = "heal_on_wave"
	ExtraProjectile = "extra_projectile"
	ChainLightning  = "chain_lightning"
	ShieldOnDash    = "shield_on_dash"
	OrbitingBlades  = "orbiting_blades"
	DashTrail       = "dash_trail_damage"
	Overcharge      = "overcharge"
	Barrier         = "barrier"
	ExplosiveKills  = "explosive_kills"
)

// definitions is ordered by tier; the order is also the display order.
var definitions = []Definition{
	{
		ID: DamageUp, Name: "Power Surge", Description: "Increase damage by 15%",
		Rarity: Common, MaxLevel: 10,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.DamageMultiplier += 0.15; return s },
	},
	{
		ID: AttackSpeed, Name: "Rapid Fire", Description: "Increase attack speed by 12%",
		Rarity: Common, MaxLevel: 8,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.AttackSpeedMultiplier += 0.12; return s },
	},
	{
		ID: MaxHP, Name: "Vitality", Description: "Increase max HP by 20",
		Rarity: Common, MaxLevel: 10,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.MaxHP += 20; return s },
	},
	{
		ID: MoveSpeed, Name: "Swift Feet", Description: "Increase movement speed by 8%",
		Rarity: Common, MaxLevel: 6,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.MoveSpeedMultiplier += 0.08; return s },
	},
	{
		ID: DashCooldown, Name: "Quick Dash", Description: "Reduce dash cooldown by 10%",
		Rarity: Common, MaxLevel: 6,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.DashCooldownMultiplier -= 0.10; return s },
	},
	{
		ID: XPGain, Name: "Knowledge", Description: "Increase XP gain by 15%",
		Rarity: Common, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.XPGainMultiplier += 0.15; return s },
	},
	{
		ID: MagnetRange, Name: "Magnetism", Description: "Increase pickup range by 30",
		Rarity: Common, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.MagnetRange += 30; return s },
	},
	{
		ID: ProjectileSize, Name: "Big Shots", Description: "Increase projectile size by 20%",
		Rarity: Common, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ProjectileSizeMultiplier += 0.20; return s },
	},
	{
		ID: Lifesteal, Name: "Vampiric Touch", Description: "Heal 3% of damage dealt",
		Rarity: Rare, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.LifestealPercent += 0.03; return s },
	},
	{
		ID: CritChance, Name: "Precision", Description: "Gain 8% critical hit chance",
		Rarity: Rare, MaxLevel: 6,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.CritChance += 0.08; return s },
	},
	{
		ID: CritDamage, Name: "Devastation", Description: "Critical hits deal 25% more damage",
		Rarity: Rare, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.CritDamageMultiplier += 0.25; return s },
	},
	{
		ID: Pierce, Name: "Piercing Shots", Description: "Projectiles pierce +1 enemy",
		Rarity: Rare, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.PierceCount++; return s },
	},
	{
		ID: Bounce, Name: "Ricochet", Description: "Projectiles bounce to +1 enemy",
		Rarity: Rare, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.BounceCount++; return s },
	},
	{
		ID: FreezeChance, Name: "Frost Touch", Description: "10% chance to freeze enemies",
		Rarity: Rare, MaxLevel: 4,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.FreezeChance += 0.10; return s },
	},
	{
		ID: Thorns, Name: "Thorns", Description: "Return 15% damage to attackers",
		Rarity: Rare, MaxLevel: 5,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ThornsPercent += 0.15; return s },
	},
	{
		ID: HealOnWave, Name: "Second Wind", Description: "Heal 15 HP when wave ends",
		Rarity: Rare, MaxLevel: 4,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.HealOnWave += 15; return s },
	},
	{
		ID: ExtraProjectile, Name: "Multi-Shot", Description: "Fire +1 additional projectile",
		Rarity: Rare, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ExtraProjectiles++; return s },
	},
	{
		ID: ChainLightning, Name: "Chain Lightning", Description: "Attacks chain to 2 nearby enemies",
		Rarity: Epic, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ChainLightning += 2; return s },
	},
	{
		ID: ShieldOnDash, Name: "Dash Shield", Description: "Gain a 1-hit shield after dashing",
		Rarity: Epic, MaxLevel: 1,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ShieldOnDash = true; return s },
	},
	{
		ID: OrbitingBlades, Name: "Orbital Blades", Description: "+2 blades orbit around you",
		Rarity: Epic, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.OrbitingBlades += 2; return s },
	},
	{
		ID: DashTrail, Name: "Blazing Trail", Description: "Dash leaves damaging trail",
		Rarity: Epic, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.DashTrailDamage += 10; return s },
	},
	{
		ID: Overcharge, Name: "Overcharge", Description: "+50% fire rate for 2s after dash",
		Rarity: Epic, MaxLevel: 2,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot {
			s.OverchargeBonus += 0.5
			s.OverchargeDuration += 2 * time.Second
			return s
		},
	},
	{
		ID: Barrier, Name: "Energy Barrier", Description: "Absorb 1 hit every 15 seconds",
		Rarity: Epic, MaxLevel: 2,
		Effect: func(s stats.Snapshot, level int) stats.Snapshot {
			s.BarrierCharges++
			ms := math.Max(8000, 15000-float64(level-1)*3000)
			s.BarrierCooldown = time.Duration(ms) * time.Millisecond
			return s
		},
	},
	{
		ID: ExplosiveKills, Name: "Volatile", Description: "Enemies explode on death for 20 damage",
		Rarity: Epic, MaxLevel: 3,
		Effect: func(s stats.Snapshot, _ int) stats.Snapshot { s.ExplosiveKillDamage += 20; return s },
	},
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, d := range definitions {
		m[d.ID] = d
	}
	return m
}()

// All returns every definition in display order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a definition by id.
func Lookup(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}
