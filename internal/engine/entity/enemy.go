package entity

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

// Kind selects an enemy variant and its behaviour policy.
type Kind int

// Enemy kinds
const (
	Chaser Kind = iota
	Shooter
	Tank
	Splitter
	Bomber
	Boss
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Chaser:
		return "chaser"
	case Shooter:
		return "shooter"
	case Tank:
		return "tank"
	case Splitter:
		return "splitter"
	case Bomber:
		return "bomber"
	case Boss:
		return "boss"
	default:
		return "unknown"
	}
}

// Template is the unscaled record of an enemy kind.
type Template struct {
	HP             float64
	Speed          float64
	Damage         float64
	XP             int
	Essence        int
	Radius         float64
	KnockbackScale float64
}

var templates = map[Kind]Template{
	Chaser:   {HP: 25, Speed: 120, Damage: 8, XP: 2, Essence: 1, Radius: 12, KnockbackScale: 1},
	Shooter:  {HP: 35, Speed: 50, Damage: 12, XP: 4, Essence: 1, Radius: 14, KnockbackScale: 1},
	Tank:     {HP: 100, Speed: 40, Damage: 20, XP: 8, Essence: 3, Radius: 18, KnockbackScale: 0.5},
	Splitter: {HP: 45, Speed: 70, Damage: 10, XP: 5, Essence: 1, Radius: 14, KnockbackScale: 1},
	Bomber:   {HP: 20, Speed: 130, Damage: 25, XP: 3, Essence: 0, Radius: 12, KnockbackScale: 1},
	Boss:     {HP: 500, Speed: 60, Damage: 30, XP: 50, Essence: 20, Radius: 28, KnockbackScale: 0.3},
}

// TemplateFor returns the template of k. Unknown kinds get the chaser record.
func TemplateFor(k Kind) Template {
	if t, ok := templates[k]; ok {
		return t
	}
	return templates[Chaser]
}

// ShooterState is the shooter's variant payload.
type ShooterState struct {
	NextShotAt time.Duration
}

// SplitterState is the splitter's variant payload.
type SplitterState struct {
	Mini bool
}

// BomberState is the bomber's variant payload.
type BomberState struct {
	Exploding bool
}

// BossState is the boss's variant payload.
type BossState struct {
	NextSlamAt time.Duration
	NextRingAt time.Duration
}

// Enemy is the shared record of every enemy variant. Only the payload that
// matches Kind is meaningful. Active=false is terminal.
type Enemy struct {
	ID   string
	Kind Kind

	Pos       geom.Vec
	Vel       geom.Vec
	Knockback geom.Vec

	HP      float64
	MaxHP   float64
	Speed   float64
	Damage  float64
	XP      int
	Essence int
	Radius  float64

	// Multiplier is the difficulty scale the enemy spawned with.
	Multiplier float64

	Active        bool
	Frozen        time.Duration
	BladeCooldown bool
	TrailCooldown bool

	Shooter  ShooterState
	Splitter SplitterState
	Bomber   BomberState
	Boss     BossState
}

var _ core.Entity = (*Enemy)(nil)

// NewEnemy creates an enemy of kind at pos. hp and damage scale by mult.
func NewEnemy(id string, kind Kind, pos geom.Vec, mult float64, now time.Duration) *Enemy {
	if !(mult > 0) || math.IsInf(mult, 0) {
		mult = 1
	}
	t := TemplateFor(kind)
	hp := math.Round(t.HP * mult)
	e := &Enemy{
		ID:         id,
		Kind:       kind,
		Pos:        pos.Sanitize(),
		HP:         hp,
		MaxHP:      hp,
		Speed:      t.Speed,
		Damage:     math.Round(t.Damage * mult),
		XP:         t.XP,
		Essence:    t.Essence,
		Radius:     t.Radius,
		Multiplier: mult,
		Active:     true,
	}
	switch kind {
	case Shooter:
		e.Shooter.NextShotAt = now
	case Boss:
		e.Boss.NextSlamAt = now
		e.Boss.NextRingAt = now
	}
	return e
}

// NewMiniSplitter creates one half-strength child of parent, offset
// horizontally by dx.
func NewMiniSplitter(id string, parent *Enemy, dx float64) *Enemy {
	hp := math.Round(parent.MaxHP / 2)
	xp := parent.XP / 2
	if xp < 1 {
		xp = 1
	}
	return &Enemy{
		ID:         id,
		Kind:       Splitter,
		Pos:        parent.Pos.Add(geom.V(dx, 0)),
		HP:         hp,
		MaxHP:      hp,
		Speed:      MiniSplitterSpeed,
		Damage:     math.Round(parent.Damage / 2),
		XP:         xp,
		Essence:    parent.Essence,
		Radius:     MiniSplitterRadius,
		Multiplier: parent.Multiplier,
		Active:     true,
		Splitter:   SplitterState{Mini: true},
	}
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return e.Kind.String() }

// IsMini reports whether e is a split child.
func (e *Enemy) IsMini() bool {
	return e.Kind == Splitter && e.Splitter.Mini
}

// TakeDamage lowers hp and, when angle is given, knocks the enemy along it.
// It returns true when the hit leaves the enemy at zero hp.
func (e *Enemy) TakeDamage(amount float64, angle *float64) bool {
	if !e.Active {
		return false
	}
	if !geom.Finite(amount) || amount < 0 {
		amount = 0
	}
	e.HP = math.Max(0, e.HP-amount)

	if angle != nil && geom.Finite(*angle) {
		e.Knockback = geom.FromAngle(*angle, EnemyKnockback)
	}
	return e.HP <= 0
}

// Freeze stops the enemy for d.
func (e *Enemy) Freeze(d time.Duration) {
	if !e.Active || d <= 0 {
		return
	}
	e.Frozen = d
	e.Vel = geom.Vec{}
}

// Kill deactivates the enemy.
func (e *Enemy) Kill() {
	e.Active = false
	e.Vel = geom.Vec{}
}

// Integrate moves the enemy by its velocity.
func (e *Enemy) Integrate(dt time.Duration) {
	if !e.Active {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Sanitize().Scale(dt.Seconds())).Sanitize()
}
