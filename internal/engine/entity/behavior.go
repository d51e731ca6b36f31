package entity

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

// IntentKind is an action an enemy policy asks the simulation to carry out.
type IntentKind int

// Intents
const (
	// IntentShoot fires one telegraphed shot along Angle.
	IntentShoot IntentKind = iota
	// IntentDetonate starts the bomber self-destruct sequence.
	IntentDetonate
	// IntentSlam starts a telegraphed area slam around the enemy.
	IntentSlam
	// IntentRing fires a staggered ring of shots.
	IntentRing
)

// Intent is one requested action.
type Intent struct {
	Kind  IntentKind
	Angle float64
}

// PlayerView is what a behaviour policy may see of the player.
type PlayerView struct {
	Pos geom.Vec
}

// Behave advances e by one tick of its variant policy. It does not mutate
// its input; the caller stores the returned value and executes the intents.
func Behave(e Enemy, view PlayerView, now, dt time.Duration) (Enemy, []Intent) {
	if !e.Active {
		return e, nil
	}

	if e.Frozen > 0 {
		e.Frozen -= dt
		if e.Frozen < 0 {
			e.Frozen = 0
		}
		e.Vel = geom.Vec{}
		return e, nil
	}

	e.Knockback = decay(e.Knockback, dt)
	push := e.Knockback.Scale(TemplateFor(e.Kind).KnockbackScale)

	dist := geom.Dist(e.Pos, view.Pos)
	angle := geom.AngleTo(e.Pos, view.Pos)

	var intents []Intent

	switch e.Kind {
	case Shooter:
		dir := 0.0
		if dist < ShooterPreferred-ShooterTolerance {
			dir = -1
		} else if dist > ShooterPreferred+ShooterTolerance {
			dir = 1
		}
		e.Vel = geom.FromAngle(angle, e.Speed*dir).Add(push)

		if now >= e.Shooter.NextShotAt && dist < ShooterRange {
			intents = append(intents, Intent{Kind: IntentShoot, Angle: angle})
			e.Shooter.NextShotAt = now + ShooterCooldown
		}

	case Bomber:
		if e.Bomber.Exploding {
			e.Vel = geom.Vec{}
			return e, nil
		}
		if dist < BomberTrigger {
			e.Vel = geom.Vec{}
			return e, []Intent{{Kind: IntentDetonate}}
		}
		e.Vel = geom.FromAngle(angle, e.Speed).Add(push)

	case Boss:
		if dist < BossSlamTrigger && now >= e.Boss.NextSlamAt {
			intents = append(intents, Intent{Kind: IntentSlam})
			e.Boss.NextSlamAt = now + BossSlamCooldown
		}
		if now >= e.Boss.NextRingAt {
			intents = append(intents, Intent{Kind: IntentRing})
			e.Boss.NextRingAt = now + BossRingCooldown
		}
		e.Vel = geom.FromAngle(angle, e.Speed).Add(push)

	default:
		e.Vel = geom.FromAngle(angle, e.Speed).Add(push)
	}

	e.Vel = e.Vel.Sanitize()
	return e, intents
}
