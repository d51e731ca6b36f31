// Package fx is the presentation boundary of the simulation. Everything here
// is fire-and-forget: a missing or failing presenter never changes combat.
package fx

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

//go:generate mockgen -destination=mock/mock_presenter.go -package=fxmock github.com/KirkDiggler/rpg-arena/internal/engine/fx Presenter

// Cue names a sound effect.
type Cue string

// Sound cues
const (
	CueShoot     Cue = "shoot"
	CueHit       Cue = "hit"
	CueBlock     Cue = "block"
	CueDash      Cue = "dash"
	CuePickup    Cue = "pickup"
	CueExplosion Cue = "explosion"
	CueLevelUp   Cue = "level_up"
	CueWaveStart Cue = "wave_start"
	CueGameOver  Cue = "game_over"
)

// Notice names a run milestone.
type Notice string

// Notices
const (
	NoticeWaveStarted     Notice = "wave_started"
	NoticeWaveCleared     Notice = "wave_cleared"
	NoticeBossSpawned     Notice = "boss_spawned"
	NoticeLevelUp         Notice = "level_up"
	NoticeUpgradeAcquired Notice = "upgrade_acquired"
	NoticeGameOver        Notice = "game_over"
	NoticeFreeze          Notice = "enemy_frozen"
	NoticeTelegraph       Notice = "telegraph"
	NoticeBarrierBlock    Notice = "barrier_block"
	NoticeShieldBlock     Notice = "shield_block"
)

// Presenter receives presentation requests from the simulation.
type Presenter interface {
	DamageNumber(pos geom.Vec, amount float64, crit bool)
	Sound(cue Cue)
	Shake(duration time.Duration, intensity float64)
	Notify(notice Notice, fields map[string]any)
}

// Settings are the player's presentation preferences.
type Settings struct {
	SoundEnabled   bool `json:"soundEnabled" yaml:"sound_enabled"`
	ReducedEffects bool `json:"reducedEffects" yaml:"reduced_effects"`
}

// DefaultSettings has sound on and full effects.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true}
}

type nop struct{}

// Nop returns a presenter that drops everything.
func Nop() Presenter { return nop{} }

func (nop) DamageNumber(geom.Vec, float64, bool) {}
func (nop) Sound(Cue)                           {}
func (nop) Shake(time.Duration, float64)        {}
func (nop) Notify(Notice, map[string]any)       {}

// Filtered applies settings in front of another presenter: sounds are
// dropped when sound is off and shakes when effects are reduced.
func Filtered(next Presenter, settings Settings) Presenter {
	if next == nil {
		next = Nop()
	}
	return &filtered{next: next, settings: settings}
}

type filtered struct {
	next     Presenter
	settings Settings
}

func (f *filtered) DamageNumber(pos geom.Vec, amount float64, crit bool) {
	f.next.DamageNumber(pos, amount, crit)
}

func (f *filtered) Sound(cue Cue) {
	if f.settings.SoundEnabled {
		f.next.Sound(cue)
	}
}

func (f *filtered) Shake(duration time.Duration, intensity float64) {
	if !f.settings.ReducedEffects {
		f.next.Shake(duration, intensity)
	}
}

func (f *filtered) Notify(notice Notice, fields map[string]any) {
	f.next.Notify(notice, fields)
}
