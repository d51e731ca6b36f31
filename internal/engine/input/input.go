// Package input turns pointer-down/pointer-up pairs into dash gestures.
package input

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

//go:generate mockgen -destination=mock/mock_target.go -package=inputmock github.com/KirkDiggler/rpg-arena/internal/engine/input Target

// Gesture thresholds
const (
	MinSwipeDistance = 30.0
	MaxSwipeDuration = 500 * time.Millisecond
)

// Target receives recognised swipes.
type Target interface {
	// AcceptsInput is false while the run is paused, between waves or over.
	AcceptsInput() bool
	Dash(dir geom.Vec) bool
}

// Config configures a Recognizer.
type Config struct {
	Target Target
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Target == nil {
		vb.RequiredField("Target")
	}

	return vb.Build()
}

// Recognizer is edge triggered: it only acts on pointer transitions.
type Recognizer struct {
	target Target

	down    bool
	start   geom.Vec
	startAt time.Duration
}

// New creates a recognizer for target.
func New(cfg *Config) (*Recognizer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid input config")
	}
	return &Recognizer{target: cfg.Target}, nil
}

// PointerDown records the start of a gesture. It is dropped when the target
// is not accepting input.
func (r *Recognizer) PointerDown(pos geom.Vec, at time.Duration) {
	if !r.target.AcceptsInput() || !pos.Finite() {
		r.down = false
		return
	}
	r.down = true
	r.start = pos
	r.startAt = at
}

// PointerUp completes a gesture. A swipe longer than MinSwipeDistance and
// quicker than MaxSwipeDuration dashes along its direction. It reports whether
// a dash started.
func (r *Recognizer) PointerUp(pos geom.Vec, at time.Duration) bool {
	if !r.down {
		return false
	}
	r.down = false

	if !r.target.AcceptsInput() || !pos.Finite() {
		return false
	}

	delta := pos.Sub(r.start)
	if delta.Len() <= MinSwipeDistance || at-r.startAt >= MaxSwipeDuration {
		return false
	}
	dir, ok := delta.Normalize()
	if !ok {
		return false
	}
	return r.target.Dash(dir)
}

// Cancel forgets a gesture in progress.
func (r *Recognizer) Cancel() {
	r.down = false
}
