package entity

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

// Trail is a damage zone left along a dash.
type Trail struct {
	ID        string
	Center    geom.Vec
	Angle     float64
	Length    float64
	Width     float64
	Damage    float64
	ExpiresAt time.Duration
}

// NewTrail creates a trail centred on origin and aligned with dir.
func NewTrail(id string, origin, dir geom.Vec, damage float64, now time.Duration) *Trail {
	angle := math.Atan2(dir.Y, dir.X)
	if !geom.Finite(angle) {
		angle = 0
	}
	return &Trail{
		ID:        id,
		Center:    origin.Sanitize(),
		Angle:     angle,
		Length:    TrailLength,
		Width:     TrailWidth,
		Damage:    damage,
		ExpiresAt: now + TrailLifetime,
	}
}

// Overlaps reports whether a circle at p with radius r touches the trail.
func (t *Trail) Overlaps(p geom.Vec, r float64) bool {
	local := p.Sub(t.Center).Rotate(-t.Angle)
	return math.Abs(local.X) <= t.Length/2+r && math.Abs(local.Y) <= t.Width/2+r
}

// Expired reports whether the trail has run out.
func (t *Trail) Expired(now time.Duration) bool {
	return now >= t.ExpiresAt
}
