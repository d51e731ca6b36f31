package fx

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Event types published on the bus.
const (
	EventDamageNumber = "arena.fx.damage_number"
	EventSound        = "arena.fx.sound"
	EventShake        = "arena.fx.shake"
	EventNotice       = "arena.fx.notice"
)

// Event context keys.
const (
	KeyX         = "x"
	KeyY         = "y"
	KeyAmount    = "amount"
	KeyCrit      = "crit"
	KeyCue       = "cue"
	KeyDuration  = "duration"
	KeyIntensity = "intensity"
	KeyNotice    = "notice"
	KeyFields    = "fields"
)

// Source is the core.Entity every presentation event is attributed to.
type Source struct {
	ID string
}

// GetID implements core.Entity
func (s Source) GetID() string { return s.ID }

// GetType implements core.Entity
func (s Source) GetType() string { return "arena" }

// PublisherConfig configures a Publisher.
type PublisherConfig struct {
	Bus    events.EventBus
	Source core.Entity
	Logger *slog.Logger
}

// Validate validates the config
func (c *PublisherConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

// Publisher is a Presenter that turns requests into events on an
// events.EventBus. Publish failures are logged and dropped.
type Publisher struct {
	bus    events.EventBus
	source core.Entity
	logger *slog.Logger
}

var _ Presenter = (*Publisher)(nil)

// NewPublisher creates a publisher.
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid publisher config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{bus: cfg.Bus, source: cfg.Source, logger: logger}, nil
}

// DamageNumber implements Presenter
func (p *Publisher) DamageNumber(pos geom.Vec, amount float64, crit bool) {
	p.publish(EventDamageNumber, map[string]any{
		KeyX:      pos.X,
		KeyY:      pos.Y,
		KeyAmount: amount,
		KeyCrit:   crit,
	})
}

// Sound implements Presenter
func (p *Publisher) Sound(cue Cue) {
	p.publish(EventSound, map[string]any{KeyCue: string(cue)})
}

// Shake implements Presenter
func (p *Publisher) Shake(duration time.Duration, intensity float64) {
	p.publish(EventShake, map[string]any{
		KeyDuration:  duration,
		KeyIntensity: intensity,
	})
}

// Notify implements Presenter
func (p *Publisher) Notify(notice Notice, fields map[string]any) {
	p.publish(EventNotice, map[string]any{
		KeyNotice: string(notice),
		KeyFields: fields,
	})
}

func (p *Publisher) publish(eventType string, data map[string]any) {
	evt := events.NewGameEvent(eventType, p.source, nil)
	for k, v := range data {
		evt.Context().Set(k, v)
	}

	if err := p.bus.Publish(context.Background(), evt); err != nil {
		p.logger.Debug("dropped presentation event",
			"type", eventType,
			"error", err)
	}
}

// Lookup reads a value published under key from an event.
func Lookup[T any](evt events.Event, key string) (T, bool) {
	var zero T
	if evt == nil || evt.Context() == nil {
		return zero, false
	}
	raw, ok := evt.Context().Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
