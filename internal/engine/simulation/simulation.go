// Package simulation runs one arena survival run: a fixed per-tick pipeline
// over the world plus the intermission commit between waves.
package simulation

import (
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine/characters"
	"github.com/KirkDiggler/rpg-arena/internal/engine/combat"
	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/spawn"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
	"github.com/KirkDiggler/rpg-arena/internal/engine/upgrades"
	"github.com/KirkDiggler/rpg-arena/internal/engine/world"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

// Tick limits
const (
	DefaultTick = 16 * time.Millisecond
	MaxTick     = 100 * time.Millisecond
)

// Phase is where the run is in its wave cycle.
type Phase int

// Phases
const (
	PhaseActive Phase = iota
	PhaseIntermission
	PhaseOver
)

var phaseNames = map[Phase]string{
	PhaseActive:       "active",
	PhaseIntermission: "intermission",
	PhaseOver:         "over",
}

// String returns the phase name
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Input is the continuous input sampled for one tick.
type Input struct {
	// Move is a joystick-style direction; lengths above 1 are clamped.
	Move geom.Vec
}

// Offer is one upgrade on the intermission screen.
type Offer struct {
	upgrades.Definition `yaml:",inline"`
	Cost                int `json:"cost" yaml:"cost"`
}

// State is a read-only view of the run for hosts.
type State struct {
	Phase        Phase         `json:"phase"`
	Paused       bool          `json:"paused"`
	Invulnerable bool          `json:"invulnerable"`
	Now          time.Duration `json:"now"`
	Wave         int           `json:"wave"`
	Remaining    time.Duration `json:"remaining"`
	HP           float64       `json:"hp"`
	MaxHP        float64       `json:"max_hp"`
	Pos          geom.Vec      `json:"pos"`
	Level        int           `json:"level"`
	XP           int           `json:"xp"`
	XPToNext     int           `json:"xp_to_next"`
	Currency     int           `json:"currency"`
	Essence      int           `json:"essence"`
	Kills        int           `json:"kills"`
	Enemies      int           `json:"enemies"`
	RerollsLeft  int           `json:"rerolls_left"`
}

// Config configures a Simulation.
type Config struct {
	// Character is a character id; empty selects the starter.
	Character string
	// Roller defaults to the toolkit's crypto roller.
	Roller dice.Roller
	// IDs defaults to a sequential generator.
	IDs       idgen.Generator
	Presenter fx.Presenter
	// Settings defaults to fx.DefaultSettings().
	Settings *fx.Settings
	Logger   *slog.Logger
	// Bounds defaults to the 800x600 arena.
	Bounds geom.Rect
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character != "" {
		if _, ok := characters.Lookup(c.Character); !ok {
			vb.Fieldf("Character", "unknown character %q", c.Character)
		}
	}
	if c.Bounds != (geom.Rect{}) && (c.Bounds.Width() <= 0 || c.Bounds.Height() <= 0) {
		vb.Field("Bounds", "must have positive size")
	}

	return vb.Build()
}

// Simulation is one run. It is single-threaded: callers serialise every
// method call.
type Simulation struct {
	character characters.Definition
	logger    *slog.Logger

	world    *world.World
	combat   *combat.Resolver
	director *spawn.Director
	catalog  *upgrades.Catalog
	run      *progress.Run

	phase   Phase
	paused  bool
	choices []upgrades.Definition
	// regenTimer accumulates toward the next regen heal.
	regenTimer time.Duration
}

// New creates a run and starts wave one.
func New(cfg *Config) (*Simulation, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.Default()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = idgen.NewSequential("ent")
	}
	settings := fx.DefaultSettings()
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	character := characters.Resolve(cfg.Character)

	w, err := world.New(&world.Config{
		Bounds:    cfg.Bounds,
		Roller:    roller,
		IDs:       ids,
		Presenter: fx.Filtered(cfg.Presenter, settings),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	catalog, err := upgrades.New(&upgrades.Config{
		Roller:       roller,
		Modifiers:    character.Modifiers(),
		ExtraRerolls: character.ExtraRerolls(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create upgrade catalog")
	}

	director, err := spawn.New(&spawn.Config{Bounds: w.Bounds, Roller: roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spawn director")
	}

	run := progress.New()

	var thorns float64
	if character.Perk == characters.PerkThorns {
		thorns = characters.ThornsReflect
	}
	resolver, err := combat.New(&combat.Config{World: w, Tally: run, ThornsReflect: thorns})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat resolver")
	}

	s := &Simulation{
		character: character,
		logger:    logger,
		world:     w,
		combat:    resolver,
		director:  director,
		catalog:   catalog,
		run:       run,
	}

	s.spawnPlayer()

	s.logger.Info("run created", "character", character.ID)
	s.startWave()
	return s, nil
}

// Restart throws the current run away and starts wave one again with the
// same character. Nothing from the old run survives.
func (s *Simulation) Restart() {
	s.world.Reset()
	s.combat.Reset()
	s.director.Reset()
	s.catalog.Reset()
	*s.run = *progress.New()

	s.phase = PhaseActive
	s.paused = false
	s.choices = nil
	s.regenTimer = 0
	s.spawnPlayer()

	s.logger.Info("run restarted", "character", s.character.ID)
	s.startWave()
}

func (s *Simulation) spawnPlayer() {
	w := s.world
	w.Stats = s.catalog.Stats()
	w.Player = entity.NewPlayer(w.NextID(), w.Bounds.Center(), w.Stats.MaxHP, entity.PlayerOptions{
		DashCooldownScale: s.character.DashCooldownScale(),
		Rage:              s.character.Perk == characters.PerkRage,
		RageThreshold:     characters.RageThreshold,
		RageMultiplier:    characters.RageMultiplier,
	})
}

// Tick advances the run by dt. It does nothing while paused, between waves
// or after game over. Negative deltas are treated as DefaultTick and long
// ones are capped at MaxTick.
func (s *Simulation) Tick(dt time.Duration, in Input) {
	if s.paused || s.phase != PhaseActive {
		return
	}
	dt = clampTick(dt)

	w := s.world
	w.Now += dt
	w.Queue.Drain(w.Now)

	st := w.Stats
	p := w.Player
	p.Update(dt, st)
	s.regen(dt)
	p.Move(in.Move, st)
	p.Integrate(dt, w.Bounds)

	s.autoAttack()
	s.updateEnemies(dt)
	for _, shot := range w.Shots {
		shot.Step(dt, w.Now, w.Bounds)
	}
	s.updatePickups(dt)

	s.combat.Resolve()
	w.Compact()

	if s.checkGameOver() {
		return
	}

	report := s.director.Advance(dt)
	for _, sp := range report.Spawns {
		w.AddEnemy(sp.Kind, sp.Pos, sp.Multiplier)
	}
	if report.Expired {
		s.completeWave()
	}
}

func clampTick(dt time.Duration) time.Duration {
	if dt < 0 {
		return DefaultTick
	}
	return min(dt, MaxTick)
}

func (s *Simulation) regen(dt time.Duration) {
	if s.character.Perk != characters.PerkRegen {
		return
	}
	s.regenTimer += dt
	for s.regenTimer >= characters.RegenInterval {
		s.regenTimer -= characters.RegenInterval
		s.world.Player.Heal(characters.RegenAmount)
	}
}

func (s *Simulation) autoAttack() {
	w := s.world
	p := w.Player
	if !p.CanAttack(w.Now, w.Stats) {
		return
	}
	target := w.NearestEnemy(p.Pos, entity.AttackRange, nil)
	if target == nil {
		return
	}
	shots := p.Attack(w.Now, target.Pos, w.Stats, w.Roller)
	if len(shots) == 0 {
		return
	}
	w.AddPlayerShots(shots)
	w.FX.Sound(fx.CueShoot)
}

func (s *Simulation) updateEnemies(dt time.Duration) {
	w := s.world
	view := entity.PlayerView{Pos: w.Player.Pos}

	// Intents may append to the enemy list; only this tick's enemies act.
	enemies := append([]*entity.Enemy(nil), w.Enemies...)
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		next, intents := entity.Behave(*e, view, w.Now, dt)
		*e = next
		for _, in := range intents {
			s.execute(e, in)
		}
		e.Integrate(dt)
	}
}

// execute carries out one enemy intent. Deferred parts are keyed to the
// enemy so they are dropped if it dies first.
func (s *Simulation) execute(e *entity.Enemy, in entity.Intent) {
	w := s.world
	switch in.Kind {
	case entity.IntentShoot:
		angle := in.Angle
		w.FX.Notify(fx.NoticeTelegraph, map[string]any{"enemy_id": e.ID, "kind": "shot"})
		w.Queue.Schedule(w.Now+entity.ShooterTelegraph, e.ID, func() {
			origin := e.Pos.Add(geom.FromAngle(angle, entity.EnemyShotOffset))
			w.AddEnemyShot(origin, angle, e.Damage, entity.EnemyShotSpeed)
		})

	case entity.IntentDetonate:
		s.combat.StartDetonation(e)

	case entity.IntentSlam:
		w.FX.Notify(fx.NoticeTelegraph, map[string]any{"enemy_id": e.ID, "kind": "slam"})
		w.Queue.Schedule(w.Now+entity.BossSlamTelegraph, e.ID, func() {
			s.combat.Slam(e, entity.BossSlamRadius)
		})

	case entity.IntentRing:
		for i := 0; i < entity.RingShotCount; i++ {
			angle := float64(i) / entity.RingShotCount * 2 * math.Pi
			w.Queue.Schedule(w.Now+time.Duration(i)*entity.RingShotStagger, e.ID, func() {
				origin := e.Pos.Add(geom.FromAngle(angle, entity.RingShotOffset))
				w.AddEnemyShot(origin, angle, e.Damage*entity.RingShotDamageFactor, entity.RingShotSpeed)
			})
		}
	}
}

func (s *Simulation) updatePickups(dt time.Duration) {
	w := s.world
	p := w.Player
	pull := s.character.PickupPullScale()

	for _, pk := range w.Pickups {
		if pk.Collected {
			continue
		}
		pk.Attract(p.Pos, w.Stats.MagnetRange, pull)
		pk.Step(dt)
		if pk.InReach(p.Pos) && pk.Collect() {
			s.collect(pk)
		}
	}
}

func (s *Simulation) collect(pk *entity.Pickup) {
	w := s.world
	w.FX.Sound(fx.CuePickup)

	switch pk.Kind {
	case entity.PickupXP:
		_, levels := s.run.AddXP(pk.Value, w.Stats.XPGainMultiplier)
		for i := 0; i < levels; i++ {
			w.FX.Sound(fx.CueLevelUp)
		}
		if levels > 0 {
			w.FX.Notify(fx.NoticeLevelUp, map[string]any{"level": s.run.Level()})
		}
	case entity.PickupEssence:
		s.run.AddEssence(pk.Value)
	}
}

func (s *Simulation) checkGameOver() bool {
	if !s.world.Player.Dead {
		return false
	}
	if s.run.End() {
		s.phase = PhaseOver
		s.choices = nil
		s.world.FX.Sound(fx.CueGameOver)
		s.world.FX.Notify(fx.NoticeGameOver, map[string]any{
			"wave":  s.director.Wave(),
			"kills": s.run.Kills(),
		})
		s.logger.Info("run over",
			"wave", s.director.Wave(),
			"kills", s.run.Kills(),
			"level", s.run.Level(),
		)
	}
	return true
}

func (s *Simulation) startWave() {
	w := s.world
	wave := s.director.StartWave()
	if wave.Number == 1 {
		s.run.SetCurrency(progress.StartingCurrency)
	}

	s.phase = PhaseActive
	s.choices = nil

	if wave.Boss != nil {
		boss := w.AddEnemy(wave.Boss.Kind, wave.Boss.Pos, wave.Boss.Multiplier)
		w.FX.Notify(fx.NoticeBossSpawned, map[string]any{"enemy_id": boss.ID, "wave": wave.Number})
	}

	w.FX.Sound(fx.CueWaveStart)
	w.FX.Notify(fx.NoticeWaveStarted, map[string]any{"wave": wave.Number, "duration": wave.Duration})
	s.logger.Debug("wave started", "wave", wave.Number, "duration", wave.Duration, "boss", wave.Boss != nil)
}

func (s *Simulation) completeWave() {
	w := s.world
	s.phase = PhaseIntermission

	cleared := s.combat.ClearWave()
	if heal := w.Stats.HealOnWave; heal > 0 {
		w.Player.Heal(heal)
	}

	s.catalog.ResetRerolls()
	s.choices = s.catalog.RandomChoices(s.character.ChoiceCount())

	w.FX.Notify(fx.NoticeWaveCleared, map[string]any{"wave": s.director.Wave(), "cleared": cleared})
	s.logger.Info("wave cleared",
		"wave", s.director.Wave(),
		"cleared", cleared,
		"currency", s.run.Currency(),
		"choices", len(s.choices),
	)
}

// Dash starts a dash toward dir. It reports false when the dash is refused:
// paused, between waves, on cooldown or already dashing.
func (s *Simulation) Dash(dir geom.Vec) bool {
	if s.paused || s.phase != PhaseActive {
		return false
	}
	w := s.world
	p := w.Player
	if !p.Dash(w.Now, dir, w.Stats, w.Queue) {
		return false
	}
	w.FX.Sound(fx.CueDash)
	if w.Stats.DashTrailDamage > 0 {
		w.AddTrail(p.Pos, p.Facing, w.Stats.DashTrailDamage)
	}
	return true
}

// Pause freezes ticking. Resume restarts it without catching up.
func (s *Simulation) Pause() { s.paused = true }

// Resume undoes Pause.
func (s *Simulation) Resume() { s.paused = false }

// Paused reports whether the run is paused.
func (s *Simulation) Paused() bool { return s.paused }

// Choices lists the pending intermission offers with their prices.
func (s *Simulation) Choices() []Offer {
	if s.phase != PhaseIntermission {
		return nil
	}
	wave := s.director.Wave()
	out := make([]Offer, 0, len(s.choices))
	for _, def := range s.choices {
		out = append(out, Offer{Definition: def, Cost: upgrades.ChoiceCost(def.Rarity, wave)})
	}
	return out
}

// SelectUpgrade buys one of the offered upgrades and starts the next wave.
func (s *Simulation) SelectUpgrade(id string) error {
	if err := s.requireIntermission(); err != nil {
		return err
	}

	def, ok := upgrades.Lookup(id)
	if !ok {
		return errors.NotFoundf("upgrade %s not found", id)
	}
	if !s.offered(id) {
		return errors.InvalidArgumentf("upgrade %s is not on offer", id)
	}
	if s.catalog.IsMaxed(id) {
		return errors.FailedPreconditionf("upgrade %s is at max level", id)
	}

	cost := upgrades.ChoiceCost(def.Rarity, s.director.Wave())
	if !s.run.Spend(cost) {
		return errors.ResourceExhaustedf("upgrade %s costs %d, have %d", id, cost, s.run.Currency())
	}
	s.catalog.Apply(id)
	s.refreshStats()

	s.world.FX.Notify(fx.NoticeUpgradeAcquired, map[string]any{
		"upgrade": id,
		"level":   s.catalog.Level(id),
	})
	s.logger.Info("upgrade acquired", "upgrade", id, "level", s.catalog.Level(id), "cost", cost)

	s.startWave()
	return nil
}

// Reroll pays for a fresh set of offers. On failure the offers and the
// balance are unchanged.
func (s *Simulation) Reroll() error {
	if err := s.requireIntermission(); err != nil {
		return err
	}
	if !s.catalog.CanReroll() {
		return errors.ResourceExhausted("no rerolls left this intermission")
	}
	cost := upgrades.RerollCost(s.director.Wave())
	if !s.run.Spend(cost) {
		return errors.ResourceExhaustedf("reroll costs %d, have %d", cost, s.run.Currency())
	}
	s.catalog.UseReroll()
	s.choices = s.catalog.RandomChoices(s.character.ChoiceCount())
	return nil
}

// Skip declines every offer and starts the next wave.
func (s *Simulation) Skip() error {
	if err := s.requireIntermission(); err != nil {
		return err
	}
	s.logger.Debug("upgrade skipped", "wave", s.director.Wave())
	s.startWave()
	return nil
}

func (s *Simulation) requireIntermission() error {
	switch s.phase {
	case PhaseOver:
		return errors.FailedPrecondition("run is over")
	case PhaseActive:
		return errors.FailedPrecondition("no upgrade choice is pending")
	}
	return nil
}

func (s *Simulation) offered(id string) bool {
	for _, def := range s.choices {
		if def.ID == id {
			return true
		}
	}
	return false
}

// refreshStats publishes the catalog snapshot to the world. A higher max hp
// raises the cap without healing.
func (s *Simulation) refreshStats() {
	w := s.world
	w.Stats = s.catalog.Stats()
	if w.Stats.MaxHP > w.Player.MaxHP {
		w.Player.SetMaxHP(w.Stats.MaxHP)
	}
}

// State returns a view of the run.
func (s *Simulation) State() State {
	w := s.world
	p := w.Player
	return State{
		Phase:        s.phase,
		Paused:       s.paused,
		Now:          w.Now,
		Invulnerable: p.Invulnerable || p.Dashing || w.Now < s.combat.InvulnerableUntil(),
		Wave:         s.director.Wave(),
		Remaining:    s.director.Remaining(),
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Pos:          p.Pos,
		Level:        s.run.Level(),
		XP:           s.run.XP(),
		XPToNext:     s.run.XPToNext(),
		Currency:     s.run.Currency(),
		Essence:      s.run.Essence(),
		Kills:        s.run.Kills(),
		Enemies:      w.LiveEnemyCount(),
		RerollsLeft:  s.catalog.RerollsLeft(),
	}
}

// Stats returns the current stat snapshot.
func (s *Simulation) Stats() stats.Snapshot { return s.world.Stats }

// Acquired lists held upgrades in acquisition order.
func (s *Simulation) Acquired() []upgrades.Acquired { return s.catalog.Acquired() }

// Summary is the end-of-run report. It may be taken at any time.
func (s *Simulation) Summary() progress.Summary {
	return s.run.Summary(s.director.Wave(), s.catalog.Acquired())
}

// Character is the character the run was created with.
func (s *Simulation) Character() characters.Definition { return s.character }

// World exposes the tick state for hosts and tests. Callers must not hold
// it across ticks from another goroutine.
func (s *Simulation) World() *world.World { return s.world }

// AcceptsInput reports whether gestures should reach the run. Input is
// ignored while paused, between waves and after game over.
func (s *Simulation) AcceptsInput() bool {
	return !s.paused && s.phase == PhaseActive
}
