// Package arena implements the run orchestrator: it owns live simulations,
// resolves profiles into run configuration and credits finished runs.
package arena

//go:generate mockgen -destination=mock/mock_service.go -package=arenamock github.com/KirkDiggler/rpg-arena/internal/orchestrators/arena Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/engine/characters"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/engine/input"
	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/simulation"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/profile"
	runhistory "github.com/KirkDiggler/rpg-arena/internal/repositories/run_history"
)

const errRunIDRequired = "run ID is required"

// Service defines the interface for run operations
type Service interface {
	// StartRun creates a run and starts its first wave
	StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error)

	// Tick advances a run by one host frame
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// Dash requests a dash directly
	Dash(ctx context.Context, input *DashInput) (*DashOutput, error)

	// Swipe feeds a pointer gesture through the swipe recognizer
	Swipe(ctx context.Context, input *SwipeInput) (*SwipeOutput, error)

	// GetChoices lists the upgrade offers of the current intermission
	GetChoices(ctx context.Context, input *GetChoicesInput) (*GetChoicesOutput, error)

	// SelectUpgrade buys an offer and starts the next wave
	SelectUpgrade(ctx context.Context, input *SelectUpgradeInput) (*SelectUpgradeOutput, error)

	// Reroll pays for fresh offers
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// Skip declines the offers and starts the next wave
	Skip(ctx context.Context, input *SkipInput) (*SkipOutput, error)

	// Pause freezes a run
	Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error)

	// Resume unfreezes a run
	Resume(ctx context.Context, input *PauseInput) (*PauseOutput, error)

	// GetState returns a run's state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// EndRun removes a run and credits its essence to the profile
	EndRun(ctx context.Context, input *EndRunInput) (*EndRunOutput, error)

	// RestartRun credits a finished run and starts it again from wave one
	RestartRun(ctx context.Context, input *RestartRunInput) (*RestartRunOutput, error)
}

// Config holds the dependencies for the arena orchestrator
type Config struct {
	ProfileRepo profile.Repository
	IDGenerator idgen.Generator

	// HistoryRepo records credited runs when set
	HistoryRepo runhistory.Repository
	// EventBus receives each run's presentation events when set
	EventBus events.EventBus
	// Roller backs unseeded runs; defaults to the toolkit roller
	Roller dice.Roller
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	profileRepo profile.Repository
	historyRepo runhistory.Repository
	idGen       idgen.Generator
	bus         events.EventBus
	roller      dice.Roller
	logger      *slog.Logger

	mu   sync.RWMutex
	runs map[string]*run
}

// run serialises access to one simulation; different runs proceed in
// parallel.
type run struct {
	mu        sync.Mutex
	id        string
	profileID string
	sim       *simulation.Simulation
	swipe     *input.Recognizer
}

// NewOrchestrator creates a new arena orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		profileRepo: cfg.ProfileRepo,
		historyRepo: cfg.HistoryRepo,
		idGen:       cfg.IDGenerator,
		bus:         cfg.EventBus,
		roller:      roller,
		logger:      logger,
		runs:        make(map[string]*run),
	}, nil
}

// StartRun creates a run and starts its first wave
func (o *orchestrator) StartRun(ctx context.Context, in *StartRunInput) (*StartRunOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p := entities.NewProfile("")
	if in.ProfileID != "" {
		out, err := o.profileRepo.Get(ctx, profile.GetInput{ID: in.ProfileID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load profile %s", in.ProfileID)
		}
		p = out.Profile
	}

	characterID := in.CharacterID
	if characterID == "" {
		characterID = p.SelectedCharacterID
	}
	if _, ok := characters.Lookup(characterID); !ok {
		return nil, errors.NotFoundf("character %s not found", characterID)
	}

	runID := o.idGen.Generate()
	logger := o.logger.With("run_id", runID)

	roller := o.roller
	if in.Seed != nil {
		roller = rng.NewSeeded(*in.Seed)
	}

	presenter, err := o.presenter(runID)
	if err != nil {
		return nil, err
	}

	sim, err := simulation.New(&simulation.Config{
		Character: characterID,
		Roller:    roller,
		IDs:       idgen.NewSequential("ent"),
		Presenter: presenter,
		Settings: &fx.Settings{
			SoundEnabled:   p.Settings.SoundEnabled,
			ReducedEffects: p.Settings.ReducedEffects,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create simulation")
	}

	swipe, err := input.New(&input.Config{Target: sim})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create swipe recognizer")
	}

	o.mu.Lock()
	o.runs[runID] = &run{
		id:        runID,
		profileID: in.ProfileID,
		sim:       sim,
		swipe:     swipe,
	}
	o.mu.Unlock()

	logger.Info("run started",
		"profile_id", in.ProfileID,
		"character", characterID,
		"seeded", in.Seed != nil,
	)

	return &StartRunOutput{
		RunID:       runID,
		CharacterID: characterID,
		State:       sim.State(),
	}, nil
}

// presenter publishes run feedback on the bus when one is configured.
func (o *orchestrator) presenter(runID string) (fx.Presenter, error) {
	if o.bus == nil {
		return fx.Nop(), nil
	}
	pub, err := fx.NewPublisher(&fx.PublisherConfig{
		Bus:    o.bus,
		Source: fx.Source{ID: runID},
		Logger: o.logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fx publisher")
	}
	return pub, nil
}

// Tick advances a run by one host frame
func (o *orchestrator) Tick(_ context.Context, in *TickInput) (*TickOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if in.Delta < 0 {
		return nil, errors.InvalidArgumentf("delta must not be negative, got %s", in.Delta)
	}
	if !in.Move.Finite() {
		return nil, errors.InvalidArgument("move must be finite")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sim.Tick(in.Delta, simulation.Input{Move: in.Move})
	return &TickOutput{State: r.sim.State()}, nil
}

// Dash requests a dash directly
func (o *orchestrator) Dash(_ context.Context, in *DashInput) (*DashOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return &DashOutput{Dashed: r.sim.Dash(in.Direction)}, nil
}

// Swipe feeds a pointer gesture through the swipe recognizer
func (o *orchestrator) Swipe(_ context.Context, in *SwipeInput) (*SwipeOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if in.Duration < 0 {
		return nil, errors.InvalidArgument("duration must not be negative")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.sim.State().Now
	r.swipe.PointerDown(in.From, now)
	return &SwipeOutput{Dashed: r.swipe.PointerUp(in.To, now+in.Duration)}, nil
}

// GetChoices lists the upgrade offers of the current intermission
func (o *orchestrator) GetChoices(_ context.Context, in *GetChoicesInput) (*GetChoicesOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.sim.State()
	return &GetChoicesOutput{
		Choices:     r.sim.Choices(),
		Currency:    st.Currency,
		RerollsLeft: st.RerollsLeft,
	}, nil
}

// SelectUpgrade buys an offer and starts the next wave
func (o *orchestrator) SelectUpgrade(_ context.Context, in *SelectUpgradeInput) (*SelectUpgradeOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if in.UpgradeID == "" {
		return nil, errors.InvalidArgument("upgrade ID is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.sim.SelectUpgrade(in.UpgradeID); err != nil {
		return nil, errors.Wrapf(err, "failed to select upgrade %s", in.UpgradeID)
	}
	return &SelectUpgradeOutput{State: r.sim.State()}, nil
}

// Reroll pays for fresh offers
func (o *orchestrator) Reroll(_ context.Context, in *RerollInput) (*RerollOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.sim.Reroll(); err != nil {
		return nil, errors.Wrap(err, "failed to reroll")
	}
	return &RerollOutput{
		Choices:  r.sim.Choices(),
		Currency: r.sim.State().Currency,
	}, nil
}

// Skip declines the offers and starts the next wave
func (o *orchestrator) Skip(_ context.Context, in *SkipInput) (*SkipOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.sim.Skip(); err != nil {
		return nil, errors.Wrap(err, "failed to skip upgrade")
	}
	return &SkipOutput{State: r.sim.State()}, nil
}

// Pause freezes a run
func (o *orchestrator) Pause(_ context.Context, in *PauseInput) (*PauseOutput, error) {
	return o.setPaused(in, true)
}

// Resume unfreezes a run
func (o *orchestrator) Resume(_ context.Context, in *PauseInput) (*PauseOutput, error) {
	return o.setPaused(in, false)
}

func (o *orchestrator) setPaused(in *PauseInput, paused bool) (*PauseOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if paused {
		r.sim.Pause()
	} else {
		r.sim.Resume()
	}
	return &PauseOutput{State: r.sim.State()}, nil
}

// GetState returns a run's state
func (o *orchestrator) GetState(_ context.Context, in *GetStateInput) (*GetStateOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return &GetStateOutput{
		State:   r.sim.State(),
		Summary: r.sim.Summary(),
	}, nil
}

// EndRun removes a run and credits its essence to the profile
func (o *orchestrator) EndRun(ctx context.Context, in *EndRunInput) (*EndRunOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if in.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDRequired)
	}

	o.mu.Lock()
	r, ok := o.runs[in.RunID]
	delete(o.runs, in.RunID)
	o.mu.Unlock()
	if !ok {
		return nil, errors.NotFoundf("run %s not found", in.RunID)
	}

	r.mu.Lock()
	summary := r.sim.Summary()
	characterID := r.sim.Character().ID
	r.mu.Unlock()

	out := &EndRunOutput{Summary: summary}
	if r.profileID == "" {
		o.logger.Info("run ended", "run_id", r.id, "wave", summary.Wave, "kills", summary.Kills)
		return out, nil
	}

	credited, err := o.credit(ctx, r, summary, characterID)
	if err != nil {
		return nil, err
	}
	out.Profile = credited

	o.logger.Info("run ended",
		"run_id", r.id,
		"profile_id", r.profileID,
		"wave", summary.Wave,
		"kills", summary.Kills,
		"essence", summary.Essence,
		"balance", credited.CurrencyBalance,
	)
	return out, nil
}

// RestartRun credits a finished run and starts it again from wave one
func (o *orchestrator) RestartRun(ctx context.Context, in *RestartRunInput) (*RestartRunOutput, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, err := o.lookup(in.RunID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sim.State().Phase != simulation.PhaseOver {
		return nil, errors.FailedPreconditionf("run %s is not over", r.id)
	}

	summary := r.sim.Summary()
	out := &RestartRunOutput{Summary: summary}
	if r.profileID != "" {
		credited, err := o.credit(ctx, r, summary, r.sim.Character().ID)
		if err != nil {
			return nil, err
		}
		out.Profile = credited
	}

	r.sim.Restart()
	r.swipe.Cancel()
	out.State = r.sim.State()

	o.logger.Info("run restarted",
		"run_id", r.id,
		"profile_id", r.profileID,
		"previous_wave", summary.Wave,
	)
	return out, nil
}

// credit adds a finished run to its profile and records it in the history.
func (o *orchestrator) credit(ctx context.Context, r *run, summary progress.Summary, characterID string) (*entities.Profile, error) {
	got, err := o.profileRepo.Get(ctx, profile.GetInput{ID: r.profileID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load profile %s", r.profileID)
	}
	p := got.Profile
	p.RecordRun(summary.Wave, summary.Essence)

	saved, err := o.profileRepo.Save(ctx, profile.SaveInput{Profile: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to credit profile %s", r.profileID)
	}

	if o.historyRepo != nil {
		// History is best effort once the credit is stored.
		if _, err := o.historyRepo.Append(ctx, runhistory.AppendInput{Record: &runhistory.Record{
			RunID:       r.id,
			ProfileID:   r.profileID,
			CharacterID: characterID,
			Summary:     summary,
		}}); err != nil {
			o.logger.Warn("failed to record run history",
				"run_id", r.id,
				"profile_id", r.profileID,
				"error", err)
		}
	}
	return saved.Profile, nil
}

func (o *orchestrator) lookup(runID string) (*run, error) {
	if runID == "" {
		return nil, errors.InvalidArgument(errRunIDRequired)
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	r, ok := o.runs[runID]
	if !ok {
		return nil, errors.NotFoundf("run %s not found", runID)
	}
	return r, nil
}
