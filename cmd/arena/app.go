package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/arena"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/profile"
	runhistory "github.com/KirkDiggler/rpg-arena/internal/repositories/run_history"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	profiles profile.Repository
	history  runhistory.Repository
	arena    arena.Service

	closers []func()
}

// newApp layers defaults, the config file, the environment and flags, then
// wires the runner.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if redisAddr != "" {
		cfg.Redis.Endpoint = redisAddr
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	a := &app{cfg: cfg, logger: logger}

	client, err := a.redis(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	a.profiles, err = profile.NewRedis(&profile.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create profile repository")
	}

	a.history, err = runhistory.NewRedis(&runhistory.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create run history repository")
	}

	bus := events.NewBus()
	bus.SubscribeFunc(fx.EventNotice, 0, noticeLogger(logger))

	a.arena, err = arena.NewOrchestrator(&arena.Config{
		ProfileRepo: a.profiles,
		HistoryRepo: a.history,
		IDGenerator: idgen.NewUUID("run"),
		EventBus:    bus,
		Logger:      logger,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create arena orchestrator")
	}

	return a, nil
}

// redis connects to the configured endpoint or starts an in-process store.
func (a *app) redis(ctx context.Context) (redisclient.Client, error) {
	endpoint := a.cfg.Redis.Endpoint
	if endpoint == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, errors.Wrap(err, "failed to start in-process redis")
		}
		a.closers = append(a.closers, mr.Close)
		endpoint = mr.Addr()
		a.logger.Debug("using in-process redis", "addr", endpoint)
	}

	client, err := redisclient.NewClient(endpoint, nil)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() {
		if err := client.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	})

	if err := redisclient.Ping(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// noticeLogger logs run milestones from the event bus.
func noticeLogger(logger *slog.Logger) events.HandlerFunc {
	return func(_ context.Context, evt events.Event) error {
		notice, ok := fx.Lookup[string](evt, fx.KeyNotice)
		if !ok {
			return nil
		}

		args := []any{"notice", notice}
		if src := evt.Source(); src != nil {
			args = append(args, "run_id", src.GetID())
		}
		if fields, ok := fx.Lookup[map[string]any](evt, fx.KeyFields); ok {
			for k, v := range fields {
				args = append(args, k, v)
			}
		}

		switch fx.Notice(notice) {
		case fx.NoticeWaveCleared, fx.NoticeBossSpawned, fx.NoticeGameOver:
			logger.Info("run notice", args...)
		default:
			logger.Debug("run notice", args...)
		}
		return nil
	}
}
