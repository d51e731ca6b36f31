package simulation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/input"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/simulation"
	"github.com/KirkDiggler/rpg-arena/internal/engine/upgrades"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

type SimulationTestSuite struct {
	suite.Suite
	recorder *fx.Recorder
	sim      *simulation.Simulation
}

func (s *SimulationTestSuite) SetupTest() {
	s.sim = s.newSim("")
}

func (s *SimulationTestSuite) newSim(character string) *simulation.Simulation {
	s.recorder = fx.NewRecorder()
	sim, err := simulation.New(&simulation.Config{
		Character: character,
		Roller:    rng.NewSeeded(7),
		IDs:       idgen.NewSequential("ent"),
		Presenter: s.recorder,
	})
	s.Require().NoError(err)
	return sim
}

// immortal keeps the player alive so long runs do not depend on combat luck.
func (s *SimulationTestSuite) immortal() {
	p := s.sim.World().Player
	p.MaxHP = 1e9
	p.HP = 1e9
}

func (s *SimulationTestSuite) tickFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += simulation.MaxTick {
		s.sim.Tick(simulation.MaxTick, simulation.Input{})
	}
}

func TestSimulationSuite(t *testing.T) {
	suite.Run(t, new(SimulationTestSuite))
}

func (s *SimulationTestSuite) TestNewStartsWaveOne() {
	st := s.sim.State()
	s.Assert().Equal(simulation.PhaseActive, st.Phase)
	s.Assert().Equal(1, st.Wave)
	s.Assert().Equal(5, st.Currency)
	s.Assert().Equal(100.0, st.HP)
	s.Assert().Equal(geom.V(400, 300), st.Pos)
	s.Assert().Equal(26*time.Second, st.Remaining)
	s.Assert().Equal(1, s.recorder.Count(fx.NoticeWaveStarted))
}

func (s *SimulationTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *simulation.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "unknown character", cfg: &simulation.Config{Character: "wizard"}},
		{name: "empty bounds", cfg: &simulation.Config{Bounds: geom.Rect{Max: geom.V(-1, 10)}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := simulation.New(tc.cfg)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *SimulationTestSuite) TestCharacterScalesStats() {
	sim := s.newSim("tank")
	s.Assert().Equal(150.0, sim.State().MaxHP)
	s.Assert().Equal("tank", sim.Character().ID)
}

func (s *SimulationTestSuite) TestTickClampsDelta() {
	s.sim.Tick(time.Second, simulation.Input{})
	s.Assert().Equal(simulation.MaxTick, s.sim.State().Now)

	s.sim.Tick(-time.Second, simulation.Input{})
	s.Assert().Equal(simulation.MaxTick+simulation.DefaultTick, s.sim.State().Now)
}

func (s *SimulationTestSuite) TestPauseFreezesTime() {
	s.sim.Pause()
	s.sim.Tick(50*time.Millisecond, simulation.Input{})
	s.Assert().Equal(time.Duration(0), s.sim.State().Now)
	s.Assert().False(s.sim.Dash(geom.V(1, 0)))

	s.sim.Resume()
	s.sim.Tick(50*time.Millisecond, simulation.Input{})
	s.Assert().Equal(50*time.Millisecond, s.sim.State().Now, "no catch-up after resume")
}

func (s *SimulationTestSuite) TestMovement() {
	s.sim.Tick(100*time.Millisecond, simulation.Input{Move: geom.V(2, 0)})
	s.Assert().InDelta(418.0, s.sim.State().Pos.X, 1e-6, "input is clamped to unit length")
}

func (s *SimulationTestSuite) TestAutoAttackTargetsNearest() {
	w := s.sim.World()
	w.AddEnemy(entity.Tank, geom.V(600, 300), 1)

	s.sim.Tick(16*time.Millisecond, simulation.Input{})

	var friendly int
	for _, shot := range w.Shots {
		if !shot.Hostile {
			friendly++
		}
	}
	s.Assert().Equal(1, friendly)
	s.Assert().Equal(1, s.recorder.SoundCount(fx.CueShoot))
}

func (s *SimulationTestSuite) TestShooterFiresAfterTelegraph() {
	w := s.sim.World()
	w.AddEnemy(entity.Shooter, geom.V(400, 100), 1)

	s.sim.Tick(100*time.Millisecond, simulation.Input{})
	s.Assert().GreaterOrEqual(s.recorder.Count(fx.NoticeTelegraph), 1)
	s.Assert().False(hasHostileShot(w.Shots))

	for i := 0; i < 3; i++ {
		s.sim.Tick(100*time.Millisecond, simulation.Input{})
	}
	s.Assert().True(hasHostileShot(w.Shots))
}

func offerIDs(offers []simulation.Offer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}

func hasHostileShot(shots []*entity.Projectile) bool {
	for _, shot := range shots {
		if shot.Hostile && shot.Active {
			return true
		}
	}
	return false
}

func (s *SimulationTestSuite) TestPickupCreditsCurrency() {
	w := s.sim.World()
	w.SpawnPickup(entity.PickupXP, w.Player.Pos, 4)
	w.SpawnPickup(entity.PickupEssence, w.Player.Pos, 3)

	s.sim.Tick(16*time.Millisecond, simulation.Input{})

	st := s.sim.State()
	s.Assert().Equal(9, st.Currency)
	s.Assert().Equal(4, st.XP)
	s.Assert().Equal(3, st.Essence)
	s.Assert().Equal(2, s.recorder.SoundCount(fx.CuePickup))
}

func (s *SimulationTestSuite) TestWaveExpiryEntersIntermission() {
	s.immortal()
	s.tickFor(26 * time.Second)

	st := s.sim.State()
	s.Require().Equal(simulation.PhaseIntermission, st.Phase)
	s.Assert().Equal(0, st.Enemies)
	s.Assert().Len(s.sim.Choices(), 3)
	s.Assert().Equal(1, s.recorder.Count(fx.NoticeWaveCleared))

	now := st.Now
	s.sim.Tick(100*time.Millisecond, simulation.Input{})
	s.Assert().Equal(now, s.sim.State().Now, "intermission freezes the tick")
	s.Assert().False(s.sim.Dash(geom.V(1, 0)))
}

func (s *SimulationTestSuite) TestScholarGetsFourChoices() {
	sim := s.newSim("scholar")
	sim.CompleteWave()
	s.Assert().Len(sim.Choices(), 4)
}

func (s *SimulationTestSuite) TestSelectUpgrade() {
	s.sim.CompleteWave()
	choices := s.sim.Choices()
	s.Require().NotEmpty(choices)
	pick := choices[0]

	s.Run("rejects insufficient currency", func() {
		err := s.sim.SelectUpgrade(pick.ID)
		s.Require().Error(err)
		s.Assert().True(errors.IsResourceExhausted(err))
		s.Assert().Equal(5, s.sim.State().Currency)
		s.Assert().Equal(offerIDs(choices), offerIDs(s.sim.Choices()))
	})

	s.Run("rejects unknown upgrade", func() {
		err := s.sim.SelectUpgrade("laser_eyes")
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("buys and starts next wave", func() {
		s.sim.SetCurrency(100)
		s.Require().NoError(s.sim.SelectUpgrade(pick.ID))

		st := s.sim.State()
		s.Assert().Equal(simulation.PhaseActive, st.Phase)
		s.Assert().Equal(2, st.Wave)
		s.Assert().Equal(100-pick.Cost, st.Currency)
		s.Assert().Len(s.sim.Acquired(), 1)
		s.Assert().Nil(s.sim.Choices())
	})

	s.Run("rejects a second commit", func() {
		err := s.sim.SelectUpgrade(pick.ID)
		s.Assert().True(errors.IsFailedPrecondition(err))
	})
}

func (s *SimulationTestSuite) TestMaxHPUpgradeDoesNotHeal() {
	def, ok := upgrades.Lookup(upgrades.MaxHP)
	s.Require().True(ok)

	s.sim.World().Player.HP = 50
	s.sim.CompleteWave()
	s.sim.SetChoices(def)
	s.sim.SetCurrency(100)

	s.Require().NoError(s.sim.SelectUpgrade(upgrades.MaxHP))
	st := s.sim.State()
	s.Assert().Equal(120.0, st.MaxHP)
	s.Assert().Equal(50.0, st.HP)
}

func (s *SimulationTestSuite) TestReroll() {
	s.sim.CompleteWave()

	s.Run("insufficient currency leaves offers", func() {
		s.sim.SetCurrency(4)
		before := offerIDs(s.sim.Choices())
		err := s.sim.Reroll()
		s.Assert().True(errors.IsResourceExhausted(err))
		s.Assert().Equal(before, offerIDs(s.sim.Choices()))
		s.Assert().Equal(4, s.sim.State().Currency)
	})

	s.Run("one reroll per intermission", func() {
		s.sim.SetCurrency(20)
		s.Require().NoError(s.sim.Reroll())
		s.Assert().Equal(15, s.sim.State().Currency)

		err := s.sim.Reroll()
		s.Assert().True(errors.IsResourceExhausted(err))
		s.Assert().Equal(15, s.sim.State().Currency)
	})
}

func (s *SimulationTestSuite) TestGamblerRerollsMore() {
	sim := s.newSim("gambler")
	sim.CompleteWave()
	sim.SetCurrency(100)

	for i := 0; i < 3; i++ {
		s.Require().NoError(sim.Reroll())
	}
	s.Assert().Error(sim.Reroll())
}

func (s *SimulationTestSuite) TestSkipOutsideIntermission() {
	err := s.sim.Skip()
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.sim.CompleteWave()
	s.Require().NoError(s.sim.Skip())
	s.Assert().Equal(2, s.sim.State().Wave)
	s.Assert().Equal(5, s.sim.State().Currency, "starting currency is only granted on wave one")
}

func (s *SimulationTestSuite) TestBossEveryFifthWave() {
	for i := 0; i < 4; i++ {
		s.sim.CompleteWave()
		s.Require().NoError(s.sim.Skip())
	}

	s.Assert().Equal(5, s.sim.State().Wave)
	s.Assert().Equal(1, s.recorder.Count(fx.NoticeBossSpawned))

	var bosses int
	for _, e := range s.sim.World().Enemies {
		if e.Kind == entity.Boss {
			bosses++
		}
	}
	s.Assert().Equal(1, bosses)
}

func (s *SimulationTestSuite) TestDashTrailCharacter() {
	sim := s.newSim("runner")
	s.Require().True(sim.Dash(geom.V(0, 1)))
	s.Assert().Len(sim.World().Trails, 1)
	s.Assert().False(sim.Dash(geom.V(0, 1)), "already dashing")
	s.Assert().Equal(1, s.recorder.SoundCount(fx.CueDash))
}

func (s *SimulationTestSuite) TestRegen() {
	sim := s.newSim("survivor")
	sim.World().Player.HP = 50

	sim.Regen(2 * time.Second)
	s.Assert().Equal(50.0, sim.State().HP)
	sim.Regen(4 * time.Second)
	s.Assert().Equal(52.0, sim.State().HP)
}

func (s *SimulationTestSuite) TestGameOver() {
	w := s.sim.World()
	w.Player.HP = 1
	w.AddEnemy(entity.Tank, w.Player.Pos, 1)

	s.sim.Tick(16*time.Millisecond, simulation.Input{})

	st := s.sim.State()
	s.Require().Equal(simulation.PhaseOver, st.Phase)
	s.Assert().Equal(1, s.recorder.Count(fx.NoticeGameOver))
	s.Assert().Equal(1, s.recorder.SoundCount(fx.CueGameOver))

	s.sim.Tick(16*time.Millisecond, simulation.Input{})
	s.Assert().Equal(st.Now, s.sim.State().Now)
	s.Assert().True(errors.IsFailedPrecondition(s.sim.Skip()))

	sum := s.sim.Summary()
	s.Assert().Equal(1, sum.Wave)
	s.Assert().Equal(1, sum.Level)
}
var _ input.Target = (*simulation.Simulation)(nil)

func (s *SimulationTestSuite) TestRestartStartsFresh() {
	s.sim.CompleteWave()
	s.sim.SetCurrency(100)
	s.Require().NoError(s.sim.SelectUpgrade(s.sim.Choices()[0].ID))
	s.Require().Equal(2, s.sim.State().Wave)

	w := s.sim.World()
	w.Player.HP = 1
	w.AddEnemy(entity.Tank, w.Player.Pos, 1)
	s.sim.Tick(16*time.Millisecond, simulation.Input{})
	s.Require().Equal(simulation.PhaseOver, s.sim.State().Phase)

	s.sim.Restart()

	st := s.sim.State()
	s.Assert().Equal(simulation.PhaseActive, st.Phase)
	s.Assert().Equal(1, st.Wave)
	s.Assert().Equal(time.Duration(0), st.Now)
	s.Assert().Equal(26*time.Second, st.Remaining)
	s.Assert().Equal(5, st.Currency)
	s.Assert().Equal(1, st.Level)
	s.Assert().Equal(0, st.Kills)
	s.Assert().Equal(0, st.Enemies)
	s.Assert().Equal(100.0, st.HP)
	s.Assert().False(st.Invulnerable)
	s.Assert().Empty(s.sim.Acquired())
	s.Assert().Equal(1.0, s.sim.Stats().DamageMultiplier)
	s.Assert().Same(s.sim.World(), w)
	s.Assert().False(w.Player.Dead)

	s.sim.Tick(16*time.Millisecond, simulation.Input{})
	s.Assert().Equal(16*time.Millisecond, s.sim.State().Now)
}

func (s *SimulationTestSuite) TestStateReportsHitWindow() {
	w := s.sim.World()
	tank := w.AddEnemy(entity.Tank, w.Player.Pos, 1)

	s.sim.Tick(16*time.Millisecond, simulation.Input{})
	s.Require().Less(s.sim.State().HP, 100.0)
	s.Assert().True(s.sim.State().Invulnerable)

	tank.Kill()
	s.tickFor(500 * time.Millisecond)
	s.Assert().False(s.sim.State().Invulnerable)
}
