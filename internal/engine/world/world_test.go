package world_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/entity"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/world"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

type WorldTestSuite struct {
	suite.Suite
	world *world.World
}

func (s *WorldTestSuite) SetupTest() {
	w, err := world.New(&world.Config{Roller: rng.NewSeeded(1), IDs: idgen.NewSequential("ent")})
	s.Require().NoError(err)
	s.world = w
	s.world.Player = entity.NewPlayer("player", s.world.Bounds.Center(), 100, entity.PlayerOptions{})
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) TestConfigValidation() {
	_, err := world.New(nil)
	s.Require().Error(err)

	_, err = world.New(&world.Config{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Roller")
	s.Assert().Contains(err.Error(), "IDs")
}

func (s *WorldTestSuite) TestDefaultBounds() {
	s.Assert().Equal(800.0, s.world.Bounds.Width())
	s.Assert().Equal(600.0, s.world.Bounds.Height())
}

func (s *WorldTestSuite) TestLiveness() {
	e := s.world.AddEnemy(entity.Chaser, geom.V(10, 10), 1)
	s.Assert().True(s.world.Live(e.ID))
	s.Assert().True(s.world.Live("player"))
	s.Assert().False(s.world.Live("nobody"))

	e.Kill()
	s.Assert().False(s.world.Live(e.ID))

	s.world.Player.Dead = true
	s.Assert().False(s.world.Live("player"))
}

func (s *WorldTestSuite) TestQueueDropsActionsForDeadEnemies() {
	e := s.world.AddEnemy(entity.Chaser, geom.V(10, 10), 1)
	fired := false
	s.world.Queue.Schedule(time.Millisecond, e.ID, func() { fired = true })

	e.Kill()
	s.world.Compact()
	s.world.Queue.Drain(time.Second)
	s.Assert().False(fired)
}

func (s *WorldTestSuite) TestNearestEnemy() {
	far := s.world.AddEnemy(entity.Chaser, geom.V(600, 300), 1)
	near := s.world.AddEnemy(entity.Chaser, geom.V(450, 300), 1)
	bomber := s.world.AddEnemy(entity.Bomber, geom.V(410, 300), 1)
	bomber.Bomber.Exploding = true

	s.Assert().Equal(near, s.world.NearestEnemy(geom.V(400, 300), 300, nil))
	s.Assert().Equal(far, s.world.NearestEnemy(geom.V(400, 300), 300, func(e *entity.Enemy) bool { return e == near }))
	s.Assert().Nil(s.world.NearestEnemy(geom.V(400, 300), 10, nil))
	s.Assert().Len(s.world.ActiveEnemies(), 2)
	s.Assert().Equal(3, s.world.LiveEnemyCount())
}

func (s *WorldTestSuite) TestCompact() {
	dead := s.world.AddEnemy(entity.Chaser, geom.V(10, 10), 1)
	alive := s.world.AddEnemy(entity.Tank, geom.V(20, 20), 1)
	dead.Kill()

	shot := s.world.AddEnemyShot(geom.V(0, 0), 0, 5, 100)
	s.world.AddEnemyShot(geom.V(0, 0), 0, 5, 100)
	shot.Deactivate()

	p := s.world.SpawnPickup(entity.PickupXP, geom.V(0, 0), 2)
	p.Collect()
	s.world.SpawnPickup(entity.PickupEssence, geom.V(0, 0), 1)

	s.world.AddTrail(geom.V(0, 0), geom.V(1, 0), 10)
	s.world.Now = entity.TrailLifetime

	s.world.Compact()

	s.Assert().Equal([]*entity.Enemy{alive}, s.world.Enemies)
	_, ok := s.world.Enemy(dead.ID)
	s.Assert().False(ok)
	s.Assert().Len(s.world.Shots, 1)
	s.Assert().Len(s.world.Pickups, 1)
	s.Assert().Empty(s.world.Trails)
}

func (s *WorldTestSuite) TestClearEnemyShotsKeepsPlayerShots() {
	s.world.AddEnemyShot(geom.V(0, 0), 0, 5, 100)
	s.world.AddPlayerShots([]entity.Shot{{Origin: geom.V(1, 1), Damage: 20}})

	s.world.ClearEnemyShots()
	s.world.Compact()

	s.Require().Len(s.world.Shots, 1)
	s.Assert().False(s.world.Shots[0].Hostile)
}
