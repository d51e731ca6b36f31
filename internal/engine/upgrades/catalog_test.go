package upgrades_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
	"github.com/KirkDiggler/rpg-arena/internal/engine/upgrades"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// lowRoller always rolls 1, so weighted sampling picks the first candidate.
type lowRoller struct{}

func (lowRoller) Roll(_ int) (int, error) { return 1, nil }
func (lowRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

type CatalogTestSuite struct {
	suite.Suite
	catalog *upgrades.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	var err error
	s.catalog, err = upgrades.New(&upgrades.Config{Roller: rng.NewSeeded(11)})
	s.Require().NoError(err)
}

func (s *CatalogTestSuite) TestNewValidates() {
	_, err := upgrades.New(&upgrades.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = upgrades.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestTableShape() {
	all := upgrades.All()
	s.Require().Len(all, 24)

	seen := make(map[string]bool)
	for _, def := range all {
		s.Assert().False(seen[def.ID], def.ID)
		seen[def.ID] = true
		s.Assert().GreaterOrEqual(def.MaxLevel, 1, def.ID)
		s.Assert().NotNil(def.Effect, def.ID)
	}
}

func (s *CatalogTestSuite) TestApplyIsLinearInLevel() {
	for _, def := range upgrades.All() {
		s.Run(def.ID, func() {
			catalog, err := upgrades.New(&upgrades.Config{Roller: rng.NewSeeded(1)})
			s.Require().NoError(err)

			expected := stats.Base()
			for k := 1; k <= def.MaxLevel; k++ {
				s.Require().True(catalog.Apply(def.ID))
				expected = def.Effect(expected, k)
				s.Assert().Equal(expected, catalog.Stats(), "level %d", k)
			}

			s.Assert().False(catalog.Apply(def.ID))
			s.Assert().Equal(expected, catalog.Stats())
			s.Assert().Equal(def.MaxLevel, catalog.Level(def.ID))
		})
	}
}

func (s *CatalogTestSuite) TestApplyUnknownFails() {
	before := s.catalog.Stats()
	s.Assert().False(s.catalog.Apply("laser_eyes"))
	s.Assert().Equal(before, s.catalog.Stats())
}

func (s *CatalogTestSuite) TestBarrierCooldownShrinksPerLevel() {
	s.Require().True(s.catalog.Apply(upgrades.Barrier))
	s.Assert().Equal(15*time.Second, s.catalog.Stats().BarrierCooldown)
	s.Assert().Equal(1, s.catalog.Stats().BarrierCharges)

	s.Require().True(s.catalog.Apply(upgrades.Barrier))
	s.Assert().Equal(12*time.Second, s.catalog.Stats().BarrierCooldown)
	s.Assert().Equal(2, s.catalog.Stats().BarrierCharges)
}

func (s *CatalogTestSuite) TestAcquiredKeepsAcquisitionOrder() {
	s.Require().True(s.catalog.Apply(upgrades.Pierce))
	s.Require().True(s.catalog.Apply(upgrades.DamageUp))
	s.Require().True(s.catalog.Apply(upgrades.Pierce))

	acquired := s.catalog.Acquired()
	s.Require().Len(acquired, 2)
	s.Assert().Equal(upgrades.Pierce, acquired[0].ID)
	s.Assert().Equal(2, acquired[0].Level)
	s.Assert().Equal(upgrades.DamageUp, acquired[1].ID)
	s.Assert().Equal(1, acquired[1].Level)
}

func (s *CatalogTestSuite) TestCharacterModifiersFeedSnapshot() {
	catalog, err := upgrades.New(&upgrades.Config{
		Roller:    rng.NewSeeded(1),
		Modifiers: stats.Modifiers{Damage: 1.5},
	})
	s.Require().NoError(err)
	s.Assert().InDelta(1.5, catalog.Stats().DamageMultiplier, 1e-9)

	s.Require().True(catalog.Apply(upgrades.DamageUp))
	s.Assert().InDelta(1.65, catalog.Stats().DamageMultiplier, 1e-9)
}

func (s *CatalogTestSuite) TestRandomChoicesDistinctAndUnmaxed() {
	for _, def := range upgrades.All() {
		if def.Rarity == upgrades.Common {
			for s.catalog.Apply(def.ID) {
			}
		}
	}

	for i := 0; i < 50; i++ {
		choices := s.catalog.RandomChoices(4)
		s.Require().Len(choices, 4)

		seen := make(map[string]bool)
		for _, c := range choices {
			s.Assert().False(seen[c.ID])
			seen[c.ID] = true
			s.Assert().NotEqual(upgrades.Common, c.Rarity)
		}
	}
}

func (s *CatalogTestSuite) TestRandomChoicesExhaustsPool() {
	for _, def := range upgrades.All() {
		for s.catalog.Apply(def.ID) {
		}
	}
	s.Assert().Empty(s.catalog.RandomChoices(3))

	s.catalog.Reset()
	s.Assert().Empty(s.catalog.Acquired())
	s.Assert().Equal(stats.Base(), s.catalog.Stats())
}

func (s *CatalogTestSuite) TestRandomChoicesWeighted() {
	catalog, err := upgrades.New(&upgrades.Config{Roller: lowRoller{}})
	s.Require().NoError(err)

	choices := catalog.RandomChoices(3)
	s.Require().Len(choices, 3)
	s.Assert().Equal(upgrades.DamageUp, choices[0].ID)
	s.Assert().Equal(upgrades.AttackSpeed, choices[1].ID)
	s.Assert().Equal(upgrades.MaxHP, choices[2].ID)
}

func (s *CatalogTestSuite) TestRerollAllowance() {
	s.Assert().Equal(1, s.catalog.RerollsLeft())
	s.Assert().True(s.catalog.UseReroll())
	s.Assert().False(s.catalog.UseReroll())
	s.catalog.ResetRerolls()
	s.Assert().True(s.catalog.CanReroll())

	gambler, err := upgrades.New(&upgrades.Config{Roller: rng.NewSeeded(1), ExtraRerolls: 2})
	s.Require().NoError(err)
	s.Assert().Equal(3, gambler.RerollsLeft())
}

func (s *CatalogTestSuite) TestCosts() {
	s.Assert().Equal(5, upgrades.RerollCost(1))
	s.Assert().Equal(5, upgrades.RerollCost(2))
	s.Assert().Equal(10, upgrades.RerollCost(7))

	s.Assert().Equal(10, upgrades.ChoiceCost(upgrades.Common, 1))
	s.Assert().Equal(21, upgrades.ChoiceCost(upgrades.Rare, 3))
	s.Assert().Equal(40, upgrades.ChoiceCost(upgrades.Epic, 7))
}

func (s *CatalogTestSuite) TestRarity() {
	s.Assert().Equal("common", upgrades.Common.String())
	s.Assert().Equal("epic", upgrades.Epic.String())
	s.Assert().Equal(60, upgrades.Common.Weight())
	s.Assert().Equal(30, upgrades.Rare.Weight())
	s.Assert().Equal(10, upgrades.Epic.Weight())
}
