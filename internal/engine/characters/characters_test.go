package characters_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/characters"
	"github.com/KirkDiggler/rpg-arena/internal/engine/stats"
)

type CharactersTestSuite struct {
	suite.Suite
}

func TestCharactersSuite(t *testing.T) {
	suite.Run(t, new(CharactersTestSuite))
}

func (s *CharactersTestSuite) TestRoster() {
	all := characters.All()
	s.Require().Len(all, 11)
	s.Assert().Equal(characters.StarterID, all[0].ID)

	for _, d := range all {
		got, ok := characters.Lookup(d.ID)
		s.Assert().True(ok)
		s.Assert().Equal(d.Name, got.Name)
	}
}

func (s *CharactersTestSuite) TestResolveFallsBackToStarter() {
	s.Assert().Equal(characters.StarterID, characters.Resolve("nobody").ID)
	s.Assert().Equal("tank", characters.Resolve("tank").ID)
}

func (s *CharactersTestSuite) TestModifiersFeedStats() {
	testCases := []struct {
		id     string
		verify func(st stats.Snapshot)
	}{
		{"tank", func(st stats.Snapshot) {
			s.Assert().Equal(150.0, st.MaxHP)
			s.Assert().InDelta(0.8, st.MoveSpeedMultiplier, 1e-9)
		}},
		{"glass_cannon", func(st stats.Snapshot) {
			s.Assert().Equal(60.0, st.MaxHP)
			s.Assert().InDelta(1.5, st.DamageMultiplier, 1e-9)
			s.Assert().InDelta(0.15, st.CritChance, 1e-9)
		}},
		{"runner", func(st stats.Snapshot) {
			s.Assert().Equal(15.0, st.DashTrailDamage)
		}},
		{"gunner", func(st stats.Snapshot) {
			s.Assert().Equal(1, st.ExtraProjectiles)
			s.Assert().InDelta(1.4, st.AttackSpeedMultiplier, 1e-9)
		}},
		{"sniper", func(st stats.Snapshot) {
			s.Assert().Equal(1, st.PierceCount)
			s.Assert().Equal(90.0, st.MaxHP)
		}},
		{"gambler", func(st stats.Snapshot) {
			s.Assert().Equal(85.0, st.MaxHP)
		}},
		{"magnet", func(st stats.Snapshot) {
			s.Assert().InDelta(108, st.MagnetRange, 1e-9)
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.id, func() {
			def := characters.Resolve(tc.id)
			tc.verify(stats.Recompute(stats.Base(), def.Modifiers(), nil))
		})
	}
}

func (s *CharactersTestSuite) TestPerkRules() {
	s.Assert().Equal(4, characters.Resolve("scholar").ChoiceCount())
	s.Assert().Equal(3, characters.Resolve("starter").ChoiceCount())
	s.Assert().Equal(2, characters.Resolve("gambler").ExtraRerolls())
	s.Assert().Equal(0, characters.Resolve("tank").ExtraRerolls())
	s.Assert().Equal(0.8, characters.Resolve("runner").DashCooldownScale())
	s.Assert().Equal(1.0, characters.Resolve("starter").DashCooldownScale())
	s.Assert().Equal(2.0, characters.Resolve("magnet").PickupPullScale())
}
