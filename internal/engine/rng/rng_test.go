package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/rng"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) TestSeededIsReproducible() {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)

	for i := 0; i < 50; i++ {
		va, err := a.Roll(20)
		s.Require().NoError(err)
		vb, err := b.Roll(20)
		s.Require().NoError(err)
		s.Assert().Equal(va, vb)
		s.Assert().GreaterOrEqual(va, 1)
		s.Assert().LessOrEqual(va, 20)
	}
}

func (s *RNGTestSuite) TestRollRejectsBadSize() {
	_, err := rng.NewSeeded(1).Roll(0)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = rng.NewSeeded(1).RollN(-1, 6)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RNGTestSuite) TestRollN() {
	rolls, err := rng.NewSeeded(7).RollN(4, 6)
	s.Require().NoError(err)
	s.Assert().Len(rolls, 4)
}

func (s *RNGTestSuite) TestChanceBounds() {
	r := rng.NewSeeded(3)
	for i := 0; i < 100; i++ {
		s.Assert().False(rng.Chance(r, 0))
		s.Assert().False(rng.Chance(r, -1))
		s.Assert().True(rng.Chance(r, 1))
	}
}

func (s *RNGTestSuite) TestChanceFrequency() {
	r := rng.NewSeeded(99)
	hits := 0
	for i := 0; i < 10000; i++ {
		if rng.Chance(r, 0.3) {
			hits++
		}
	}
	s.Assert().InDelta(3000, hits, 300)
}

func (s *RNGTestSuite) TestIntnAndBetween() {
	r := rng.NewSeeded(5)
	for i := 0; i < 200; i++ {
		v := rng.Intn(r, 4)
		s.Assert().GreaterOrEqual(v, 0)
		s.Assert().Less(v, 4)

		f := rng.Between(r, 50, 750)
		s.Assert().GreaterOrEqual(f, 50.0)
		s.Assert().Less(f, 750.0)
	}
	s.Assert().Equal(0, rng.Intn(r, 0))
	s.Assert().Equal(10.0, rng.Between(r, 10, 10))
}
