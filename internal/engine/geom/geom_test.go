package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

type GeomTestSuite struct {
	suite.Suite
}

func TestGeomSuite(t *testing.T) {
	suite.Run(t, new(GeomTestSuite))
}

func (s *GeomTestSuite) TestNormalize() {
	n, ok := geom.V(3, 4).Normalize()
	s.Require().True(ok)
	s.Assert().InDelta(0.6, n.X, 1e-9)
	s.Assert().InDelta(0.8, n.Y, 1e-9)

	_, ok = geom.V(0, 0).Normalize()
	s.Assert().False(ok)

	_, ok = geom.V(math.NaN(), 1).Normalize()
	s.Assert().False(ok)

	_, ok = geom.V(math.Inf(1), 1).Normalize()
	s.Assert().False(ok)
}

func (s *GeomTestSuite) TestAngleToDegenerate() {
	p := geom.V(10, 10)
	s.Assert().Equal(0.0, geom.AngleTo(p, p))
	s.Assert().InDelta(math.Pi/2, geom.AngleTo(geom.V(0, 0), geom.V(0, 5)), 1e-9)
}

func (s *GeomTestSuite) TestFromAngleGuardsNaN() {
	v := geom.FromAngle(math.NaN(), 10)
	s.Assert().InDelta(10, v.X, 1e-9)
	s.Assert().InDelta(0, v.Y, 1e-9)
}

func (s *GeomTestSuite) TestRect() {
	r := geom.NewRect(800, 600)

	s.Assert().Equal(geom.V(400, 300), r.Center())
	s.Assert().True(r.Contains(geom.V(-40, 10), 50))
	s.Assert().False(r.Contains(geom.V(-60, 10), 50))
	s.Assert().Equal(geom.V(16, 584), r.Clamp(geom.V(-10, 900), 16))
	s.Assert().Equal(geom.V(16, 16), r.Clamp(geom.V(math.NaN(), math.Inf(-1)), 16))
}

func (s *GeomTestSuite) TestRotate() {
	v := geom.V(1, 0).Rotate(math.Pi / 2)
	s.Assert().InDelta(0, v.X, 1e-9)
	s.Assert().InDelta(1, v.Y, 1e-9)
}
