package fx_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/engine/fx"
	fxmock "github.com/KirkDiggler/rpg-arena/internal/engine/fx/mock"
	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

type FxTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	mock *fxmock.MockPresenter
}

func (s *FxTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mock = fxmock.NewMockPresenter(s.ctrl)
}

func (s *FxTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFxSuite(t *testing.T) {
	suite.Run(t, new(FxTestSuite))
}

func (s *FxTestSuite) TestFilteredHonoursSettings() {
	s.Run("sound off drops cues", func() {
		p := fx.Filtered(s.mock, fx.Settings{SoundEnabled: false})
		s.mock.EXPECT().Shake(gomock.Any(), gomock.Any()).Times(1)
		p.Sound(fx.CueHit)
		p.Shake(time.Millisecond, 0.01)
	})

	s.Run("reduced effects drops shakes", func() {
		p := fx.Filtered(s.mock, fx.Settings{SoundEnabled: true, ReducedEffects: true})
		s.mock.EXPECT().Sound(fx.CueHit).Times(1)
		s.mock.EXPECT().DamageNumber(geom.V(1, 2), 5.0, true).Times(1)
		p.Sound(fx.CueHit)
		p.Shake(time.Millisecond, 0.01)
		p.DamageNumber(geom.V(1, 2), 5, true)
	})
}

func (s *FxTestSuite) TestNopAndNilNext() {
	p := fx.Filtered(nil, fx.DefaultSettings())
	s.NotPanics(func() {
		p.Sound(fx.CueShoot)
		p.Notify(fx.NoticeGameOver, nil)
		fx.Nop().Shake(time.Second, 1)
	})
}

func (s *FxTestSuite) TestPublisherConfigValidation() {
	_, err := fx.NewPublisher(nil)
	s.Require().Error(err)

	_, err = fx.NewPublisher(&fx.PublisherConfig{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Bus")
}

func (s *FxTestSuite) TestPublisherDeliversOnBus() {
	bus := events.NewBus()
	var cues []string
	bus.SubscribeFunc(fx.EventSound, 0, func(_ context.Context, evt events.Event) error {
		cue, ok := fx.Lookup[string](evt, fx.KeyCue)
		s.Require().True(ok)
		cues = append(cues, cue)
		return nil
	})

	pub, err := fx.NewPublisher(&fx.PublisherConfig{Bus: bus, Source: fx.Source{ID: "run-1"}})
	s.Require().NoError(err)

	pub.Sound(fx.CueDash)
	pub.Shake(time.Millisecond, 0.01)

	s.Assert().Equal([]string{"dash"}, cues)
}

func (s *FxTestSuite) TestRecorderCounts() {
	r := fx.NewRecorder()
	r.DamageNumber(geom.Vec{}, 10, true)
	r.Sound(fx.CueHit)
	r.Sound(fx.CueHit)
	r.Notify(fx.NoticeWaveCleared, nil)

	s.Assert().Equal(1, r.Crits)
	s.Assert().Equal(2, r.SoundCount(fx.CueHit))
	s.Assert().Equal(1, r.Count(fx.NoticeWaveCleared))
}
