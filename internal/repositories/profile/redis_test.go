package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-arena/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	server    *miniredis.Miniredis
	cleanup   func()
	repo      profile.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	client, server, cleanup := testutils.CreateTestRedisServer(s.T())
	s.server = server
	s.cleanup = cleanup

	repo, err := profile.NewRedis(&profile.Config{Client: client, Clock: s.mockClock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := profile.NewRedis(&profile.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Client")
	s.Assert().Contains(err.Error(), "Clock")

	_, err = profile.NewRedis(nil)
	s.Assert().Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.mockClock.EXPECT().Now().Return(s.now)

	p := entities.NewProfile("player_1")
	p.Settings.ReducedEffects = true
	p.Unlock("tank")

	saved, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)
	s.Assert().Equal(s.now, saved.Profile.CreatedAt)
	s.Assert().Equal(s.now, saved.Profile.UpdatedAt)
	s.Assert().True(p.CreatedAt.IsZero(), "input is not mutated")

	s.Assert().True(s.server.Exists("profile:player_1"))
	members, err := s.server.Members("profiles")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"player_1"}, members)

	got, err := s.repo.Get(s.ctx, profile.GetInput{ID: "player_1"})
	s.Require().NoError(err)
	s.Assert().True(got.Profile.Settings.ReducedEffects)
	s.Assert().True(got.Profile.HasUnlocked("tank"))
	s.Assert().True(s.now.Equal(got.Profile.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveKeepsCreatedAt() {
	later := s.now.Add(time.Hour)
	gomock.InOrder(
		s.mockClock.EXPECT().Now().Return(s.now),
		s.mockClock.EXPECT().Now().Return(later),
	)

	first, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: entities.NewProfile("player_1")})
	s.Require().NoError(err)

	first.Profile.CurrencyBalance = 40
	second, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: first.Profile})
	s.Require().NoError(err)

	s.Assert().Equal(s.now, second.Profile.CreatedAt)
	s.Assert().Equal(later, second.Profile.UpdatedAt)
	s.Assert().Equal(40, second.Profile.CurrencyBalance)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorruptData() {
	s.Require().NoError(s.server.Set("profile:broken", "{not json"))

	_, err := s.repo.Get(s.ctx, profile.GetInput{ID: "broken"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: &entities.Profile{}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteAndList() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	for _, id := range []string{"player_b", "player_a"} {
		_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: entities.NewProfile(id)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, profile.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"player_a", "player_b"}, list.IDs)

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{ID: "player_a"})
	s.Require().NoError(err)

	list, err = s.repo.List(s.ctx, profile.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"player_b"}, list.IDs)

	_, err = s.repo.Delete(s.ctx, profile.DeleteInput{ID: "player_a"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestRoundTripKeepsProgress() {
	s.mockClock.EXPECT().Now().Return(s.now)

	p := testutils.CreateTestProfile(testutils.TestProfileID)
	p.CompletedChallengeIDs = []string{"first_boss"}
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: p})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, profile.GetInput{ID: testutils.TestProfileID})
	s.Require().NoError(err)
	s.Assert().Equal(p.CurrencyBalance, got.Profile.CurrencyBalance)
	s.Assert().Equal(p.BestWave, got.Profile.BestWave)
	s.Assert().Equal(p.RunsPlayed, got.Profile.RunsPlayed)
	s.Assert().Equal(testutils.TestCharacterID, got.Profile.SelectedCharacterID)
	s.Assert().Equal([]string{"first_boss"}, got.Profile.CompletedChallengeIDs)
}

func (s *RedisRepositoryTestSuite) TestVerify() {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: entities.NewProfile("player_ok")})
	s.Require().NoError(err)

	s.Require().NoError(s.server.Set("profile:player_bad", "{not json"))
	_, err = s.server.SAdd("profiles", "player_bad", "player_gone")
	s.Require().NoError(err)

	s.Run("reports without fixing", func() {
		out, err := s.repo.Verify(s.ctx, profile.VerifyInput{})
		s.Require().NoError(err)
		s.Assert().Equal(2, out.Checked)
		s.Assert().Equal([]string{"player_bad"}, out.Corrupt)
		s.Assert().Equal([]string{"player_gone"}, out.Dangling)
		s.Assert().False(out.Fixed)
		s.Assert().True(s.server.Exists("profile:player_bad"))
	})

	s.Run("fixes", func() {
		out, err := s.repo.Verify(s.ctx, profile.VerifyInput{Fix: true})
		s.Require().NoError(err)
		s.Assert().True(out.Fixed)
		s.Assert().False(s.server.Exists("profile:player_bad"))

		list, err := s.repo.List(s.ctx, profile.ListInput{})
		s.Require().NoError(err)
		s.Assert().Equal([]string{"player_ok"}, list.IDs)
	})

	s.Run("clean store", func() {
		out, err := s.repo.Verify(s.ctx, profile.VerifyInput{Fix: true})
		s.Require().NoError(err)
		s.Assert().Equal(1, out.Checked)
		s.Assert().Empty(out.Corrupt)
		s.Assert().Empty(out.Dangling)
		s.Assert().False(out.Fixed)
	})
}
