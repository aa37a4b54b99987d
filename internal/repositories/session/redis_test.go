package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	mockclock "github.com/KirkDiggler/quest-dash/internal/pkg/clock/mock"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
	"github.com/KirkDiggler/quest-dash/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	cleanup   func()
	repo      session.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := session.NewRedisRepository(&session.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) saveAdmin(ttl time.Duration) {
	s.mockClock.EXPECT().Now().Return(s.now)
	_, err := s.repo.Save(s.ctx, session.SaveInput{
		Profile:     "default",
		AccessToken: "token-abc",
		User:        entities.User{Username: "admin", IsAdmin: true, Name: "Admin", Level: 5},
		TTL:         ttl,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryValidatesConfig() {
	_, err := session.NewRedisRepository(nil)
	s.Error(err)

	_, err = session.NewRedisRepository(&session.Config{Clock: s.mockClock})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	s.saveAdmin(30 * time.Minute)

	s.True(s.mr.Exists("quest_dash:session:default"))
	s.Equal(30*time.Minute, s.mr.TTL("quest_dash:session:default"))

	s.mockClock.EXPECT().Now().Return(s.now.Add(10 * time.Minute))
	out, err := s.repo.Get(s.ctx, session.GetInput{Profile: "default"})
	s.Require().NoError(err)

	s.Equal("token-abc", out.Session.AccessToken)
	s.Equal("admin", out.Session.User.Username)
	s.True(out.Session.User.IsAdmin)
	s.True(out.Session.CreatedAt.Equal(s.now))
	s.True(out.Session.ExpiresAt.Equal(s.now.Add(30 * time.Minute)))
}

func (s *RedisRepositoryTestSuite) TestSaveDefaultsTTL() {
	s.saveAdmin(0)
	s.Equal(session.DefaultTTL, s.mr.TTL("quest_dash:session:default"))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, session.GetInput{Profile: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpiredByClock() {
	s.saveAdmin(time.Hour)

	s.mockClock.EXPECT().Now().Return(s.now.Add(2 * time.Hour))
	_, err := s.repo.Get(s.ctx, session.GetInput{Profile: "default"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("quest_dash:session:default"))
}

func (s *RedisRepositoryTestSuite) TestGetExpiredByRedisTTL() {
	s.saveAdmin(time.Minute)
	s.mr.FastForward(2 * time.Minute)

	_, err := s.repo.Get(s.ctx, session.GetInput{Profile: "default"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.saveAdmin(time.Hour)

	out, err := s.repo.Delete(s.ctx, session.DeleteInput{Profile: "default"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, session.DeleteInput{Profile: "default"})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestEmptyProfileRejected() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{AccessToken: "x"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, session.SaveInput{Profile: "default"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, session.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
