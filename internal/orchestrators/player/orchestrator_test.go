package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	questapimock "github.com/KirkDiggler/quest-dash/internal/clients/questapi/mock"
	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	notifymock "github.com/KirkDiggler/quest-dash/internal/notify/mock"
	authmock "github.com/KirkDiggler/quest-dash/internal/orchestrators/auth/mock"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/player"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGuard    *authmock.MockService
	mockQuests   *questapimock.MockClient
	mockNotifier *notifymock.MockSink
	orchestrator player.Service
	ctx          context.Context
	status       *entities.PlayerStatus
	quests       []*entities.QuestWithStatus
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGuard = authmock.NewMockService(s.ctrl)
	s.mockQuests = questapimock.NewMockClient(s.ctrl)
	s.mockNotifier = notifymock.NewMockSink(s.ctrl)
	s.ctx = context.Background()

	o, err := player.NewOrchestrator(&player.Config{
		Guard:    s.mockGuard,
		Quests:   s.mockQuests,
		Notifier: s.mockNotifier,
	})
	s.Require().NoError(err)
	s.orchestrator = o

	s.status = &entities.PlayerStatus{Name: "Robin", Level: 2, XP: 150, Money: 30}
	s.quests = []*entities.QuestWithStatus{
		{Quest: entities.Quest{ID: 1, Title: "Slay the rat"}, IsCompleted: true},
		{Quest: entities.Quest{ID: 2, Title: "Meet the elder"}, CanStart: true},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectRefresh() {
	s.mockQuests.EXPECT().GetPlayerStatus(s.ctx).Return(s.status, nil)
	s.mockQuests.EXPECT().ListPlayerQuests(s.ctx).Return(s.quests, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := player.NewOrchestrator(&player.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestInitUnauthenticatedMakesNoCalls() {
	s.mockGuard.EXPECT().RequireAuth(s.ctx).Return(false)

	out, err := s.orchestrator.Init(s.ctx)
	s.Nil(out)
	s.True(errors.IsUnauthenticated(err))
}

func (s *OrchestratorTestSuite) TestInitLoadsDashboard() {
	s.mockGuard.EXPECT().RequireAuth(s.ctx).Return(true)
	s.expectRefresh()

	out, err := s.orchestrator.Init(s.ctx)
	s.Require().NoError(err)
	s.Equal("Robin", out.Status.Name)
	s.Len(out.Quests, 2)
	s.Equal("completed", out.Quests[0].Availability())
	s.Equal("available", out.Quests[1].Availability())
}

func (s *OrchestratorTestSuite) TestRefreshNotifiesEachFailure() {
	s.mockQuests.EXPECT().GetPlayerStatus(s.ctx).Return(nil, errors.Service(500, "boom"))
	s.mockQuests.EXPECT().ListPlayerQuests(s.ctx).Return(s.quests, nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelError, "Failed to load status").Times(1)

	out, err := s.orchestrator.Refresh(s.ctx)
	s.Require().Error(err)
	s.Nil(out.Status)
	s.Len(out.Quests, 2)
}

func (s *OrchestratorTestSuite) TestRefreshBothFail() {
	s.mockQuests.EXPECT().GetPlayerStatus(s.ctx).Return(nil, errors.Service(503, ""))
	s.mockQuests.EXPECT().ListPlayerQuests(s.ctx).Return(nil, errors.Service(503, ""))
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelError, "Failed to load status")
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelError, "Failed to load quests")

	_, err := s.orchestrator.Refresh(s.ctx)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestCompleteQuestSuccess() {
	s.mockQuests.EXPECT().CompleteQuest(s.ctx, int64(2)).Return(&entities.QuestResult{
		Success: true,
		Message: "Quest completed!",
		Rewards: &entities.QuestRewards{XP: 50, Money: 10, Items: []string{"Potion"}, LeveledUp: true, NewLevel: 3},
	}, nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelSuccess, "Quest completed!")
	s.expectRefresh()

	out, err := s.orchestrator.CompleteQuest(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]string{"⭐ +50 XP", "💰 +10 coins", "🧪 Potion", "🎉 LEVEL UP! Level 3"}, out.Summary)
	s.NotNil(out.Dashboard)
}

func (s *OrchestratorTestSuite) TestCompleteQuestRefusedWarns() {
	s.mockQuests.EXPECT().CompleteQuest(s.ctx, int64(2)).Return(&entities.QuestResult{
		Success: false,
		Message: "Level 5 required",
	}, nil)
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelWarning, "Level 5 required")

	out, err := s.orchestrator.CompleteQuest(s.ctx, 2)
	s.Require().NoError(err)
	s.Empty(out.Summary)
	s.Nil(out.Dashboard)
}

func (s *OrchestratorTestSuite) TestCompleteQuestError() {
	s.mockQuests.EXPECT().CompleteQuest(s.ctx, int64(2)).Return(nil, errors.Service(400, "You already completed this quest"))
	s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelError, "Failed to complete quest")

	_, err := s.orchestrator.CompleteQuest(s.ctx, 2)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestTalkToNPC() {
	s.Run("success refreshes", func() {
		s.mockQuests.EXPECT().TalkToNPC(s.ctx).Return(&entities.ActionResult{Success: true, Message: "The elder nods"}, nil)
		s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelSuccess, "The elder nods")
		s.expectRefresh()

		out, err := s.orchestrator.TalkToNPC(s.ctx)
		s.Require().NoError(err)
		s.NotNil(out.Dashboard)
	})

	s.Run("already spoken is info", func() {
		s.mockQuests.EXPECT().TalkToNPC(s.ctx).Return(&entities.ActionResult{Success: false, Message: "Already talked"}, nil)
		s.mockNotifier.EXPECT().Notify(s.ctx, notify.LevelInfo, "Already talked")

		out, err := s.orchestrator.TalkToNPC(s.ctx)
		s.Require().NoError(err)
		s.Nil(out.Dashboard)
	})
}

func TestRewardSummaryPlain(t *testing.T) {
	r := decorators.NewRenderer(decorators.StylePlain, nil)

	got := player.RewardSummary(r, &entities.QuestRewards{XP: 5, Items: []string{"Relic"}})
	assert.Equal(t, []string{"+5 XP", "Relic"}, got)
	assert.Nil(t, player.RewardSummary(r, nil))
}
