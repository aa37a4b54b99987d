package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/quest-dash/internal/orchestrators/player/mock"
)

type PlayerModelTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *playermock.MockService
	ctx     context.Context
	status  *entities.PlayerStatus
	quests  []*entities.QuestWithStatus
	model   playerModel
}

func TestPlayerModelSuite(t *testing.T) {
	suite.Run(t, new(PlayerModelTestSuite))
}

func (s *PlayerModelTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = playermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	s.status = &entities.PlayerStatus{
		Name:      "Robin",
		Level:     2,
		XP:        1250,
		Money:     40,
		Inventory: []string{"Sword", "Old map"},
	}
	s.quests = []*entities.QuestWithStatus{
		{
			Quest:               entities.Quest{ID: 1, Title: "Meet the king", Type: entities.QuestTypePrimary, Decorators: json.RawMessage(`[]`)},
			MissingRequirements: []string{"Level 5 required"},
		},
		{
			Quest: entities.Quest{ID: 2, Title: "Slay the rat", BaseXP: 20, Type: entities.QuestTypeSecondary,
				Decorators: json.RawMessage(`[{"type":"money_reward","value":15},{"type":"item_reward","value":"Relic"}]`)},
			CanStart: true,
		},
	}

	s.model = newPlayerModel(s.ctx, s.mockSvc, Options{MarkdownStyle: "notty"})
	s.model, _ = send(s.model, playerDashboardMsg{out: &player.DashboardOutput{Status: s.status, Quests: s.quests}})
}

func (s *PlayerModelTestSuite) TearDownTest() {
	s.model.feed.close()
	s.ctrl.Finish()
}

func (s *PlayerModelTestSuite) TestView() {
	view := s.model.View()
	s.Contains(view, "Robin")
	s.Contains(view, "1 250")
	s.Contains(view, "⚔️ Sword")
	s.Contains(view, "🎒 Old map")
	s.Contains(view, "🔒 Locked")
	s.Contains(view, "✗ Level 5 required")

	s.model = press(s.model, "down")
	view = s.model.View()
	s.Contains(view, "Available")
	s.Contains(view, "💰 15 coins")
	s.Contains(view, "🎁 Relic")
}

func (s *PlayerModelTestSuite) TestUnauthenticatedQuits() {
	m, cmd := send(newPlayerModel(s.ctx, s.mockSvc, Options{}), playerDashboardMsg{err: errors.Unauthenticated("Please log in first")})
	s.Require().NotNil(cmd)
	s.Equal(tea.QuitMsg{}, cmd())
	s.True(errors.IsUnauthenticated(m.err))
}

func (s *PlayerModelTestSuite) TestLockedQuestCannotComplete() {
	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("c"))
	s.Nil(cmd)
	s.False(s.model.busy)
}

func (s *PlayerModelTestSuite) TestCompleteQuestCelebrates() {
	s.mockSvc.EXPECT().CompleteQuest(s.ctx, int64(2)).Return(&player.CompleteQuestOutput{
		Result:  &entities.QuestResult{Success: true, Message: "Quest completed!"},
		Summary: []string{"⭐ +20 XP", "💰 +15 coins"},
		Dashboard: &player.DashboardOutput{
			Status: &entities.PlayerStatus{Name: "Robin", Level: 3},
		},
	}, nil)

	s.model = press(s.model, "down")
	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("c"))
	s.Require().NotNil(cmd)
	s.model, _ = send(s.model, cmd())

	view := s.model.View()
	s.Contains(view, "QUEST COMPLETE!")
	s.Contains(view, "Slay the rat")
	s.Contains(view, "⭐ +20 XP")
	s.Equal(3, s.model.status.Level)
	// quests keep the previous listing when the refresh omitted them
	s.Len(s.model.quests, 2)

	s.model = press(s.model, "x")
	s.NotContains(s.model.View(), "QUEST COMPLETE!")
}

func (s *PlayerModelTestSuite) TestCompleteRefusedStaysOnBoard() {
	s.mockSvc.EXPECT().CompleteQuest(s.ctx, int64(2)).Return(&player.CompleteQuestOutput{
		Result: &entities.QuestResult{Success: false, Message: "Talk to the NPC first"},
	}, nil)

	s.model = press(s.model, "down")
	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("enter"))
	s.model, _ = send(s.model, cmd())

	s.Empty(s.model.celebration)
	s.Contains(s.model.View(), "QUEST BOARD")
}

func (s *PlayerModelTestSuite) TestTalkToNPC() {
	s.mockSvc.EXPECT().TalkToNPC(s.ctx).Return(&player.TalkToNPCOutput{
		Result: &entities.ActionResult{Success: true},
		Dashboard: &player.DashboardOutput{
			Status: &entities.PlayerStatus{Name: "Robin", SpokenToNPC: true},
		},
	}, nil)

	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("t"))
	s.model, _ = send(s.model, cmd())

	s.Contains(s.model.View(), "✓ NPC contacted")
}

func (s *PlayerModelTestSuite) TestManualRefreshToast() {
	s.mockSvc.EXPECT().Refresh(s.ctx).Return(&player.DashboardOutput{Status: s.status, Quests: s.quests}, nil)

	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("r"))
	s.model, _ = send(s.model, cmd())

	s.Contains(s.model.View(), "✓ Data refreshed")
}
