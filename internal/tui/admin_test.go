package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	questapimock "github.com/KirkDiggler/quest-dash/internal/clients/questapi/mock"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/admin"
	adminmock "github.com/KirkDiggler/quest-dash/internal/orchestrators/admin/mock"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
)

type AdminModelTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockSvc  *adminmock.MockService
	form     *questform.Controller
	recorder *notify.Recorder
	ctx      context.Context
	quests   []*entities.Quest
	model    adminModel
}

func TestAdminModelSuite(t *testing.T) {
	suite.Run(t, new(AdminModelTestSuite))
}

func (s *AdminModelTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSvc = adminmock.NewMockService(s.ctrl)
	s.recorder = &notify.Recorder{}
	s.ctx = context.Background()

	form, err := questform.New(&questform.Config{
		Quests:   questapimock.NewMockClient(s.ctrl),
		Notifier: s.recorder,
	})
	s.Require().NoError(err)
	s.form = form
	s.mockSvc.EXPECT().Form().Return(form).AnyTimes()

	s.quests = []*entities.Quest{
		{ID: 1, Title: "Slay the rat", BaseXP: 20, Type: entities.QuestTypePrimary, Decorators: json.RawMessage(`[]`)},
		{ID: 2, Title: "Bring a potion", Description: "The healer is waiting", BaseXP: 1500,
			Type: entities.QuestTypeSecondary, Decorators: json.RawMessage(`[{"type":"item_reward","value":"Potion"}]`)},
	}

	s.model = newAdminModel(s.ctx, s.mockSvc, Options{MarkdownStyle: "notty"})
	s.model, _ = send(s.model, dashboardMsg{out: &admin.DashboardOutput{
		Quests: s.quests,
		Stats:  &entities.AdminStats{TotalUsers: 1200, TotalQuests: 2},
	}})
}

func (s *AdminModelTestSuite) TearDownTest() {
	s.model.feed.close()
	s.ctrl.Finish()
}

func (s *AdminModelTestSuite) TestListView() {
	view := s.model.View()
	s.Contains(view, "QUEST ADMIN")
	s.Contains(view, "Users 1 200")
	s.Contains(view, "Slay the rat")
	s.Contains(view, "1 500")
	s.Contains(view, "No decorators configured")

	s.model = press(s.model, "down")
	s.Contains(s.model.View(), "Item: 🧪 Potion")
}

func (s *AdminModelTestSuite) TestPermissionDeniedQuits() {
	m, cmd := send(newAdminModel(s.ctx, s.mockSvc, Options{}), dashboardMsg{
		err: errors.PermissionDenied("Access denied. Administrator rights required."),
	})
	s.Require().NotNil(cmd)
	s.Equal(tea.QuitMsg{}, cmd())
	s.True(errors.IsPermissionDenied(m.err))
}

func (s *AdminModelTestSuite) TestFilter() {
	s.model = press(s.model, "/")
	s.model = typeText(s.model, "potion")
	s.model = press(s.model, "enter")

	visible := s.model.visible()
	s.Require().Len(visible, 1)
	s.Equal(int64(2), visible[0].ID)

	s.model = press(s.model, "/", "esc")
	s.Len(s.model.visible(), 2)
}

func (s *AdminModelTestSuite) TestCreateQuestWithDecorators() {
	s.mockSvc.EXPECT().OpenCreate().Do(func() { s.form.OpenForCreate() })

	s.model = press(s.model, "n")
	s.Equal(viewQuestForm, s.model.view)
	s.Equal(fieldTitle, s.model.focus)

	s.model = typeText(s.model, "Find the elder")
	s.model = press(s.model, "tab", "tab")
	s.model = typeText(s.model, "50")

	// level requirement: letters are refused by the number control
	s.model = press(s.model, "tab", "tab", "tab")
	s.Equal(fieldValue, s.model.focus)
	s.model = typeText(s.model, "x3")
	s.model = press(s.model, "enter")

	// switch to the NPC requirement
	s.model = press(s.model, "shift+tab", "right", "tab")
	s.model = typeText(s.model, "Elder")
	s.model = press(s.model, "enter")

	lines := s.form.Lines()
	s.Require().Len(lines, 2)
	s.Equal("Level 3 required", lines[0].Label)
	s.Equal("NPC required: Elder", lines[1].Label)

	s.Equal("Find the elder", s.form.Fields().Title)
	s.Equal("050", s.form.Fields().BaseXP)

	s.mockSvc.EXPECT().SubmitForm(s.ctx).Return(&admin.SubmitFormOutput{
		Quest:     &entities.Quest{ID: 3, Title: "Find the elder"},
		Dashboard: &admin.DashboardOutput{Quests: append(s.quests, &entities.Quest{ID: 3, Title: "Find the elder"})},
	}, nil)

	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("ctrl+s"))
	s.Require().NotNil(cmd)
	s.model, _ = send(s.model, cmd())

	s.Equal(viewQuestList, s.model.view)
	s.Len(s.model.quests, 3)
}

func (s *AdminModelTestSuite) TestEmptyValueWarns() {
	s.mockSvc.EXPECT().OpenCreate().Do(func() { s.form.OpenForCreate() })

	s.model = press(s.model, "n", "tab", "tab", "tab", "tab", "tab", "enter")

	last, ok := s.recorder.Last()
	s.Require().True(ok)
	s.Equal(notify.LevelWarning, last.Level)
	s.Empty(s.form.Lines())
}

func (s *AdminModelTestSuite) TestRemoveDecorator() {
	s.mockSvc.EXPECT().EditQuest(s.ctx, int64(2)).DoAndReturn(func(_ context.Context, _ int64) error {
		return s.form.OpenForEdit(s.quests[1])
	})

	s.model = press(s.model, "down")
	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("e"))
	s.model, _ = send(s.model, cmd())

	s.Equal(viewQuestForm, s.model.view)
	s.Equal("Bring a potion", s.model.title.Value())
	s.Contains(s.model.View(), "EDIT QUEST #2")
	s.Len(s.form.Lines(), 1)

	s.model = press(s.model, "shift+tab", "x")
	s.Empty(s.form.Lines())
}

func (s *AdminModelTestSuite) TestSubmitFailureKeepsForm() {
	s.mockSvc.EXPECT().OpenCreate().Do(func() { s.form.OpenForCreate() })
	s.model = press(s.model, "n")
	s.model = typeText(s.model, "Broken")

	s.mockSvc.EXPECT().SubmitForm(s.ctx).Return(nil, errors.Service(500, "boom"))

	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("ctrl+s"))
	s.model, _ = send(s.model, cmd())

	s.Equal(viewQuestForm, s.model.view)
	s.Equal("Broken", s.model.title.Value())
}

func (s *AdminModelTestSuite) TestCancelForm() {
	s.mockSvc.EXPECT().OpenCreate().Do(func() { s.form.OpenForCreate() })
	s.model = press(s.model, "n")
	s.model = typeText(s.model, "Draft")
	s.model = press(s.model, "esc")

	s.Equal(viewQuestList, s.model.view)
	s.Equal(questform.StateClosed, s.form.State())
}

func (s *AdminModelTestSuite) TestDeleteConfirm() {
	s.Run("declined", func() {
		s.model = press(s.model, "d")
		s.Equal(viewConfirm, s.model.view)
		s.Contains(s.model.View(), `Delete quest "Slay the rat"?`)

		var cmd tea.Cmd
		s.model, cmd = send(s.model, key("n"))
		s.Nil(cmd)
		s.Equal(viewQuestList, s.model.view)
	})

	s.Run("confirmed", func() {
		s.mockSvc.EXPECT().DeleteQuest(s.ctx, int64(1)).Return(&admin.DashboardOutput{Quests: s.quests[1:]}, nil)

		s.model = press(s.model, "d")
		var cmd tea.Cmd
		s.model, cmd = send(s.model, key("y"))
		s.Require().NotNil(cmd)
		s.model, _ = send(s.model, cmd())
		s.Len(s.model.quests, 1)
	})
}

func (s *AdminModelTestSuite) TestFixIDs() {
	s.mockSvc.EXPECT().FixIDs(s.ctx).Return(&admin.FixIDsOutput{
		Result:    &entities.FixIDsResult{Success: true},
		Dashboard: &admin.DashboardOutput{Quests: s.quests[:1]},
	}, nil)

	var cmd tea.Cmd
	s.model, cmd = send(s.model, key("f"))
	s.True(s.model.busy)
	s.model, _ = send(s.model, cmd())
	s.False(s.model.busy)
	s.Len(s.model.quests, 1)
}

func (s *AdminModelTestSuite) TestToastRendered() {
	s.model, _ = send(s.model, notificationMsg(notify.Notification{Level: notify.LevelSuccess, Message: "Quest deleted"}))
	s.Contains(s.model.View(), "✓ Quest deleted")
}
