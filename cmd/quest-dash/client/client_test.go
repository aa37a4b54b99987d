package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-dash/internal/config"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/quest-dash/internal/redis"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
)

type ClientCmdTestSuite struct {
	suite.Suite
	ctx    context.Context
	mr     *miniredis.Miniredis
	server *httptest.Server
	mux    *http.ServeMux
	bodies map[string]string
	root   *cobra.Command
	out    *bytes.Buffer
}

func TestClientCmdSuite(t *testing.T) {
	suite.Run(t, new(ClientCmdTestSuite))
}

func (s *ClientCmdTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mr = miniredis.RunT(s.T())
	s.bodies = map[string]string{}
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.bodies[r.Method+" "+r.URL.Path] = string(body)
		s.mux.ServeHTTP(w, r)
	}))

	s.out.Reset()
}

func (s *ClientCmdTestSuite) SetupSuite() {
	s.root = &cobra.Command{Use: "quest-dash", SilenceUsage: true, SilenceErrors: true}
	config.RegisterFlags(s.root.PersistentFlags())
	s.root.AddCommand(ClientCmd)
	s.out = &bytes.Buffer{}
	s.root.SetOut(s.out)
}

func (s *ClientCmdTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientCmdTestSuite) respond(pattern, body string) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
}

func (s *ClientCmdTestSuite) loginAs(user entities.User) {
	rc, err := redisclient.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = rc.Close() }()

	repo, err := session.NewRedisRepository(&session.Config{Client: rc, Clock: clock.New()})
	s.Require().NoError(err)
	_, err = repo.Save(s.ctx, session.SaveInput{Profile: "default", AccessToken: "tok", User: user})
	s.Require().NoError(err)
}

func (s *ClientCmdTestSuite) run(args ...string) error {
	base := []string{
		"--api-url", s.server.URL,
		"--redis-addr", s.mr.Addr(),
		"--log-level", "error",
	}
	s.root.SetArgs(append(append([]string{"client"}, args...), base...))
	return s.root.ExecuteContext(s.ctx)
}

func (s *ClientCmdTestSuite) respondDashboard() {
	s.respond("GET /admin/stats",
		`{"total_users":2,"total_quests":1,"total_completed":1,"total_in_progress":0,
		  "users":[{"username":"bob","level":4,"completed_quests":1}]}`)
	s.respond("GET /admin/quests",
		`[{"id":1,"title":"Slay the rat","description":"","base_xp":50,"type":"PRIMARY",
		   "decorators":[{"type":"level_req","value":2}]}]`)
}

func (s *ClientCmdTestSuite) TestListQuestsRequiresAdmin() {
	s.loginAs(entities.User{Username: "bob"})

	err := s.run("list-quests")
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Contains(s.out.String(), "✗ Access denied. Administrator rights required.")
}

func (s *ClientCmdTestSuite) TestListQuests() {
	s.loginAs(entities.User{Username: "admin", IsAdmin: true})
	s.respondDashboard()

	s.Require().NoError(s.run("list-quests"))
	s.Contains(s.out.String(), "Slay the rat")
	s.Contains(s.out.String(), "Primary")
}

func (s *ClientCmdTestSuite) TestStats() {
	s.loginAs(entities.User{Username: "admin", IsAdmin: true})
	s.respondDashboard()

	s.Require().NoError(s.run("stats"))
	s.Contains(s.out.String(), "Users: 2  Quests: 1")
	s.Contains(s.out.String(), "bob")
}

func (s *ClientCmdTestSuite) TestCreateQuest() {
	s.loginAs(entities.User{Username: "admin", IsAdmin: true})
	s.respondDashboard()
	s.respond("POST /admin/quests",
		`{"id":2,"title":"Find the sword","description":"","base_xp":75,"type":"SECONDARY",
		  "decorators":[{"type":"item_reward","value":"Sword"}]}`)

	s.Require().NoError(s.run("create-quest",
		"--title", "Find the sword",
		"--base-xp", "75",
		"--decorator", "item_reward=Sword"))

	s.Contains(s.bodies["POST /admin/quests"], `"item_reward"`)
	s.Contains(s.bodies["POST /admin/quests"], `"Find the sword"`)
	s.Contains(s.out.String(), "✓ Quest created successfully")
	s.Contains(s.out.String(), "Quest #2: Find the sword")
}

func (s *ClientCmdTestSuite) TestCreateQuestRejectsBadDecorator() {
	s.loginAs(entities.User{Username: "admin", IsAdmin: true})
	s.respondDashboard()

	err := s.run("create-quest", "--title", "x", "--base-xp", "1", "--decorator", "level_req")
	s.Require().Error(err)
	s.Contains(err.Error(), "tag=value")
	s.NotContains(s.bodies, "POST /admin/quests")
}

func (s *ClientCmdTestSuite) TestDeleteQuest() {
	s.loginAs(entities.User{Username: "admin", IsAdmin: true})
	s.respondDashboard()
	s.mux.HandleFunc("DELETE /admin/quests/1", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	s.Require().NoError(s.run("delete-quest", "#1"))
	s.Contains(s.out.String(), "✓ Quest deleted")
}

func (s *ClientCmdTestSuite) TestPlayerRequiresLogin() {
	err := s.run("quests")
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *ClientCmdTestSuite) TestParseQuestID() {
	id, err := parseQuestID("#7")
	s.Require().NoError(err)
	s.Equal(int64(7), id)

	_, err = parseQuestID("zero")
	s.Error(err)
	_, err = parseQuestID("0")
	s.Error(err)
}
