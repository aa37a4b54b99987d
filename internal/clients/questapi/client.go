// Package questapi is the HTTP client for the Quest API
package questapi

//go:generate mockgen -destination=mock/mock_client.go -package=questapimock github.com/KirkDiggler/quest-dash/internal/clients/questapi Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
)

const (
	// DefaultBaseURL is where the Quest API listens in development
	DefaultBaseURL = "http://localhost:8000"
	// DefaultHTTPTimeout bounds every request
	DefaultHTTPTimeout = 30 * time.Second
)

// Client defines the Quest API operations used by the dashboard
type Client interface {
	// Register creates an account and returns its first access token
	Register(ctx context.Context, input *RegisterInput) (*entities.Token, error)

	// Login exchanges credentials for an access token
	Login(ctx context.Context, input *LoginInput) (*entities.Token, error)

	// GetPlayerStatus returns the progression of the authenticated player
	GetPlayerStatus(ctx context.Context) (*entities.PlayerStatus, error)

	// ListPlayerQuests returns every quest annotated for the authenticated player
	ListPlayerQuests(ctx context.Context) ([]*entities.QuestWithStatus, error)

	// CompleteQuest attempts a quest. Unmet conditions are reported in the
	// result, not as an error.
	CompleteQuest(ctx context.Context, questID int64) (*entities.QuestResult, error)

	// TalkToNPC marks the main NPC as spoken to
	TalkToNPC(ctx context.Context) (*entities.ActionResult, error)

	// ListQuests returns every quest (admin)
	ListQuests(ctx context.Context) ([]*entities.Quest, error)

	// CreateQuest adds a quest (admin)
	CreateQuest(ctx context.Context, data *entities.QuestData) (*entities.Quest, error)

	// UpdateQuest replaces a quest (admin)
	UpdateQuest(ctx context.Context, questID int64, data *entities.QuestData) (*entities.Quest, error)

	// DeleteQuest removes a quest (admin)
	DeleteQuest(ctx context.Context, questID int64) error

	// FixQuestIDs renumbers quests sequentially (admin)
	FixQuestIDs(ctx context.Context) (*entities.FixIDsResult, error)

	// GetAdminStats returns global counters (admin)
	GetAdminStats(ctx context.Context) (*entities.AdminStats, error)
}

// TokenSource supplies the bearer token for authenticated requests.
// An empty token sends the request without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

// Token returns the static token
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// RegisterInput contains the account to create
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginInput contains credentials
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Config contains configuration options for the Quest API client
type Config struct {
	// BaseURL of the Quest API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// Tokens supplies the bearer token (optional, requests are anonymous without it)
	Tokens TokenSource
	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate applies defaults and checks the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		vb.InvalidField("BaseURL", "must start with http:// or https://")
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must be positive")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// New creates a Quest API client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		httpClient: httpClient,
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) Register(ctx context.Context, input *RegisterInput) (*entities.Token, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var token entities.Token
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *client) Login(ctx context.Context, input *LoginInput) (*entities.Token, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var token entities.Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", input, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *client) GetPlayerStatus(ctx context.Context) (*entities.PlayerStatus, error) {
	var status entities.PlayerStatus
	if err := c.do(ctx, http.MethodGet, "/player/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *client) ListPlayerQuests(ctx context.Context) ([]*entities.QuestWithStatus, error) {
	var quests []*entities.QuestWithStatus
	if err := c.do(ctx, http.MethodGet, "/player/quests", nil, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (c *client) CompleteQuest(ctx context.Context, questID int64) (*entities.QuestResult, error) {
	var result entities.QuestResult
	path := fmt.Sprintf("/player/quests/%d/complete", questID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) TalkToNPC(ctx context.Context) (*entities.ActionResult, error) {
	var result entities.ActionResult
	if err := c.do(ctx, http.MethodPost, "/player/talk-npc", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListQuests(ctx context.Context) ([]*entities.Quest, error) {
	var quests []*entities.Quest
	if err := c.do(ctx, http.MethodGet, "/admin/quests", nil, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (c *client) CreateQuest(ctx context.Context, data *entities.QuestData) (*entities.Quest, error) {
	if data == nil {
		return nil, errors.InvalidArgument("quest data is required")
	}

	var quest entities.Quest
	if err := c.do(ctx, http.MethodPost, "/admin/quests", withDecorators(data), &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (c *client) UpdateQuest(ctx context.Context, questID int64, data *entities.QuestData) (*entities.Quest, error) {
	if data == nil {
		return nil, errors.InvalidArgument("quest data is required")
	}

	var quest entities.Quest
	path := fmt.Sprintf("/admin/quests/%d", questID)
	if err := c.do(ctx, http.MethodPut, path, withDecorators(data), &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (c *client) DeleteQuest(ctx context.Context, questID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/quests/%d", questID), nil, nil)
}

func (c *client) FixQuestIDs(ctx context.Context) (*entities.FixIDsResult, error) {
	var result entities.FixIDsResult
	if err := c.do(ctx, http.MethodPost, "/admin/quests/fix-ids", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) GetAdminStats(ctx context.Context) (*entities.AdminStats, error) {
	var stats entities.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// withDecorators makes sure the payload always carries a decorator array
func withDecorators(data *entities.QuestData) *entities.QuestData {
	if len(data.Decorators) > 0 {
		return data
	}
	out := *data
	out.Decorators = json.RawMessage("[]")
	return &out
}

// do sends one request. A nil out discards the response body.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s %s request", method, path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil && !errors.IsNotFound(err) {
			return errors.Wrap(err, "failed to load access token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Quest API request failed",
			"method", method,
			"path", path,
			"error", err)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "network error")
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("Quest API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Service(resp.StatusCode, errorDetail(data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed response from Quest API").
			WithMeta("path", path)
	}
	return nil
}

// errorDetail extracts the detail field of an error body. Validation errors
// carry a list of {loc, msg} objects instead of a string.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg == "" {
				continue
			}
			if field := lastLoc(item.Loc); field != "" {
				msgs = append(msgs, field+": "+item.Msg)
			} else {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

func lastLoc(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok && s != "body" {
		return s
	}
	return ""
}
