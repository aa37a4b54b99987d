package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/quest-dash/internal/redis"
)

const (
	// Key pattern: quest_dash:session:{profile}
	sessionKeyPrefix = "quest_dash:session:"

	// DefaultTTL matches the lifetime of Quest API access tokens
	DefaultTTL = 60 * time.Minute

	errProfileEmpty = "profile cannot be empty"
	errTokenEmpty   = "access token cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if input.AccessToken == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	sess := &entities.Session{
		Profile:     input.Profile,
		AccessToken: input.AccessToken,
		User:        input.User,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+input.Profile, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &SaveOutput{Session: sess}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	key := sessionKeyPrefix + input.Profile
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no session for profile %s", input.Profile)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var sess entities.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTL and the local clock can disagree; the stored expiry wins.
	if !r.clock.Now().Before(sess.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("session for profile %s has expired", input.Profile)
	}

	return &GetOutput{Session: &sess}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	n, err := r.client.Del(ctx, sessionKeyPrefix+input.Profile).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}
