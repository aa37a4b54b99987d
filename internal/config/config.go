// Package config loads quest-dash settings from defaults, a TOML file,
// QUEST_DASH_* environment variables and command line flags, in that order.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/quest-dash/internal/errors"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "QUEST_DASH_"

// Session stores
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Duration is a time.Duration written as "30s" in TOML and the environment
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return errors.InvalidArgumentf("invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the complete quest-dash configuration
type Config struct {
	Log     LogConfig     `toml:"log" envPrefix:"LOG_"`
	API     APIConfig     `toml:"api" envPrefix:"API_"`
	Session SessionConfig `toml:"session" envPrefix:"SESSION_"`
	Display DisplayConfig `toml:"display" envPrefix:"DISPLAY_"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
	// File receives the logs instead of stderr; the dashboards own the terminal
	File string `toml:"file" env:"FILE"`
}

// APIConfig points at the Quest API
type APIConfig struct {
	URL     string   `toml:"url" env:"URL"`
	Timeout Duration `toml:"timeout" env:"TIMEOUT"`
}

// SessionConfig controls where login sessions are kept
type SessionConfig struct {
	Store         string   `toml:"store" env:"STORE"`
	RedisAddr     string   `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string   `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int      `toml:"redis_db" env:"REDIS_DB"`
	TTL           Duration `toml:"ttl" env:"TTL"`
	Profile       string   `toml:"profile" env:"PROFILE"`
}

// DisplayConfig controls the terminal UI
type DisplayConfig struct {
	Style string `toml:"style" env:"STYLE"`
	Theme string `toml:"theme" env:"THEME"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		API: APIConfig{
			URL:     "http://localhost:8000",
			Timeout: Duration{30 * time.Second},
		},
		Session: SessionConfig{
			Store:     StoreRedis,
			RedisAddr: "localhost:6379",
			TTL:       Duration{60 * time.Minute},
			Profile:   "default",
		},
		Display: DisplayConfig{
			Style: "emoji",
			Theme: "catppuccin",
		},
	}
}

// Validate checks the merged configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)
	errors.ValidateRequired("api.url", c.API.URL, vb)
	if c.API.Timeout.Duration <= 0 {
		vb.InvalidField("api.timeout", "must be positive")
	}
	errors.ValidateEnum("session.store", c.Session.Store, []string{StoreRedis, StoreMemory}, vb)
	if c.Session.Store == StoreRedis {
		errors.ValidateRequired("session.redis_addr", c.Session.RedisAddr, vb)
	}
	if c.Session.TTL.Duration <= 0 {
		vb.InvalidField("session.ttl", "must be positive")
	}
	errors.ValidateRequired("session.profile", c.Session.Profile, vb)
	errors.ValidateEnum("display.style", c.Display.Style, []string{"emoji", "plain"}, vb)

	return vb.Build()
}

// SlogLevel maps the configured level name
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON logger writing to w
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Output opens the log destination. The returned func closes it.
func (c LogConfig) Output() (io.Writer, func() error, error) {
	if c.File == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open log file").
			WithMeta("path", c.File)
	}
	return f, f.Close, nil
}

// LoadInput selects the sources merged by Load
type LoadInput struct {
	// Path is an optional TOML file. A missing file is an error only when
	// Required is set.
	Path     string
	Required bool
	// Environ replaces the process environment when not nil
	Environ map[string]string
	// Flags are applied last, only for flags the user set
	Flags FlagSet
}

// Load merges defaults, file, environment and flags, then validates
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	cfg := Default()

	if input.Path != "" {
		if err := loadFile(input.Path, input.Required, cfg); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if input.Environ != nil {
		opts.Environment = input.Environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if input.Flags != nil {
		if err := applyFlags(input.Flags, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadFromFlags reads the --config path from fs and merges every source.
// An explicitly passed config file must exist.
func LoadFromFlags(fs *pflag.FlagSet) (*Config, error) {
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		path = ""
	}
	return Load(&LoadInput{
		Path:     path,
		Required: fs.Changed(FlagConfig),
		Flags:    fs,
	})
}

func loadFile(path string, required bool, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			slog.Debug("Config file not found, using defaults", "path", path)
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeNotFound, "failed to open config")
	}
	defer func() {
		_ = file.Close() // nolint:errcheck // read-only
	}()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config").
			WithMeta("path", path)
	}
	return nil
}
