package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/KirkDiggler/quest-dash/internal/errors"
)

// Flag names shared by every command
const (
	FlagConfig    = "config"
	FlagAPIURL    = "api-url"
	FlagTimeout   = "timeout"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
	FlagStore     = "store"
	FlagRedisAddr = "redis-addr"
	FlagProfile   = "profile"
	FlagStyle     = "style"
	FlagTheme     = "theme"
)

// FlagSet is the subset of *pflag.FlagSet read by Load
type FlagSet interface {
	Changed(name string) bool
	GetString(name string) (string, error)
	GetDuration(name string) (time.Duration, error)
}

var _ FlagSet = (*pflag.FlagSet)(nil)

// RegisterFlags declares the configuration flags with the built-in defaults
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()

	fs.String(FlagConfig, "quest-dash.toml", "path to a TOML config file")
	fs.String(FlagAPIURL, def.API.URL, "Quest API base URL")
	fs.Duration(FlagTimeout, def.API.Timeout.Duration, "HTTP request timeout")
	fs.String(FlagLogLevel, def.Log.Level, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, def.Log.Format, "log format (text, json)")
	fs.String(FlagLogFile, def.Log.File, "write logs to this file instead of stderr")
	fs.String(FlagStore, def.Session.Store, "session store (redis, memory)")
	fs.String(FlagRedisAddr, def.Session.RedisAddr, "Redis address for sessions")
	fs.String(FlagProfile, def.Session.Profile, "session profile name")
	fs.String(FlagStyle, def.Display.Style, "decorator style (emoji, plain)")
	fs.String(FlagTheme, def.Display.Theme, "color theme")
}

func applyFlags(fs FlagSet, cfg *Config) error {
	textFlags := map[string]*string{
		FlagAPIURL:    &cfg.API.URL,
		FlagLogLevel:  &cfg.Log.Level,
		FlagLogFormat: &cfg.Log.Format,
		FlagLogFile:   &cfg.Log.File,
		FlagStore:     &cfg.Session.Store,
		FlagRedisAddr: &cfg.Session.RedisAddr,
		FlagProfile:   &cfg.Session.Profile,
		FlagStyle:     &cfg.Display.Style,
		FlagTheme:     &cfg.Display.Theme,
	}
	for name, target := range textFlags {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read flag").WithMeta("flag", name)
		}
		*target = v
	}

	if fs.Changed(FlagTimeout) {
		v, err := fs.GetDuration(FlagTimeout)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read flag").WithMeta("flag", FlagTimeout)
		}
		cfg.API.Timeout = Duration{v}
	}
	return nil
}
