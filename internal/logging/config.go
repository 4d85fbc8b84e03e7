package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "PALLETCTL_LOG_LEVEL"
	EnvLogTimestamp = "PALLETCTL_LOG_TIMESTAMP"
	EnvLogNoColor   = "PALLETCTL_LOG_NOCOLOR"
	EnvLogBypass    = "PALLETCTL_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup for one process.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	// Bypass skips console formatting and writes raw JSON lines.
	Bypass bool
	Out    io.Writer
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := Resolve(profile, os.LookupEnv)
		log.Logger = New(cfg)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// Resolve picks the profile defaults and applies any PALLETCTL_LOG_* values
// found through lookup. Unparseable values keep the default.
func Resolve(profile Profile, lookup func(string) (string, bool)) Config {
	cfg := defaultConfig(profile)
	if raw, ok := lookup(EnvLogLevel); ok {
		if lvl, err := parseLevel(raw); err == nil {
			cfg.Level = lvl
		}
	}
	overrideBool(lookup, EnvLogTimestamp, &cfg.Timestamp)
	overrideBool(lookup, EnvLogNoColor, &cfg.NoColor)
	overrideBool(lookup, EnvLogBypass, &cfg.Bypass)
	return cfg
}

// New builds a logger from cfg without touching the global logger.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Bypass {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With().Str("app", "palletctl")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

var errEmptyLevel = errors.New("logging: empty level")

var levelAliases = map[string]string{
	"diagnostics": "trace",
	"warning":     "warn",
	"disable":     "disabled",
	"off":         "disabled",
	"none":        "disabled",
	"inactive":    "disabled",
}

func parseLevel(raw string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}
	if name == "" {
		return zerolog.NoLevel, errEmptyLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

func overrideBool(lookup func(string) (string, bool), key string, dst *bool) {
	raw, ok := lookup(key)
	if !ok {
		return
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}
