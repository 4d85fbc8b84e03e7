package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"diagnostics": zerolog.TraceLevel,
		" DEBUG ":     zerolog.DebugLevel,
		"info":        zerolog.InfoLevel,
		"warning":     zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"off":         zerolog.Disabled,
		"inactive":    zerolog.Disabled,
	}
	for raw, want := range cases {
		got, err := parseLevel(raw)
		if err != nil || got != want {
			t.Fatalf("parseLevel(%q) = %v err=%v, want %v", raw, got, err, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Fatalf("expected unknown level rejected")
	}
	if _, err := parseLevel(""); err == nil {
		t.Fatalf("expected empty level rejected")
	}
}

func TestResolveDefaults(t *testing.T) {
	runtimeCfg := Resolve(ProfileRuntime, envMap(nil))
	if runtimeCfg.Level != zerolog.InfoLevel || !runtimeCfg.Timestamp {
		t.Fatalf("unexpected runtime defaults: %+v", runtimeCfg)
	}
	testCfg := Resolve(ProfileTest, envMap(nil))
	if testCfg.Level != zerolog.DebugLevel || testCfg.Timestamp || !testCfg.NoColor {
		t.Fatalf("unexpected test defaults: %+v", testCfg)
	}
}

func TestResolveEnvOverrides(t *testing.T) {
	cfg := Resolve(ProfileRuntime, envMap(map[string]string{
		EnvLogLevel:     "error",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   " true ",
		EnvLogBypass:    "nope",
	}))
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected no color")
	}
	if cfg.Bypass {
		t.Fatalf("expected invalid bypass ignored")
	}

	cfg = Resolve(ProfileTest, envMap(map[string]string{EnvLogLevel: "loud"}))
	if cfg.Level != zerolog.DebugLevel {
		t.Fatalf("expected invalid level ignored, got %v", cfg.Level)
	}
}

func TestNewBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Bypass: true, Out: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Uint64("block", 3).Msg("block_executed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, `"block":3`) || !strings.Contains(out, `"app":"palletctl"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}
