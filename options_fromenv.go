package typewriter

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pkt.systems/typewriter/ansi"
)

// EnvOption customizes OptionsFromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix  string
	options Options
}

// WithEnvPrefix overrides the environment variable prefix used by OptionsFromEnv.
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds OptionsFromEnv with explicit Options values.
func WithEnvOptions(opts Options) EnvOption {
	return func(cfg *envConfig) {
		cfg.options = opts
	}
}

// OptionsFromEnv builds Options from environment variables on top of the
// seeded options. Environment values override seeded ones; values that do not
// parse are ignored.
//
// Recognised variables are: {prefix}INITIAL_DELAY, TICK, PAUSE, BLINK
// (durations such as 250ms, or bare milliseconds; BLINK=0 disables
// blinking), NO_COLOR, FORCE_COLOR, PALETTE and CURSOR. The default prefix is
// TYPEWRITER_.
func OptionsFromEnv(opts ...EnvOption) Options {
	cfg := envConfig{prefix: "TYPEWRITER_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "INITIAL_DELAY"); ok {
		if d, ok := parseEnvDuration(value); ok && d > 0 {
			resolved.InitialDelay = d
		}
	}
	if value, ok := lookupEnv(prefix, "TICK"); ok {
		if d, ok := parseEnvDuration(value); ok && d > 0 {
			resolved.TickInterval = d
		}
	}
	if value, ok := lookupEnv(prefix, "PAUSE"); ok {
		if d, ok := parseEnvDuration(value); ok && d > 0 {
			resolved.LinePause = d
		}
	}
	if value, ok := lookupEnv(prefix, "BLINK"); ok {
		if d, ok := parseEnvDuration(value); ok {
			if d <= 0 {
				d = -1
			}
			resolved.Blink = d
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		if palette, ok := ansi.LookupPalette(value); ok {
			resolved.Palette = palette
		}
	}
	if value, ok := lookupEnv(prefix, "CURSOR"); ok {
		if value != "" {
			resolved.Cursor = value
		}
	}
	return resolved
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func parseEnvDuration(value string) (time.Duration, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	if ms, err := strconv.Atoi(trimmed); err == nil {
		return time.Duration(ms) * time.Millisecond, true
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, false
	}
	return d, true
}
