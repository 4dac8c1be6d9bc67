package typewriter

import (
	"testing"
	"time"

	"pkt.systems/typewriter/ansi"
)

func TestLookupEnvPrefix(t *testing.T) {
	t.Setenv("TW_INT_TICK", "10ms")

	if _, ok := lookupEnv("TW_INT_", "TICK"); !ok {
		t.Fatalf("expected lookupEnv with prefix to find value")
	}
	if _, ok := lookupEnv("", "TW_INT_TICK"); !ok {
		t.Fatalf("expected lookupEnv with empty prefix to find value")
	}
}

func TestParseEnvBool(t *testing.T) {
	cases := []struct {
		value string
		want  bool
		ok    bool
	}{
		{"true", true, true},
		{"1", true, true},
		{"false", false, true},
		{"0", false, true},
		{" nope ", false, false},
	}
	for _, tc := range cases {
		got, ok := parseEnvBool(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseEnvBool(%q)=%v,%v want %v,%v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseEnvDuration(t *testing.T) {
	cases := []struct {
		value string
		want  time.Duration
		ok    bool
	}{
		{"250ms", 250 * time.Millisecond, true},
		{" 1s ", time.Second, true},
		{"40", 40 * time.Millisecond, true},
		{"0", 0, true},
		{"", 0, false},
		{"soon", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseEnvDuration(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseEnvDuration(%q)=%v,%v want %v,%v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("TYPEWRITER_INITIAL_DELAY", "1s")
	t.Setenv("TYPEWRITER_TICK", "20")
	t.Setenv("TYPEWRITER_PAUSE", "bogus")
	t.Setenv("TYPEWRITER_BLINK", "0")
	t.Setenv("TYPEWRITER_NO_COLOR", "true")
	t.Setenv("TYPEWRITER_PALETTE", "Tokyo Night")
	t.Setenv("TYPEWRITER_CURSOR", "▌")

	seed := Options{LinePause: time.Minute, ForceColor: true}
	opts := OptionsFromEnv(WithEnvOptions(seed))

	if opts.InitialDelay != time.Second {
		t.Fatalf("expected initial delay 1s, got %s", opts.InitialDelay)
	}
	if opts.TickInterval != 20*time.Millisecond {
		t.Fatalf("expected bare number as milliseconds, got %s", opts.TickInterval)
	}
	if opts.LinePause != time.Minute {
		t.Fatalf("expected invalid pause to keep seeded value, got %s", opts.LinePause)
	}
	if opts.Blink >= 0 {
		t.Fatalf("expected BLINK=0 to disable blinking, got %s", opts.Blink)
	}
	if !opts.NoColor || !opts.ForceColor {
		t.Fatalf("expected NoColor from env and ForceColor from seed, got %+v", opts)
	}
	if opts.Palette != &ansi.PaletteTokyoNight {
		t.Fatalf("expected tokyo-night palette")
	}
	if opts.Cursor != "▌" {
		t.Fatalf("expected cursor override, got %q", opts.Cursor)
	}
}

func TestOptionsFromEnvPrefixAndUnknownPalette(t *testing.T) {
	t.Setenv("HERO_TICK", "5ms")
	t.Setenv("HERO_PALETTE", "no-such-palette")
	t.Setenv("TYPEWRITER_TICK", "99ms")

	opts := OptionsFromEnv(WithEnvPrefix("HERO_"))
	if opts.TickInterval != 5*time.Millisecond {
		t.Fatalf("expected prefixed tick, got %s", opts.TickInterval)
	}
	if opts.Palette != nil {
		t.Fatalf("expected unknown palette to be ignored")
	}
	if got := opts.WithDefaults(); got.Palette != &ansi.PaletteDefault || got.LinePause != DefaultLinePause {
		t.Fatalf("expected defaults to fill the gaps, got %+v", got)
	}
}
