package typewriter

import (
	"time"

	"go.uber.org/zap"

	"pkt.systems/typewriter/ansi"
)

const (
	DefaultInitialDelay = 500 * time.Millisecond
	DefaultTickInterval = 50 * time.Millisecond
	DefaultLinePause    = 400 * time.Millisecond
	DefaultBlink        = 530 * time.Millisecond
	DefaultCursor       = "|"
)

// Options configures a Typist and the frames rendered from it. Zero values
// select the defaults above.
type Options struct {
	// InitialDelay is the wait between Start and the first revealed rune.
	InitialDelay time.Duration
	// TickInterval is the wait before each revealed rune.
	TickInterval time.Duration
	// LinePause is the wait between a completed line and the next one.
	LinePause time.Duration

	// NoColor disables ANSI colours even on a terminal.
	NoColor bool
	// ForceColor enables ANSI colours even when the output is not a terminal.
	ForceColor bool
	// Palette selects the span colours. When nil, ansi.PaletteDefault is used.
	Palette *ansi.Palette
	// Cursor is drawn after the active line.
	Cursor string
	// Blink toggles the cursor at this interval. Negative disables blinking.
	Blink time.Duration
}

// WithDefaults returns o with every zero field replaced by its default.
func (o Options) WithDefaults() Options {
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.LinePause <= 0 {
		o.LinePause = DefaultLinePause
	}
	if o.Palette == nil {
		o.Palette = &ansi.PaletteDefault
	}
	if o.Cursor == "" {
		o.Cursor = DefaultCursor
	}
	if o.Blink == 0 {
		o.Blink = DefaultBlink
	}
	return o
}

// Option customizes a Typist.
type Option func(*Typist)

// WithOptions replaces the timing options of the Typist.
func WithOptions(opts Options) Option {
	return func(t *Typist) {
		t.opts = opts.WithDefaults()
	}
}

// WithInitialDelay overrides the wait before the first rune.
func WithInitialDelay(d time.Duration) Option {
	return func(t *Typist) {
		if d > 0 {
			t.opts.InitialDelay = d
		}
	}
}

// WithTickInterval overrides the per-rune interval.
func WithTickInterval(d time.Duration) Option {
	return func(t *Typist) {
		if d > 0 {
			t.opts.TickInterval = d
		}
	}
}

// WithLinePause overrides the pause between lines.
func WithLinePause(d time.Duration) Option {
	return func(t *Typist) {
		if d > 0 {
			t.opts.LinePause = d
		}
	}
}

// WithObserver registers fn to receive every event of every run. fn runs on
// the run goroutine and must not call Cancel.
func WithObserver(fn func(Event)) Option {
	return func(t *Typist) {
		t.observer = fn
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Typist) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSleeper replaces the timer used between steps.
func WithSleeper(s Sleeper) Option {
	return func(t *Typist) {
		if s != nil {
			t.sleeper = s
		}
	}
}
