package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pkt.systems/typewriter"
	"pkt.systems/typewriter/ansi"
)

type playFlags struct {
	initialDelay time.Duration
	tick         time.Duration
	pause        time.Duration
	blink        time.Duration
	hold         time.Duration
	noColor      bool
	forceColor   bool
	palette      string
	cursor       string
}

func newPlayCmd(a *app) *cobra.Command {
	env := typewriter.OptionsFromEnv().WithDefaults()
	f := playFlags{
		initialDelay: env.InitialDelay,
		tick:         env.TickInterval,
		pause:        env.LinePause,
		blink:        max(env.Blink, 0),
		noColor:      env.NoColor,
		forceColor:   env.ForceColor,
		cursor:       env.Cursor,
	}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the typing animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(env)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return play(ctx, cmd.OutOrStdout(), opts, f.hold, a.logger)
		},
	}
	fl := cmd.Flags()
	fl.DurationVar(&f.initialDelay, "initial-delay", f.initialDelay, "wait before the first character")
	fl.DurationVar(&f.tick, "tick", f.tick, "wait before each character")
	fl.DurationVar(&f.pause, "pause", f.pause, "pause between lines")
	fl.DurationVar(&f.blink, "blink", f.blink, "cursor blink interval (0 disables)")
	fl.DurationVar(&f.hold, "hold", 0, "keep the finished frame on screen this long")
	fl.BoolVar(&f.noColor, "no-color", f.noColor, "disable colours")
	fl.BoolVar(&f.forceColor, "force-color", f.forceColor, "emit colours even when not on a terminal")
	fl.StringVar(&f.palette, "palette", "", "colour palette ("+strings.Join(ansi.AvailablePaletteNames(), "|")+")")
	fl.StringVar(&f.cursor, "cursor", f.cursor, "cursor glyph")
	return cmd
}

func (f playFlags) options(env typewriter.Options) (typewriter.Options, error) {
	opts := env
	opts.InitialDelay = f.initialDelay
	opts.TickInterval = f.tick
	opts.LinePause = f.pause
	opts.Blink = f.blink
	if opts.Blink <= 0 {
		opts.Blink = -1
	}
	opts.NoColor = f.noColor
	opts.ForceColor = f.forceColor
	opts.Cursor = f.cursor
	if f.palette != "" {
		palette, ok := ansi.LookupPalette(f.palette)
		if !ok {
			return opts, fmt.Errorf("unknown palette %q (available: %s)", f.palette, strings.Join(ansi.AvailablePaletteNames(), ", "))
		}
		opts.Palette = palette
	}
	return opts.WithDefaults(), nil
}

// play types the hero script onto out until it finishes or ctx ends. An
// interrupted run is not an error.
func play(ctx context.Context, out io.Writer, opts typewriter.Options, hold time.Duration, logger *zap.Logger) error {
	script := typewriter.HeroScript()
	if err := script.Validate(); err != nil {
		return err
	}
	screen := typewriter.NewScreen(out, script, opts)
	typist := typewriter.New(
		typewriter.WithOptions(opts),
		typewriter.WithObserver(screen.Observe),
		typewriter.WithLogger(logger),
	)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, finish := context.WithCancel(gctx)
	defer finish()
	g.Go(func() error {
		defer finish()
		if err := typewriter.Activate(runCtx, typewriter.MountGate(), typist, script); err != nil {
			return ignoreCanceled(err)
		}
		if hold <= 0 {
			return nil
		}
		timer := time.NewTimer(hold)
		defer timer.Stop()
		select {
		case <-runCtx.Done():
		case <-timer.C:
		}
		return nil
	})
	if opts.Blink > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(opts.Blink)
			defer ticker.Stop()
			for {
				select {
				case <-runCtx.Done():
					return nil
				case <-ticker.C:
					if err := screen.Blink(); err != nil {
						return fmt.Errorf("draw frame: %w", err)
					}
				}
			}
		})
	}

	err := g.Wait()
	if cerr := screen.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("draw frame: %w", cerr)
	}
	if st := typist.Snapshot(); st.Phase != typewriter.PhaseDone {
		logger.Debug("play.interrupted")
	}
	return err
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
