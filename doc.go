// Package typewriter types a fixed script of code lines onto a terminal one
// rune at a time, colouring each partially typed line as it grows.
//
// # Design overview
//
//   - Script: an immutable list of lines. Each line carries column rules
//     (TokenRule) and an optional terminator matched by suffix. Compose
//     derives the rule offsets from the text segments, so rules and text can
//     not drift apart.
//   - Tokenize: a pure function from a line and a revealed rune count to
//     styled spans. Joining the spans always reproduces the revealed prefix;
//     uncovered or inconsistent columns fall back to plain text.
//   - Typist: owns one run at a time on a single goroutine. The run waits the
//     initial delay, reveals one rune per tick, pauses between lines and ends
//     in PhaseDone. Cancel tears the run down and returns only once nothing
//     can touch the state any more.
//   - Gate and Activate: a one-shot trigger (mount or first visibility) that
//     starts the typist exactly once and cancels it when its context ends.
//   - Frame and Screen: render snapshots with an ansi.Palette, redrawing in
//     place on a terminal.
//
// # Usage
//
//	screen := typewriter.NewScreen(os.Stdout, typewriter.HeroScript(), opts)
//	t := typewriter.New(typewriter.WithOptions(opts), typewriter.WithObserver(screen.Observe))
//	if err := typewriter.Activate(ctx, typewriter.MountGate(), t, typewriter.HeroScript()); err != nil {
//		return err
//	}
//	screen.Close()
//
// Options can be read from TYPEWRITER_* environment variables with
// OptionsFromEnv. The cmd/typewriter command wraps all of the above.
package typewriter
