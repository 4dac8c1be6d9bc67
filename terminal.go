package typewriter

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal
// or its size is unknown.
func terminalWidth(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// useColor resolves the colour policy for w: NoColor wins over ForceColor,
// otherwise colour follows terminal detection.
func useColor(w io.Writer, opts Options) bool {
	switch {
	case opts.NoColor:
		return false
	case opts.ForceColor:
		return true
	default:
		return isTerminal(w)
	}
}
