// Package ansi provides the ANSI escape sequences and palettes used to colour
// typed code. A Palette maps each span style of the typewriter to an escape
// sequence; the built-in palettes are listed by AvailablePaletteNames and
// resolved with PaletteByName.
package ansi

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Cursor and line control sequences used when redrawing a frame in place.
const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	ClearLine  = "\x1b[2K"
)

// Up returns the sequence moving the cursor to the start of the line n rows
// above. n <= 0 yields an empty string.
func Up(n int) string {
	if n <= 0 {
		return ""
	}
	return "\x1b[" + strconv.Itoa(n) + "F"
}

// Palette maps span styles and frame decorations to escape sequences. Empty
// fields fall back to the terminal's default colour.
type Palette struct {
	Plain      string
	Keyword    string
	Identifier string
	Operator   string
	Method     string
	String     string
	Punct      string
	Comment    string

	Prompt string
	Cursor string
	Label  string
	Close  string
	Min    string
	Zoom   string
}

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if next, ok := skip(s, i); ok {
			i = next
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Width returns the number of runes in s not counting escape sequences.
func Width(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if next, ok := skip(s, i); ok {
			i = next
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		width++
		i += size
	}
	return width
}

// Truncate cuts s to at most max visible runes, keeping every escape
// sequence so colours are still reset afterwards.
func Truncate(s string, max int) string {
	if Width(s) <= max {
		return s
	}
	var b strings.Builder
	width := 0
	for i := 0; i < len(s); {
		if next, ok := skip(s, i); ok {
			b.WriteString(s[i:next])
			i = next
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if width >= max {
			continue
		}
		b.WriteRune(r)
		width++
	}
	return b.String()
}

// skip reports the end of a CSI sequence starting at i.
func skip(s string, i int) (int, bool) {
	if s[i] != '\x1b' || i+1 >= len(s) || s[i+1] != '[' {
		return i, false
	}
	for j := i + 2; j < len(s); j++ {
		if c := s[j]; c >= 0x40 && c <= 0x7e {
			return j + 1, true
		}
	}
	return i, false
}
