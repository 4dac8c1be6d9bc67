package typewriter

import (
	"io"
	"strings"

	"pkt.systems/typewriter/ansi"
)

const (
	chromeDot   = "●"
	chromeLabel = "terminal"
	prompt      = "> "
)

// Frame is one rendering of a script at a given state.
type Frame struct {
	Script  Script
	State   State
	Palette *ansi.Palette
	// Color enables escape sequences; without it the frame is plain text.
	Color bool
	// Cursor is drawn after the active line. Empty hides it, which is how
	// blinking is rendered.
	Cursor string
	// Width truncates every line to this many columns when positive.
	Width int
}

// Lines returns the window chrome followed by one prompt line per script
// line, without trailing newlines.
func (f Frame) Lines() []string {
	palette := f.Palette
	if palette == nil {
		palette = &ansi.PaletteDefault
	}
	out := make([]string, 0, f.Script.Len()+1)
	out = append(out, f.fit(f.chrome(palette)))

	var b strings.Builder
	for i := 0; i < f.Script.Len(); i++ {
		b.Reset()
		f.paint(&b, palette.Prompt, prompt)
		revealed := 0
		if i < len(f.State.Revealed) {
			revealed = f.State.Revealed[i]
		}
		for _, span := range Tokenize(f.Script.Line(i), revealed) {
			f.paint(&b, styleColor(palette, span.Style), span.Text)
		}
		if f.Cursor != "" && f.State.Active(i) {
			f.paint(&b, palette.Cursor, f.Cursor)
		}
		out = append(out, f.fit(b.String()))
	}
	return out
}

// Render writes the frame to w, one newline terminated line per entry of
// Lines.
func (f Frame) Render(w io.Writer) (int, error) {
	var b strings.Builder
	for _, line := range f.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return io.WriteString(w, b.String())
}

func (f Frame) chrome(p *ansi.Palette) string {
	var b strings.Builder
	f.paint(&b, p.Close, chromeDot)
	b.WriteByte(' ')
	f.paint(&b, p.Min, chromeDot)
	b.WriteByte(' ')
	f.paint(&b, p.Zoom, chromeDot)
	b.WriteString("  ")
	f.paint(&b, p.Label, chromeLabel)
	return b.String()
}

func (f Frame) paint(b *strings.Builder, color, text string) {
	if text == "" {
		return
	}
	if !f.Color || color == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(color)
	b.WriteString(text)
	b.WriteString(ansi.Reset)
}

func (f Frame) fit(line string) string {
	if f.Width <= 0 {
		return line
	}
	return ansi.Truncate(line, f.Width)
}

func styleColor(p *ansi.Palette, s Style) string {
	switch s {
	case StyleKeyword:
		return p.Keyword
	case StyleIdentifier:
		return p.Identifier
	case StyleOperator:
		return p.Operator
	case StyleMethod:
		return p.Method
	case StyleString:
		return p.String
	case StylePunct:
		return p.Punct
	case StyleComment:
		return p.Comment
	default:
		return p.Plain
	}
}
