package typewriter

import "strings"

// Span is a run of revealed text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Tokenize splits the first revealed runes of line into styled spans.
//
// The concatenation of the returned spans is always exactly the revealed
// prefix: revealed is clamped to [0, line.Len()], text not covered by any rule
// is emitted as StylePlain, and rules that overlap or run backwards only
// contribute the part not already emitted. A rule cut by the reveal point
// still yields a span in its own style, so a half typed string literal keeps
// the string colour.
func Tokenize(line Line, revealed int) []Span {
	runes := []rune(line.Text)
	revealed = min(max(revealed, 0), len(runes))
	if revealed == 0 {
		return nil
	}

	limit := revealed
	var term []rune
	if line.Terminator != "" {
		t := []rune(line.Terminator)
		if len(t) <= revealed && string(runes[revealed-len(t):revealed]) == line.Terminator {
			limit -= len(t)
			term = t
		}
	}

	spans := make([]Span, 0, len(line.Rules)+2)
	pos := 0
	for _, rule := range line.Rules {
		start, end := rule.Start, rule.End
		if rule.Unbounded() {
			end = limit
		}
		start = max(start, pos)
		end = min(end, limit)
		if start >= end {
			continue
		}
		if start > pos {
			spans = append(spans, Span{Text: string(runes[pos:start]), Style: StylePlain})
		}
		spans = append(spans, Span{Text: string(runes[start:end]), Style: rule.Style})
		pos = end
	}
	if pos < limit {
		spans = append(spans, Span{Text: string(runes[pos:limit]), Style: StylePlain})
	}
	if term != nil {
		spans = append(spans, Span{Text: string(term), Style: line.TerminatorStyle})
	}
	return spans
}

// Join concatenates the text of spans.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
