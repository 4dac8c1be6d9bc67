package typewriter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidScript is wrapped by every error returned from Script.Validate.
var ErrInvalidScript = errors.New("typewriter: invalid script")

// ToEnd marks a TokenRule that extends to the end of the revealed prefix.
const ToEnd = -1

// Style is the semantic colour class of a span. Renderers map it to an escape
// sequence through an ansi.Palette.
type Style uint8

const (
	StylePlain Style = iota
	StyleKeyword
	StyleIdentifier
	StyleOperator
	StyleMethod
	StyleString
	StylePunct
	StyleComment
)

var styleNames = [...]string{
	StylePlain:      "plain",
	StyleKeyword:    "keyword",
	StyleIdentifier: "identifier",
	StyleOperator:   "operator",
	StyleMethod:     "method",
	StyleString:     "string",
	StylePunct:      "punct",
	StyleComment:    "comment",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// TokenRule colours the rune columns [Start, End) of a line. End may be ToEnd.
type TokenRule struct {
	Start int
	End   int
	Style Style
}

// Unbounded reports whether the rule runs to the end of the revealed prefix.
func (r TokenRule) Unbounded() bool { return r.End == ToEnd }

// Line is one literal line of the script together with its colouring rules.
//
// Terminator, when set, is matched against the end of the revealed prefix
// instead of a column: its position depends on the variable length token in
// front of it.
type Line struct {
	Text            string
	Rules           []TokenRule
	Terminator      string
	TerminatorStyle Style
}

// Len returns the number of runes in the line, which is also the number of
// ticks needed to reveal it.
func (l Line) Len() int { return utf8.RuneCountInString(l.Text) }

func (l Line) clone() Line {
	out := l
	if l.Rules != nil {
		out.Rules = append([]TokenRule(nil), l.Rules...)
	}
	return out
}

// Script is an immutable ordered list of lines.
type Script struct {
	lines []Line
}

// NewScript copies lines into a new Script.
func NewScript(lines ...Line) Script {
	s := Script{lines: make([]Line, len(lines))}
	for i, l := range lines {
		s.lines[i] = l.clone()
	}
	return s
}

// Len returns the number of lines.
func (s Script) Len() int { return len(s.lines) }

// Line returns a copy of line i. It panics when i is out of range, like a
// slice index would.
func (s Script) Line(i int) Line { return s.lines[i].clone() }

// Lines returns a copy of every line.
func (s Script) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.clone()
	}
	return out
}

// Validate checks that every rule lies inside its line, that rules are
// ordered and disjoint, and that an unbounded rule only appears last.
func (s Script) Validate() error {
	for i, l := range s.lines {
		if err := validateLine(l); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidScript, i, err)
		}
	}
	return nil
}

func validateLine(l Line) error {
	n := l.Len()
	prev := 0
	for j, r := range l.Rules {
		if r.Start < prev {
			return fmt.Errorf("rule %d starts at %d, before previous end %d", j, r.Start, prev)
		}
		if r.Unbounded() {
			if j != len(l.Rules)-1 {
				return fmt.Errorf("rule %d is unbounded but not last", j)
			}
			if r.Start > n {
				return fmt.Errorf("rule %d starts at %d past line length %d", j, r.Start, n)
			}
			continue
		}
		if r.End <= r.Start {
			return fmt.Errorf("rule %d is empty [%d,%d)", j, r.Start, r.End)
		}
		if r.End > n {
			return fmt.Errorf("rule %d ends at %d past line length %d", j, r.End, n)
		}
		prev = r.End
	}
	if l.Terminator != "" && !strings.HasSuffix(l.Text, l.Terminator) {
		return fmt.Errorf("terminator %q is not a suffix of %q", l.Terminator, l.Text)
	}
	return nil
}

// Segment is one piece of a line passed to Compose.
type Segment struct {
	text  string
	style Style
	kind  segmentKind
}

type segmentKind uint8

const (
	segmentBounded segmentKind = iota
	segmentTail
	segmentTerm
)

// Seg is a fixed width segment: its rule covers exactly text.
func Seg(style Style, text string) Segment {
	return Segment{text: text, style: style}
}

// Tail is a segment whose rule is unbounded, used for a literal that is still
// being typed. Only the terminator may follow it.
func Tail(style Style, text string) Segment {
	return Segment{text: text, style: style, kind: segmentTail}
}

// Term declares the trailing closing sequence of the line.
func Term(style Style, text string) Segment {
	return Segment{text: text, style: style, kind: segmentTerm}
}

// Compose builds a Line from segments, deriving the rule offsets from the
// segment texts so that they always agree with Line.Text.
func Compose(segments ...Segment) Line {
	var (
		b    strings.Builder
		line Line
		col  int
	)
	for _, seg := range segments {
		width := utf8.RuneCountInString(seg.text)
		b.WriteString(seg.text)
		switch seg.kind {
		case segmentTail:
			line.Rules = append(line.Rules, TokenRule{Start: col, End: ToEnd, Style: seg.style})
		case segmentTerm:
			line.Terminator = seg.text
			line.TerminatorStyle = seg.style
		default:
			if width > 0 {
				line.Rules = append(line.Rules, TokenRule{Start: col, End: col + width, Style: seg.style})
			}
		}
		col += width
	}
	line.Text = b.String()
	return line
}
