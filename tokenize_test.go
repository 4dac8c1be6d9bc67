package typewriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeHeroLinePrefixes(t *testing.T) {
	hero := HeroScript()
	cases := []struct {
		name     string
		line     int
		revealed int
		want     []Span
	}{
		{
			name:     "nothing revealed",
			line:     0,
			revealed: 0,
			want:     nil,
		},
		{
			name:     "keyword cut mid word keeps style",
			line:     0,
			revealed: 3,
			want:     []Span{{"imp", StyleKeyword}},
		},
		{
			name:     "half typed string literal",
			line:     0,
			revealed: 30,
			want: []Span{
				{"import", StyleKeyword},
				{" {", StylePlain},
				{"createLogger", StyleIdentifier},
				{"} ", StylePlain},
				{"from", StyleKeyword},
				{" ", StylePlain},
				{`"za`, StyleString},
			},
		},
		{
			name:     "terminator appears only when fully typed",
			line:     0,
			revealed: 36,
			want: []Span{
				{"import", StyleKeyword},
				{" {", StylePlain},
				{"createLogger", StyleIdentifier},
				{"} ", StylePlain},
				{"from", StyleKeyword},
				{" ", StylePlain},
				{`"zaplog"`, StyleString},
				{";", StylePunct},
			},
		},
		{
			name:     "comment is coloured as it is typed",
			line:     1,
			revealed: 33,
			want: []Span{
				{"const", StyleKeyword},
				{" ", StylePlain},
				{"logger", StyleIdentifier},
				{" ", StylePlain},
				{"=", StyleOperator},
				{" ", StylePlain},
				{"createLogger", StyleMethod},
				{"();", StylePunct},
				{" ", StylePlain},
				{"//", StyleComment},
			},
		},
		{
			name:     "closing paren without semicolon stays in the literal",
			line:     2,
			revealed: 58,
			want: []Span{
				{"logger", StyleIdentifier},
				{".info", StyleMethod},
				{"(", StylePunct},
				{`"Zero config logging for Node.js and browser")`, StyleString},
			},
		},
		{
			name:     "full last line splits the terminator",
			line:     2,
			revealed: 59,
			want: []Span{
				{"logger", StyleIdentifier},
				{".info", StyleMethod},
				{"(", StylePunct},
				{`"Zero config logging for Node.js and browser"`, StyleString},
				{");", StylePunct},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tokenize(hero.Line(tc.line), tc.revealed))
		})
	}
}

func TestTokenizeRoundTripsEveryHeroPrefix(t *testing.T) {
	for i, line := range HeroScript().Lines() {
		runes := []rune(line.Text)
		for n := 0; n <= len(runes); n++ {
			spans := Tokenize(line, n)
			require.Equal(t, string(runes[:n]), Join(spans), "line %d revealed %d", i, n)
			for _, s := range spans {
				require.NotEmpty(t, s.Text, "line %d revealed %d yields an empty span", i, n)
			}
		}
	}
}

func TestTokenizeTerminatorScenario(t *testing.T) {
	line := Line{
		Text:            `x("yz");`,
		Rules:           []TokenRule{{Start: 2, End: 6, Style: StyleString}},
		Terminator:      ");",
		TerminatorStyle: StylePunct,
	}
	require.Equal(t, 8, line.Len())

	require.Equal(t, []Span{{`x(`, StylePlain}, {`"yz`, StyleString}}, Tokenize(line, 5))
	require.Equal(t, []Span{{`x(`, StylePlain}, {`"yz"`, StyleString}, {`)`, StylePlain}}, Tokenize(line, 7))
	require.Equal(t, []Span{{`x(`, StylePlain}, {`"yz"`, StyleString}, {`);`, StylePunct}}, Tokenize(line, 8))
}

func TestTokenizeClampsRevealed(t *testing.T) {
	line := Compose(Seg(StyleKeyword, "go"), Seg(StylePlain, " "), Tail(StyleString, "fmt"))

	require.Nil(t, Tokenize(line, -4))
	require.Equal(t, Tokenize(line, line.Len()), Tokenize(line, line.Len()+100))
	require.Equal(t, "go fmt", Join(Tokenize(line, 1<<30)))
}

func TestTokenizeDegradesOnBrokenRules(t *testing.T) {
	cases := []struct {
		name  string
		rules []TokenRule
	}{
		{"overlapping", []TokenRule{{0, 4, StyleKeyword}, {2, 6, StyleString}}},
		{"reversed", []TokenRule{{4, 6, StyleKeyword}, {0, 2, StyleString}}},
		{"out of range", []TokenRule{{-3, 2, StyleKeyword}, {5, 99, StyleString}}},
		{"empty", []TokenRule{{3, 3, StyleKeyword}, {5, 1, StyleString}}},
		{"unbounded first", []TokenRule{{1, ToEnd, StyleComment}, {2, 3, StyleKeyword}}},
		{"none", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := Line{Text: "abcdefgh", Rules: tc.rules, Terminator: "zz"}
			for n := 0; n <= 10; n++ {
				require.Equal(t, line.Text[:min(n, len(line.Text))], Join(Tokenize(line, n)))
			}
		})
	}
}

func TestTokenizeCountsRunes(t *testing.T) {
	line := Compose(Seg(StyleKeyword, "säg"), Seg(StylePlain, " "), Tail(StyleString, `"hej då"`), Term(StylePunct, "…"))

	require.Equal(t, []Span{{"sä", StyleKeyword}}, Tokenize(line, 2))
	spans := Tokenize(line, line.Len())
	require.Equal(t, Span{"…", StylePunct}, spans[len(spans)-1])
	require.True(t, strings.HasSuffix(Join(spans), `då"…`))
}

func FuzzTokenize(f *testing.F) {
	f.Add("import {createLogger}", 7, 2, 9, ";")
	f.Add(`x("y");`, 5, 2, 6, ");")
	f.Add("", 0, 0, 0, "")
	f.Add("ünïcode", 3, 1, -1, "e")

	f.Fuzz(func(t *testing.T, text string, revealed, start, end int, term string) {
		line := Line{
			Text:       text,
			Rules:      []TokenRule{{Start: start, End: end, Style: StyleString}, {Start: end, End: ToEnd, Style: StyleComment}},
			Terminator: term,
		}
		runes := []rune(text)
		n := min(max(revealed, 0), len(runes))
		if got, want := Join(Tokenize(line, revealed)), string(runes[:n]); got != want {
			t.Fatalf("Tokenize(%q, %d) joined to %q, want %q", text, revealed, got, want)
		}
	})
}
