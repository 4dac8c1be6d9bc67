package ansi

import (
	"sort"
	"strconv"
	"strings"
)

func rgb(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

func c256(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

// PaletteDefault uses the 16 basic colours so it renders on any terminal.
var PaletteDefault = Palette{
	Plain:      Gray,
	Keyword:    BrightBlue,
	Identifier: Gray,
	Operator:   BrightBlue,
	Method:     Cyan,
	String:     Yellow,
	Punct:      Gray,
	Comment:    Faint,
	Prompt:     Green,
	Cursor:     Bold,
	Label:      Faint,
	Close:      Red,
	Min:        Yellow,
	Zoom:       Green,
}

// PaletteTailwind reproduces the hero colours of the zaplog landing page.
var PaletteTailwind = Palette{
	Plain:      rgb(255, 255, 255),
	Keyword:    rgb(129, 140, 248),
	Identifier: rgb(255, 255, 255),
	Operator:   rgb(129, 140, 248),
	Method:     rgb(165, 180, 252),
	String:     rgb(253, 186, 116),
	Punct:      rgb(255, 255, 255),
	Comment:    rgb(148, 163, 184),
	Prompt:     rgb(74, 222, 128),
	Cursor:     rgb(203, 213, 225),
	Label:      rgb(148, 163, 184),
	Close:      rgb(248, 113, 113),
	Min:        rgb(250, 204, 21),
	Zoom:       rgb(74, 222, 128),
}

var PaletteDracula = Palette{
	Plain:      rgb(248, 248, 242),
	Keyword:    rgb(255, 121, 198),
	Identifier: rgb(248, 248, 242),
	Operator:   rgb(255, 121, 198),
	Method:     rgb(80, 250, 123),
	String:     rgb(241, 250, 140),
	Punct:      rgb(248, 248, 242),
	Comment:    rgb(98, 114, 164),
	Prompt:     rgb(80, 250, 123),
	Cursor:     rgb(248, 248, 242),
	Label:      rgb(98, 114, 164),
	Close:      rgb(255, 85, 85),
	Min:        rgb(241, 250, 140),
	Zoom:       rgb(80, 250, 123),
}

var PaletteNord = Palette{
	Plain:      rgb(216, 222, 233),
	Keyword:    rgb(129, 161, 193),
	Identifier: rgb(216, 222, 233),
	Operator:   rgb(129, 161, 193),
	Method:     rgb(136, 192, 208),
	String:     rgb(163, 190, 140),
	Punct:      rgb(236, 239, 244),
	Comment:    rgb(97, 110, 136),
	Prompt:     rgb(163, 190, 140),
	Cursor:     rgb(236, 239, 244),
	Label:      rgb(97, 110, 136),
	Close:      rgb(191, 97, 106),
	Min:        rgb(235, 203, 139),
	Zoom:       rgb(163, 190, 140),
}

var PaletteGruvbox = Palette{
	Plain:      c256(223),
	Keyword:    c256(167),
	Identifier: c256(223),
	Operator:   c256(208),
	Method:     c256(142),
	String:     c256(214),
	Punct:      c256(223),
	Comment:    c256(245),
	Prompt:     c256(142),
	Cursor:     c256(223),
	Label:      c256(245),
	Close:      c256(167),
	Min:        c256(214),
	Zoom:       c256(142),
}

var PaletteTokyoNight = Palette{
	Plain:      rgb(192, 202, 245),
	Keyword:    rgb(187, 154, 247),
	Identifier: rgb(192, 202, 245),
	Operator:   rgb(137, 221, 255),
	Method:     rgb(122, 162, 247),
	String:     rgb(158, 206, 106),
	Punct:      rgb(169, 177, 214),
	Comment:    rgb(86, 95, 137),
	Prompt:     rgb(158, 206, 106),
	Cursor:     rgb(192, 202, 245),
	Label:      rgb(86, 95, 137),
	Close:      rgb(247, 118, 142),
	Min:        rgb(224, 175, 104),
	Zoom:       rgb(158, 206, 106),
}

var PaletteSolarizedDark = Palette{
	Plain:      c256(246),
	Keyword:    c256(64),
	Identifier: c256(246),
	Operator:   c256(64),
	Method:     c256(33),
	String:     c256(37),
	Punct:      c256(246),
	Comment:    c256(240),
	Prompt:     c256(64),
	Cursor:     c256(254),
	Label:      c256(240),
	Close:      c256(160),
	Min:        c256(136),
	Zoom:       c256(64),
}

var PaletteMonokai = Palette{
	Plain:      rgb(248, 248, 242),
	Keyword:    rgb(249, 38, 114),
	Identifier: rgb(248, 248, 242),
	Operator:   rgb(249, 38, 114),
	Method:     rgb(166, 226, 46),
	String:     rgb(230, 219, 116),
	Punct:      rgb(248, 248, 242),
	Comment:    rgb(117, 113, 94),
	Prompt:     rgb(166, 226, 46),
	Cursor:     rgb(248, 248, 240),
	Label:      rgb(117, 113, 94),
	Close:      rgb(249, 38, 114),
	Min:        rgb(253, 151, 31),
	Zoom:       rgb(166, 226, 46),
}

var PaletteSynthwave84 = Palette{
	Plain:      rgb(255, 255, 255),
	Keyword:    rgb(254, 222, 93),
	Identifier: rgb(255, 126, 219),
	Operator:   rgb(254, 222, 93),
	Method:     rgb(54, 249, 246),
	String:     rgb(255, 139, 57),
	Punct:      rgb(255, 255, 255),
	Comment:    rgb(132, 139, 189),
	Prompt:     rgb(114, 241, 184),
	Cursor:     rgb(255, 255, 255),
	Label:      rgb(132, 139, 189),
	Close:      rgb(254, 68, 80),
	Min:        rgb(254, 222, 93),
	Zoom:       rgb(114, 241, 184),
}

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"tailwind":       &PaletteTailwind,
	"dracula":        &PaletteDracula,
	"nord":           &PaletteNord,
	"gruvbox":        &PaletteGruvbox,
	"tokyo-night":    &PaletteTokyoNight,
	"solarized-dark": &PaletteSolarizedDark,
	"monokai":        &PaletteMonokai,
	"synthwave-84":   &PaletteSynthwave84,
}

var paletteAliases = map[string]string{
	"zaplog":        "tailwind",
	"landing":       "tailwind",
	"tokyonight":    "tokyo-night",
	"solarizeddark": "solarized-dark",
	"solarized":     "solarized-dark",
	"synthwave84":   "synthwave-84",
	"doom-dracula":  "dracula",
	"doomdracula":   "dracula",
	"doom-nord":     "nord",
	"doomnord":      "nord",
	"doom-gruvbox":  "gruvbox",
	"doomgruvbox":   "gruvbox",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown
// names resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	palette, _ := LookupPalette(name)
	return palette
}

// LookupPalette is PaletteByName but also reports whether name was known.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault, true
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette, true
	}
	return &PaletteDefault, false
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
