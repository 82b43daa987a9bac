package ui

import "github.com/charmbracelet/bubbles/spinner"

// glyphSet holds the symbols used for dots, arrows and icons. The ASCII set
// is for terminals whose fonts lack the Unicode symbols.
type glyphSet struct {
	Dot       string
	EmptyDot  string
	ArrowDown string
	Check     string
	Pending   string
	Chevron   string
	Close     string
	Bullet    string
	Shade     string
	Spinner   spinner.Spinner
	Icons     map[string]string
	Fallback  string
}

var unicodeGlyphs = glyphSet{
	Dot:       "●",
	EmptyDot:  "○",
	ArrowDown: "↓",
	Check:     "✓",
	Pending:   "○",
	Chevron:   "›",
	Close:     "✕",
	Bullet:    "•",
	Shade:     "░",
	Spinner:   spinner.Dot,
	Icons: map[string]string{
		"Cpu":        "▣",
		"RefreshCcw": "↻",
		"Network":    "⋔",
		"GitBranch":  "⑂",
		"Zap":        "ϟ",
		"Database":   "◫",
	},
	Fallback: "◆",
}

var asciiGlyphs = glyphSet{
	Dot:       "*",
	EmptyDot:  "o",
	ArrowDown: "v",
	Check:     "+",
	Pending:   "o",
	Chevron:   ">",
	Close:     "x",
	Bullet:    "-",
	Shade:     ".",
	Spinner:   spinner.Line,
	Icons:     map[string]string{},
	Fallback:  "#",
}

func glyphsFor(ascii bool) glyphSet {
	if ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// icon maps a content icon name to a glyph.
func (g glyphSet) icon(name string) string {
	if s, ok := g.Icons[name]; ok {
		return s
	}
	return g.Fallback
}
