package ui

// glyphs maps icon names to terminal glyphs. Unknown names render as a bullet.
var glyphs = map[string]string{
	"bars":        "☰",
	"gears":       "⚙",
	"cogs":        "⚙",
	"home":        "⌂",
	"user":        "☺",
	"folder":      "▤",
	"file":        "▯",
	"search":      "⌕",
	"star":        "★",
	"bell":        "!",
	"chart":       "▥",
	"question":    "?",
	"angle-left":  "«",
	"angle-right": "»",
}

// Glyph returns the terminal glyph for an icon name, "" when name is empty.
func Glyph(name string) string {
	if name == "" {
		return ""
	}
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "•"
}
