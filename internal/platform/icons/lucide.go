package icons

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	IDMenu:        "menu",
	IDThemeLight:  "sun",
	IDThemeDark:   "moon",
	IDDonate:      "coffee",
	IDChevronDown: "chevron-down",
	IDClose:       "x",
}

// Inner SVG markup for each glyph on Lucide's 24x24 grid.
var lucideGlyphs = map[string]string{
	"menu":         `<line x1="4" x2="20" y1="12" y2="12"></line><line x1="4" x2="20" y1="6" y2="6"></line><line x1="4" x2="20" y1="18" y2="18"></line>`,
	"sun":          `<circle cx="12" cy="12" r="4"></circle><path d="M12 2v2"></path><path d="M12 20v2"></path><path d="m4.93 4.93 1.41 1.41"></path><path d="m17.66 17.66 1.41 1.41"></path><path d="M2 12h2"></path><path d="M20 12h2"></path><path d="m6.34 17.66-1.41 1.41"></path><path d="m19.07 4.93-1.41 1.41"></path>`,
	"moon":         `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"></path>`,
	"coffee":       `<path d="M10 2v2"></path><path d="M14 2v2"></path><path d="M16 8a1 1 0 0 1 1 1v8a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V9a1 1 0 0 1 1-1h14a4 4 0 1 1 0 8h-1"></path><path d="M6 2v2"></path>`,
	"chevron-down": `<path d="m6 9 6 6 6-6"></path>`,
	"x":            `<path d="M18 6 6 18"></path><path d="m6 6 12 12"></path>`,
}

// LucideName returns the Lucide glyph name for id.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideSymbolID returns the DOM id used for id's glyph.
func LucideSymbolID(id ID) string {
	name, ok := LucideName(id)
	if !ok {
		return ""
	}
	return lucideSymbolPrefix + name
}

// LucideGlyph returns the inner SVG markup for id.
func LucideGlyph(id ID) (string, bool) {
	name, ok := LucideName(id)
	if !ok {
		return "", false
	}
	glyph, ok := lucideGlyphs[name]
	return glyph, ok
}
