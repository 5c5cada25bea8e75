package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/platform/icons"
)

// Icon renders an inline lucide glyph.
func Icon(id icons.ID, class string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		glyph, ok := icons.LucideGlyph(id)
		if !ok {
			return
		}
		m.raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		m.attr("data-icon", icons.LucideSymbolID(id))
		if class != "" {
			m.attr("class", class)
		}
		m.raw(">")
		m.raw(glyph)
		m.raw("</svg>")
	})
}
