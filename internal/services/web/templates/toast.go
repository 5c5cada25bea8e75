package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Toast is one transient notice.
type Toast struct {
	Kind  string
	Title string
	Body  string
}

// ToastItem renders a single toast. HTMX appends it to the toast region.
func ToastItem(toast Toast) templ.Component {
	return component(func(_ context.Context, m *markup) {
		kind := toast.Kind
		if kind == "" {
			kind = "info"
		}
		m.raw(`<div class="toast" role="status" data-toast`)
		m.attr("data-kind", kind)
		m.raw(`><div class="toast-title">`)
		m.text(toast.Title)
		m.raw("</div>")
		if toast.Body != "" {
			m.raw(`<div class="toast-body">`)
			m.text(toast.Body)
			m.raw("</div>")
		}
		m.raw("</div>")
	})
}

// ToastRegion renders the live region, seeded with toast when present.
func ToastRegion(toast *Toast) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<div class="toast-region" aria-live="polite"`)
		m.attr("id", ToastRegionID)
		m.raw(">")
		if toast != nil {
			m.component(ctx, ToastItem(*toast))
		}
		m.raw("</div>")
	})
}
