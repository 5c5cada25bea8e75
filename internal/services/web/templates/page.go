package templates

import (
	"strings"

	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

// PageContext carries the per-request state every shell component reads.
type PageContext struct {
	Lang         string
	Loc          Localizer
	AppName      string
	CurrentPath  string
	CurrentQuery string
	AssetBase    string
	Nav          navigation.Menu
	Menu         menu.State
	Theme        theme.Theme
}

// AssetURL resolves a static asset name against the configured base.
func (p PageContext) AssetURL(name string) string {
	base := strings.TrimRight(strings.TrimSpace(p.AssetBase), "/")
	if base == "" {
		base = strings.TrimRight(routepath.StaticPrefix, "/")
	}
	return base + "/" + strings.TrimLeft(name, "/")
}

// ReturnPath is the path non-HTMX forms return to.
func (p PageContext) ReturnPath() string {
	if strings.TrimSpace(p.CurrentPath) == "" {
		return routepath.Root
	}
	return p.CurrentPath
}
