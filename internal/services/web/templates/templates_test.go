package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	"github.com/louisbranch/showcase/internal/services/web/theme"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

func testPage(state menu.State, t theme.Theme) PageContext {
	return PageContext{
		Lang:        "en-US",
		Loc:         webi18n.Printer(language.AmericanEnglish),
		AppName:     "Showcase",
		CurrentPath: "/project-gallery",
		Nav:         navigation.Default(routes.DefaultTable()),
		Menu:        state,
		Theme:       t,
	}
}

func renderNode(t *testing.T, ctx context.Context, c templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func byID(root *html.Node, id string) *html.Node {
	nodes := findAll(root, func(n *html.Node) bool {
		v, _ := attr(n, "id")
		return v == id
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func byClass(root *html.Node, class string) []*html.Node {
	return findAll(root, func(n *html.Node) bool {
		v, _ := attr(n, "class")
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	})
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestDesktopNavClosedHasNoPanels(t *testing.T) {
	t.Parallel()

	doc := renderNode(t, context.Background(), DesktopNav(testPage(menu.Closed(), theme.Light)))
	nav := byID(doc, DesktopNavID)
	if nav == nil {
		t.Fatal("desktop nav missing")
	}
	if state, _ := attr(nav, "data-menu-state"); state != "closed" {
		t.Fatalf("data-menu-state = %q", state)
	}
	if sync, _ := attr(nav, "hx-sync"); sync != "this:queue all" {
		t.Fatalf("hx-sync = %q", sync)
	}
	if _, ok := attr(nav, "data-menu-open"); ok {
		t.Fatal("closed nav should not mark an open region")
	}
	if panels := byClass(doc, "nav-panel"); len(panels) != 0 {
		t.Fatalf("panels = %d, want 0", len(panels))
	}
	if regions := findAll(doc, func(n *html.Node) bool { _, ok := attr(n, "data-menu-region"); return ok }); len(regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(regions))
	}
}

func TestDesktopNavRendersOnlyActivePanel(t *testing.T) {
	t.Parallel()

	state := menu.State{Active: navigation.EntryComponents, Pinned: true}
	doc := renderNode(t, context.Background(), DesktopNav(testPage(state, theme.Light)))

	panels := byClass(doc, "nav-panel")
	if len(panels) != 1 {
		t.Fatalf("panels = %d, want 1", len(panels))
	}
	if id, _ := attr(panels[0], "id"); id != menu.PanelID(navigation.EntryComponents) {
		t.Fatalf("panel id = %q", id)
	}
	if items := byClass(panels[0], "nav-item"); len(items) != len(navigation.ComponentItems()) {
		t.Fatalf("items = %d, want %d", len(items), len(navigation.ComponentItems()))
	}
	nav := byID(doc, DesktopNavID)
	if open, _ := attr(nav, "data-menu-open"); open != menu.RegionID(navigation.EntryComponents) {
		t.Fatalf("data-menu-open = %q", open)
	}

	triggers := byClass(doc, "nav-trigger")
	expanded := 0
	for _, trigger := range triggers {
		if v, _ := attr(trigger, "aria-expanded"); v == "true" {
			expanded++
		}
	}
	if expanded != 1 {
		t.Fatalf("expanded triggers = %d, want 1", expanded)
	}
}

func TestGettingStartedPanelHasFeatureCard(t *testing.T) {
	t.Parallel()

	state := menu.State{Active: navigation.EntryGettingStarted}
	doc := renderNode(t, context.Background(), DesktopNav(testPage(state, theme.Light)))
	features := byClass(doc, "nav-feature")
	if len(features) != 1 {
		t.Fatalf("feature cards = %d, want 1", len(features))
	}
	if !strings.Contains(textOf(features[0]), "Your Project Name") {
		t.Fatalf("feature text = %q", textOf(features[0]))
	}
	imgs := byClass(features[0], "nav-feature-logo")
	if len(imgs) != 1 {
		t.Fatal("feature logo missing")
	}
	if src, _ := attr(imgs[0], "src"); src != "/static/logo.svg" {
		t.Fatalf("logo src = %q", src)
	}
}

func TestDocumentationLinkIsPlainAnchor(t *testing.T) {
	t.Parallel()

	doc := renderNode(t, context.Background(), Header(testPage(menu.Closed(), theme.Light)))
	links := findAll(doc, func(n *html.Node) bool {
		href, _ := attr(n, "href")
		return n.Data == "a" && href == "/project-gallery"
	})
	if len(links) != 2 {
		t.Fatalf("documentation links = %d, want desktop and mobile", len(links))
	}
	for _, link := range links {
		if strings.TrimSpace(textOf(link)) != "Documentation" {
			t.Fatalf("link text = %q", textOf(link))
		}
	}
}

func TestMobileNavAccordion(t *testing.T) {
	t.Parallel()

	doc := renderNode(t, context.Background(), MobileNav(testPage(menu.Closed(), theme.Light)))
	sheet := byID(doc, MobileNavID)
	if sheet == nil {
		t.Fatal("mobile sheet missing")
	}
	if _, ok := attr(sheet, "popover"); !ok {
		t.Fatal("mobile sheet should be a popover")
	}
	sections := findAll(sheet, func(n *html.Node) bool { return n.Data == "details" })
	if len(sections) != 2 {
		t.Fatalf("accordion sections = %d, want 2", len(sections))
	}
	for _, section := range sections {
		if _, ok := attr(section, "name"); ok {
			t.Fatal("sections must open independently")
		}
	}
	rows := findAll(sheet, func(n *html.Node) bool {
		class, _ := attr(n, "class")
		return class == "mobile-section"
	})
	if len(rows) != 3 {
		t.Fatalf("mobile section rows = %d, want 3", len(rows))
	}
	last := rows[len(rows)-1]
	if last.Data != "div" {
		t.Fatalf("documentation row is <%s>, want a section div", last.Data)
	}
	if entry, _ := attr(last, "data-entry"); entry != navigation.EntryDocumentation {
		t.Fatalf("last row entry = %q, want %q", entry, navigation.EntryDocumentation)
	}
	link := findAll(last, func(n *html.Node) bool { return n.Data == "a" })
	if len(link) != 1 {
		t.Fatalf("documentation row links = %d, want 1", len(link))
	}
	if href, _ := attr(link[0], "href"); href != "/project-gallery" {
		t.Fatalf("documentation href = %q", href)
	}
	triggers := findAll(doc, func(n *html.Node) bool {
		v, _ := attr(n, "popovertarget")
		return n.Data == "button" && v == MobileNavID
	})
	if len(triggers) != 2 {
		t.Fatalf("popover buttons = %d, want toggle and close", len(triggers))
	}
	if label, _ := attr(triggers[0], "aria-label"); label != "Toggle Menu" {
		t.Fatalf("toggle label = %q", label)
	}
}

func TestThemeToggleIconFollowsTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme theme.Theme
		icon  string
	}{
		{theme: theme.Light, icon: "lucide-moon"},
		{theme: theme.Dark, icon: "lucide-sun"},
		{theme: "", icon: "lucide-moon"},
	}
	for _, tc := range tests {
		doc := renderNode(t, context.Background(), ThemeToggle(testPage(menu.Closed(), tc.theme)))
		icons := findAll(doc, func(n *html.Node) bool { return n.Data == "svg" })
		if len(icons) != 1 {
			t.Fatalf("icons = %d, want 1", len(icons))
		}
		if got, _ := attr(icons[0], "data-icon"); got != tc.icon {
			t.Fatalf("theme %q icon = %q, want %q", tc.theme, got, tc.icon)
		}
	}
}

func TestLayoutWrapsChildrenWithHeaderAndTheme(t *testing.T) {
	t.Parallel()

	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="page-body">hello</p>`)
		return err
	})
	page := testPage(menu.Closed(), theme.Dark)
	ctx := templ.WithChildren(context.Background(), body)
	doc := renderNode(t, ctx, Layout(page, LayoutOptions{
		Title:   "Home",
		HTMXSrc: "/htmx.js",
		Toast:   &Toast{Kind: "success", Title: "Thank you!"},
	}))

	root := findAll(doc, func(n *html.Node) bool { return n.Data == "html" })[0]
	if class, _ := attr(root, "class"); class != "dark" {
		t.Fatalf("html class = %q", class)
	}
	if style, _ := attr(root, "style"); style != "color-scheme: dark" {
		t.Fatalf("html style = %q", style)
	}
	if headers := byClass(doc, "site-header"); len(headers) != 1 {
		t.Fatalf("headers = %d, want 1", len(headers))
	}
	if byID(doc, "page-body") == nil {
		t.Fatal("children missing from layout")
	}
	titles := findAll(doc, func(n *html.Node) bool { return n.Data == "title" })
	if len(titles) != 1 || textOf(titles[0]) != "Home | Showcase" {
		t.Fatalf("title = %q", textOf(titles[0]))
	}
	region := byID(doc, ToastRegionID)
	if region == nil || !strings.Contains(textOf(region), "Thank you!") {
		t.Fatal("toast missing from region")
	}
}

func TestComponentsEscapeText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := ToastItem(Toast{Title: `<script>alert("x")</script>`}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("unescaped output: %s", buf.String())
	}
}

func TestGalleryPage(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	doc := renderNode(t, context.Background(), GalleryPage(loc, nil))
	if empty := byClass(doc, "gallery-empty"); len(empty) != 1 {
		t.Fatal("expected empty state")
	}

	doc = renderNode(t, context.Background(), GalleryPage(loc, []GalleryProject{
		{Name: "Alpha", Description: "First", URL: "https://alpha.example"},
		{Name: "Beta", Description: "Second"},
	}))
	cards := byClass(doc, "gallery-card")
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	links := byClass(cards[0], "gallery-link")
	if len(links) != 1 || textOf(links[0]) != "Visit Alpha" {
		t.Fatalf("card link = %v", links)
	}
	if links := byClass(cards[1], "gallery-link"); len(links) != 0 {
		t.Fatal("project without URL should not link")
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	doc := renderNode(t, context.Background(), ErrorState(500, loc))
	if len(byClass(doc, "app-error")) != 1 {
		t.Fatal("expected server error state")
	}
	doc = renderNode(t, context.Background(), ErrorState(404, loc))
	if len(byClass(doc, "not-found")) != 1 {
		t.Fatal("expected not-found state")
	}
	if got := ErrorPageTitle(503, loc); got != "Something went wrong" {
		t.Fatalf("ErrorPageTitle(503) = %q", got)
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	page := testPage(menu.Closed(), theme.Light)
	page.Lang = "pt-BR"
	page.CurrentQuery = "a=1"
	options := LanguageOptions(page)
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %v, %v", options[0].Active, options[1].Active)
	}
	if options[1].URL != "/project-gallery?a=1&lang=pt-BR" {
		t.Fatalf("URL = %q", options[1].URL)
	}
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	if got := PageTitle("", "App"); got != "App" {
		t.Fatalf("PageTitle = %q", got)
	}
	if got := PageTitle("Home", ""); got != "Home" {
		t.Fatalf("PageTitle = %q", got)
	}
}
