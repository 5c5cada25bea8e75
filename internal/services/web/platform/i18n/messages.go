package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys used by the site chrome and pages.
const (
	KeyNavGettingStarted = "nav.getting_started"
	KeyNavComponents     = "nav.components"
	KeyNavDocumentation  = "nav.documentation"
	KeyNavToggleMenu     = "nav.toggle_menu"
	KeyNavToggleTheme    = "nav.toggle_theme"
	KeyNavDonate         = "nav.donate"
	KeyNavClose          = "nav.close"
	KeyFeatureBody       = "nav.feature.body"
	KeyDonationTitle     = "toast.donation.title"
	KeyDonationBody      = "toast.donation.body"
	KeyTitleHome         = "title.home"
	KeyTitleGallery      = "title.project_gallery"
	KeyTitleNotFound     = "title.not_found"
	KeyNotFoundBody      = "not_found.body"
	KeyNotFoundHome      = "not_found.home"
	KeyGalleryIntro      = "gallery.intro"
	KeyGalleryEmpty      = "gallery.empty"
	KeyGalleryVisit      = "gallery.visit"
	KeyErrorTitle        = "error.title"
	KeyErrorBody         = "error.body"
	KeyErrorHome         = "error.home"
	KeyLanguageLabel     = "footer.language"
	KeyFooterCopy        = "footer.copy"
)

type translation struct {
	en string
	pt string
}

var translations = map[string]translation{
	KeyNavGettingStarted: {en: "Getting started", pt: "Primeiros passos"},
	KeyNavComponents:     {en: "Components", pt: "Componentes"},
	KeyNavDocumentation:  {en: "Documentation", pt: "Documentação"},
	KeyNavToggleMenu:     {en: "Toggle Menu", pt: "Alternar menu"},
	KeyNavToggleTheme:    {en: "Toggle theme", pt: "Alternar tema"},
	KeyNavDonate:         {en: "Buy us a coffee", pt: "Pague um café"},
	KeyNavClose:          {en: "Close", pt: "Fechar"},
	KeyFeatureBody: {
		en: "Beautifully designed components that you can copy and paste into your apps. Accessible. Customizable. Open Source.",
		pt: "Componentes bem desenhados para copiar e colar nos seus apps. Acessíveis. Personalizáveis. Código aberto.",
	},
	KeyDonationTitle: {en: "Thank you!", pt: "Obrigado!"},
	KeyDonationBody: {
		en: "Your donation is appreciated. Enjoy your virtual coffee!",
		pt: "Sua doação é muito bem-vinda. Aproveite seu café virtual!",
	},
	KeyTitleHome:     {en: "Home", pt: "Início"},
	KeyTitleGallery:  {en: "Project Gallery", pt: "Galeria de projetos"},
	KeyTitleNotFound: {en: "Page not found", pt: "Página não encontrada"},
	KeyNotFoundBody: {
		en: "The page you are looking for does not exist.",
		pt: "A página que você procura não existe.",
	},
	KeyNotFoundHome: {en: "Back to home", pt: "Voltar ao início"},
	KeyGalleryIntro: {
		en: "Projects built with the components in this collection.",
		pt: "Projetos construídos com os componentes desta coleção.",
	},
	KeyGalleryEmpty: {en: "No projects yet.", pt: "Nenhum projeto ainda."},
	KeyGalleryVisit: {en: "Visit %s", pt: "Visitar %s"},
	KeyErrorTitle:   {en: "Something went wrong", pt: "Algo deu errado"},
	KeyErrorBody: {
		en: "We could not load this page. Please try again.",
		pt: "Não foi possível carregar esta página. Tente novamente.",
	},
	KeyErrorHome:     {en: "Back to home", pt: "Voltar ao início"},
	KeyLanguageLabel: {en: "Language", pt: "Idioma"},
	KeyFooterCopy:    {en: "Built with %s.", pt: "Feito com %s."},
}

var siteCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for key, text := range translations {
		mustSet(builder, language.AmericanEnglish, key, text.en)
		mustSet(builder, language.BrazilianPortuguese, key, text.pt)
	}
	return builder
}

func mustSet(builder *catalog.Builder, tag language.Tag, key, msg string) {
	if err := builder.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n catalog %s %q: %v", tag, key, err))
	}
}

// Keys returns every message key in the catalog.
func Keys() []string {
	keys := make([]string, 0, len(translations))
	for key := range translations {
		keys = append(keys, key)
	}
	return keys
}
