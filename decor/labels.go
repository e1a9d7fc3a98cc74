package decor

import (
	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used for unsupported language codes.
const DefaultLanguage = "en"

var themeIcons = map[string]string{
	"treasure": "💎",
	"nature":   "🌸",
	"food":     "🍕",
	"animals":  "🐱",
	"space":    "🌟",
	"spooky":   "👻",
}

const danishPo = `
msgid ""
msgstr ""
"Language: da\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Treasure"
msgstr "Skat"

msgid "Nature"
msgstr "Natur"

msgid "Food"
msgstr "Mad"

msgid "Animals"
msgstr "Dyr"

msgid "Space"
msgstr "Rummet"

msgid "Spooky"
msgstr "Uhyggelig"

msgid "Current theme: %s"
msgstr "Nuværende tema: %s"
`

var catalogs = map[string]*gotext.Po{
	"en": gotext.NewPo(),
	"da": parsePo(danishPo),
}

func parsePo(src string) *gotext.Po {
	po := gotext.NewPo()
	po.Parse([]byte(src))
	return po
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"en", "da"}
}

// SupportedLanguage reports whether lang has a catalog.
func SupportedLanguage(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

func catalog(lang string) *gotext.Po {
	if po, ok := catalogs[lang]; ok {
		return po
	}
	return catalogs[DefaultLanguage]
}

// title looks up the localized title of a known theme. Each msgid is a constant so the
// catalog sees literal keys.
func title(po *gotext.Po, theme string) string {
	switch theme {
	case "nature":
		return po.Get("Nature")
	case "food":
		return po.Get("Food")
	case "animals":
		return po.Get("Animals")
	case "space":
		return po.Get("Space")
	case "spooky":
		return po.Get("Spooky")
	default:
		return po.Get("Treasure")
	}
}

// Label returns the icon and localized title of a theme, e.g. "💎 Treasure".
// Unknown themes are labeled as DefaultTheme.
func Label(theme, lang string) string {
	icon, ok := themeIcons[theme]
	if !ok {
		theme, icon = DefaultTheme, themeIcons[DefaultTheme]
	}
	return icon + " " + title(catalog(lang), theme)
}

// CurrentThemeLine returns the localized status line announcing the active theme.
func CurrentThemeLine(theme, lang string) string {
	return catalog(lang).Get("Current theme: %s", Label(theme, lang))
}
