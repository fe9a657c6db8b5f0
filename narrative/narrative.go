// Package narrative renders the localized insight paragraph attached to
// each dashboard panel. It is a formatting layer only: the numbers come in
// pre-computed and get substituted into the message catalogs.
package narrative

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/epistat/covid-dashboard-api/utils"
)

// Languages the message catalogs cover.
const (
	LangEnglish    = "en"
	LangIndonesian = "id"
)

type Generator struct {
	lang string
	loc  *i18n.Localizer
}

// NewGenerator returns a generator for the given language tag. Unknown
// languages fall back to English.
func NewGenerator(lang string) *Generator {
	if lang != LangIndonesian {
		lang = LangEnglish
	}
	return &Generator{
		lang: lang,
		loc:  utils.NewLocalizer(lang),
	}
}

func (g *Generator) localize(id string, data map[string]interface{}) string {
	msg, err := g.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return ""
	}
	return msg
}

// HeaderDescription is the dashboard's introduction paragraph.
func (g *Generator) HeaderDescription() string {
	return g.localize("header.description", nil)
}

// Empty is the generic placeholder for a panel whose filter selected no
// records.
func (g *Generator) Empty() string {
	return g.localize("narrative.empty", nil)
}
