// internal/i18n/translator.go
package i18n

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/carioca/internal/game"
	"github.com/jason-s-yu/carioca/internal/models"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var tags = map[models.Language]language.Tag{
	models.LanguageSpanish: language.Spanish,
	models.LanguageEnglish: language.English,
	models.LanguageSwedish: language.Swedish,
}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Swedish,
})

var defaultCatalog = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	cat, err := buildCatalog()
	if err != nil {
		panic(err)
	}
	return cat
}

func buildCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(tags[models.DefaultLanguage]))
	for lang, msgs := range messages {
		tag := tags[lang]
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("catalog %s: set %s: %w", lang, key, err)
			}
		}
		for key, forms := range pluralForms[lang] {
			sel := plural.Selectf(1, "%d", plural.One, forms[0], plural.Other, forms[1])
			if err := b.Set(tag, string(key), sel); err != nil {
				return nil, fmt.Errorf("catalog %s: set %s: %w", lang, key, err)
			}
		}
	}
	return b, nil
}

// Translator formats strings for one display language.
type Translator struct {
	lang    models.Language
	printer *message.Printer
}

// New returns a translator for lang, falling back to the default language.
func New(lang models.Language) *Translator {
	if !lang.Valid() {
		lang = models.DefaultLanguage
	}
	return &Translator{
		lang:    lang,
		printer: message.NewPrinter(tags[lang], message.Catalog(defaultCatalog)),
	}
}

// Language returns the language this translator renders.
func (t *Translator) Language() models.Language {
	return t.lang
}

// T formats the message for key with args.
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Round returns the label for the 0-based round index, e.g. "Round 1".
func (t *Translator) Round(round int) string {
	return t.T(KeyRound, round+1)
}

// Objective describes what round asks for, e.g. "1 Trio + 2 Escalas".
func (t *Translator) Objective(round int) string {
	obj, ok := game.RoundObjective(round)
	if !ok {
		return ""
	}
	var parts []string
	if obj.Trios > 0 {
		parts = append(parts, t.T(KeyTrios, obj.Trios))
	}
	if obj.Escalas > 0 {
		parts = append(parts, t.T(KeyEscalas, obj.Escalas))
	}
	return strings.Join(parts, " + ")
}

// Error renders a validation error in the active language. Errors that did not come
// from the engine are returned as-is.
func (t *Translator) Error(err error) string {
	if err == nil {
		return ""
	}
	kind := game.KindOf(err)
	if kind == game.KindUnknown {
		return err.Error()
	}
	return t.T(errKey(kind), errorArgs[kind]...)
}

// MatchLanguage picks the supported language closest to a locale string such as
// "sv_SE.UTF-8" or "en-US". Unrecognized input yields the default language.
func MatchLanguage(locale string) models.Language {
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return models.DefaultLanguage
	}
	_, idx := language.MatchStrings(matcher, locale)
	return models.Languages[idx]
}
