// Package i18n holds the dashboard's two display languages and their label sets.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Language is a display language of the dashboard.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ErrUnknownLanguage is returned by Parse for codes outside {en, es}.
var ErrUnknownLanguage = errors.New("unknown language")

// Languages lists the supported languages in toggle order.
func Languages() []Language {
	return []Language{English, Spanish}
}

// Parse accepts "en"/"es" case-insensitively.
func Parse(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	}
	return "", ErrUnknownLanguage
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Negotiate picks a language from an Accept-Language header value,
// returning fallback when nothing matches.
func Negotiate(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	if idx == 1 {
		return Spanish
	}
	return English
}

// Other returns the opposite language.
func (l Language) Other() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

// Text is a string authored in both languages.
type Text struct {
	EN string
	ES string
}

// In resolves the text for a language. Anything that is not Spanish reads English.
func (t Text) In(l Language) string {
	if l == Spanish {
		return t.ES
	}
	return t.EN
}

// Both renders "english / español" the way the budget table does.
func (t Text) Both() string {
	return t.EN + " / " + t.ES
}
