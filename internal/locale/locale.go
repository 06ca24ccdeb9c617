// Package locale holds nomoject's user-facing messages in English and
// Brazilian Portuguese. The active language is a Locale value passed to
// Localize by whoever renders text; nothing here keeps a current language.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a message catalog.
type Locale string

const (
	English      Locale = "en"
	PortugueseBR Locale = "pt_BR"
)

// Supported lists the locales in display order.
var Supported = []Locale{English, PortugueseBR}

// Name returns the locale's name in its own language.
func (l Locale) Name() string {
	switch l {
	case PortugueseBR:
		return "Português"
	default:
		return "English"
	}
}

// Next cycles to the following supported locale.
func (l Locale) Next() Locale {
	for i, s := range Supported {
		if s == l {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return English
}

// Parse maps a language tag such as "pt-BR", "pt_PT.UTF-8" or "en_US" to a
// supported locale. Any Portuguese variant selects PortugueseBR; every other
// valid tag selects English.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return English, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return English, fmt.Errorf("unknown language %q: %w", s, err)
	}
	base, _ := tag.Base()
	if base.String() == "pt" {
		return PortugueseBR, nil
	}
	return English, nil
}

// Detect returns the locale of the current user's UI language, English when
// it cannot be determined.
func Detect() Locale {
	for _, candidate := range systemLanguages() {
		if loc, err := Parse(candidate); err == nil {
			return loc
		}
	}
	return English
}

// Localize returns the message for key in loc, falling back to English and
// then to the key itself.
func Localize(key Key, loc Locale) string {
	if msg, ok := catalogs[loc][key]; ok {
		return msg
	}
	if msg, ok := catalogs[English][key]; ok {
		return msg
	}
	return string(key)
}

// Localizef formats the localized message for key with args.
func Localizef(loc Locale, key Key, args ...any) string {
	return fmt.Sprintf(Localize(key, loc), args...)
}
