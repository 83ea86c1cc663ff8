// Package casefold lowercases text using Unicode-aware, optionally locale-specific rules.
package casefold

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when a locale tag cannot be parsed.
var ErrUnknownLocale = errors.New("unknown locale")

// Folder maps a string to its lowercase form.
type Folder func(string) string

// Lower lowercases s using language-neutral rules.
func Lower(s string) string {
	// cases.Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// ForLocale returns a Folder for the given BCP 47 tag.
// An empty tag returns Lower.
func ForLocale(tag string) (Folder, error) {
	if tag == "" {
		return Lower, nil
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownLocale, tag, err)
	}
	return func(s string) string {
		return cases.Lower(lang).String(s)
	}, nil
}

// ValidLocale reports whether tag is empty or a parseable BCP 47 tag.
func ValidLocale(tag string) bool {
	if tag == "" {
		return true
	}
	_, err := language.Parse(tag)
	return err == nil
}
