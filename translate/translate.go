// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages in the caller's locale.
//
// Numbers that must appear verbatim (register codes, addresses) should be
// pre-formatted and passed as strings, since the printer applies locale
// specific digit grouping to numeric verbs.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FALLBACK is the locale used when none can be detected.
const FALLBACK = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter(detect()...)
}

func detect() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("rvcsr: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{FALLBACK}
	}

	return
}

// NewPrinter returns a printer for the best match of the given locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		return message.NewPrinter(language.MustParse(FALLBACK))
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
