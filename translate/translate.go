// Package translate formats user-facing messages for the current locale.
package translate

//go:generate go tool gotext -srclang=en-US update -lang=en-US -out=catalog.go github.com/ezrec/ls8/cpu github.com/ezrec/ls8/emulator github.com/ezrec/ls8/io

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best matching language from a list of locales.
// An empty list selects DEFAULT_LOCALE.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
