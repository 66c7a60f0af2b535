// Package locale installs the translated UI strings used by the front ends.
// Strings are looked up with gotext.Get by constant key; the catalogues are
// gettext .po files embedded in the binary.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalogue used when none is configured.
const DefaultLanguage = "en"

// domain is the gettext domain every key is looked up in.
const domain = "default"

// ErrUnknownLanguage is returned for a language with no embedded catalogue.
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed po/*.po
var catalogues embed.FS

// Load makes lang's catalogue the global gotext storage. An empty lang
// selects DefaultLanguage.
func Load(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)
	return nil
}

// Languages lists the embedded catalogues.
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}
