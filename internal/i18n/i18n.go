// File: internal/i18n/i18n.go
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// Catalog translates UI strings. Unknown strings come back unchanged.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// New loads the embedded catalog for lang. English and unknown languages get
// an empty catalog, which passes strings through.
func New(lang string) *Catalog {
	c := &Catalog{lang: lang, po: gotext.NewPo()}
	if data, err := locales.ReadFile("locales/" + lang + ".po"); err == nil {
		c.po.Parse(data)
	}
	return c
}

func (c *Catalog) Lang() string { return c.lang }

func (c *Catalog) Get(s string, vars ...any) string {
	return c.po.Get(s, vars...)
}

// Has reports whether lang ships a catalog.
func Has(lang string) bool {
	_, err := locales.Open("locales/" + lang + ".po")
	return err == nil
}

// Languages lists the embedded catalogs plus the built-in English.
func Languages() []string {
	out := []string{"en"}
	entries, err := locales.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}
