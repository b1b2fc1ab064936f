package bdphone

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrymomot/bdphone/pkg/i18n"
)

//go:embed locales
var localeFS embed.FS

// Language tags of the embedded catalogs. Every error and category
// description ships in both; adding a language means adding a file under
// locales/, nothing in the classification code changes.
const (
	langEnglish = "en"
	langBengali = "bn"
)

// messageCatalog returns the shared translator over the embedded en/bn
// catalogs. The catalogs are static package data, so a load failure is a
// build defect and panics.
var messageCatalog = sync.OnceValue(func() *i18n.Translator {
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(localeFS, "locales", i18n.NewJSONParser()),
		i18n.WithDefaultLanguage(langEnglish),
	)
	if err != nil {
		panic(fmt.Sprintf("bdphone: loading embedded message catalogs: %v", err))
	}
	return tr
})

// messageKey maps an error code to its catalog key, e.g.
// INVALID_FORMAT -> errors.invalid_format.
func messageKey(code ErrorCode) string {
	return "errors." + strings.ToLower(string(code))
}
