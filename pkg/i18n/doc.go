// Package i18n provides a small, thread-safe message catalog for libraries
// that ship user-facing text in more than one language.
//
// Translations are loaded once at construction time through an Adapter and are
// immutable afterwards, which makes a Translator safe to share across
// goroutines without locking. Catalogs are plain nested maps; keys are
// dot-separated paths ("errors.invalid_format") and messages may contain
// named placeholders in the form %{name}.
//
// # Architecture
//
// The Translator delegates storage to an Adapter. Two adapters ship with the
// package: MapAdapter for in-memory catalogs (mostly tests) and FSAdapter for
// any fs.FS, including embed.FS, with one catalog file per language named
// after its language tag (en.json, bn.yaml). File contents are decoded by a
// Parser; JSON and YAML parsers are included.
//
// # Usage
//
//	//go:embed locales
//	var locales embed.FS
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(locales, "locales", i18n.NewJSONParser()),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		// handle error
//	}
//	msg := translator.T("bn", "errors.invalid_format", "input", phone)
//
// Language negotiation against the set of loaded catalogs is available via
// Match, built on golang.org/x/text/language.
package i18n
