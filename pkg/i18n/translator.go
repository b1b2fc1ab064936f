package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "en"

// Translator resolves message keys against immutable language catalogs.
// All catalogs are loaded once in NewTranslator; a Translator is therefore
// safe for concurrent use without locking.
type Translator struct {
	catalogs      map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads all catalogs from the adapter and returns a ready
// Translator. The adapter is not retained after construction.
func NewTranslator(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range catalogs {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if catalog == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilCatalog, lang)
		}
	}

	t.catalogs = catalogs
	t.logger.InfoContext(ctx, "message catalogs loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLang returns the configured default language tag.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language tags with loaded catalogs.
func (t *Translator) SupportedLanguages() []string {
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether a message exists for the language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	catalog, ok := t.catalogs[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// T resolves key in the given language. Additional arguments are key-value
// pairs substituted into %{name} placeholders:
//
//	t.T("en", "errors.too_long", "max", "11")
//
// When the language or key is unknown the configured fallback applies: the
// key itself when fallback-to-key is enabled, an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	catalog, ok := t.catalogs[lang]
	if !ok {
		return t.miss(lang, key, args)
	}

	val, ok := lookup(catalog, key)
	if !ok {
		return t.miss(lang, key, args)
	}

	msg, ok := val.(string)
	if !ok {
		return t.miss(lang, key, args)
	}
	return substitute(msg, args)
}

// Td resolves key in the given language, returning defaultMsg (with the same
// placeholder substitution) when no message is found.
func (t *Translator) Td(lang, key, defaultMsg string, args ...string) string {
	catalog, ok := t.catalogs[lang]
	if !ok {
		return substitute(defaultMsg, args)
	}
	val, ok := lookup(catalog, key)
	if !ok {
		return substitute(defaultMsg, args)
	}
	msg, ok := val.(string)
	if !ok {
		return substitute(defaultMsg, args)
	}
	return substitute(msg, args)
}

func (t *Translator) miss(lang, key string, args []string) string {
	if t.logMissing {
		t.logger.Warn("missing translation", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup traverses a nested catalog using dot-separated keys, so
// "errors.invalid_format" resolves catalog["errors"]["invalid_format"].
func lookup(catalog map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := catalog
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from the flat
// key-value argument list. Unknown placeholders are left untouched.
func substitute(msg string, args []string) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholderRegex.ReplaceAllStringFunc(msg, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
