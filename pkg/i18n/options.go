package i18n

import "log/slog"

// Option configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the default language tag. It is ignored when lang
// is empty.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key itself when no message
// is found. Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger provides a logger for catalog loading and missing-message
// reporting. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging enables warning logs for unresolved keys. Disabled by
// default to avoid noisy hot paths.
func WithMissingLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}
