package bdphone

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/bdphone/pkg/i18n"
)

// Validator is the engine facade: it binds a pattern registry, a message
// catalog and default validation options. All methods except the debounced
// wrapper are pure and safe for concurrent use; the registry and catalogs
// are read-only after construction.
type Validator struct {
	registry    *Registry
	translator  *i18n.Translator
	defaultLang string
	defaults    ValidationOptions
	logger      *slog.Logger
}

// Option configures a Validator instance.
type Option func(*Validator)

// WithRegistry replaces the default Bangladesh registry. Ignored when nil.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithDefaultValidationOptions sets the options used by Validate.
func WithDefaultValidationOptions(opts ValidationOptions) Option {
	return func(v *Validator) {
		v.defaults = opts
	}
}

// WithTranslator replaces the embedded bilingual catalog, e.g. to add a
// third language. Ignored when nil.
func WithTranslator(tr *i18n.Translator) Option {
	return func(v *Validator) {
		if tr != nil {
			v.translator = tr
			v.defaultLang = tr.DefaultLang()
		}
	}
}

// WithDefaultLanguage sets the language of the Result's Message field. The
// LocalizedMessage field always carries Bengali.
func WithDefaultLanguage(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.defaultLang = lang
		}
	}
}

// WithLogger provides a logger for the debounced wrapper. A discard logger
// is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a Validator over the default registry and embedded catalogs.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry:    DefaultRegistry(),
		translator:  messageCatalog(),
		defaultLang: langEnglish,
		defaults:    DefaultValidationOptions(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SupportedOperators returns the registered mobile operators, one entry per
// prefix.
func (v *Validator) SupportedOperators() []OperatorInfo {
	return v.registry.Operators()
}

// SupportedLandlineAreas returns the registered landline areas.
func (v *Validator) SupportedLandlineAreas() []AreaInfo {
	return v.registry.Areas()
}

var defaultValidator = sync.OnceValue(func() *Validator { return New() })

// Default returns the process-wide Validator used by the package-level
// functions.
func Default() *Validator {
	return defaultValidator()
}

// Validate classifies phone with the default options. See
// Validator.Validate.
func Validate(phone string) Result {
	return Default().Validate(phone)
}

// ValidateWithOptions classifies phone with explicit options.
func ValidateWithOptions(phone string, opts ValidationOptions) Result {
	return Default().ValidateWithOptions(phone, opts)
}

// Normalize returns the canonical form of phone, reporting false when the
// number is not valid.
func Normalize(phone string) (string, bool) {
	return Default().Normalize(phone)
}

// Format renders phone in the requested mode, returning the input unchanged
// when it is not a valid number.
func Format(phone string, mode FormatMode) string {
	return Default().Format(phone, mode)
}

// FormatLiveInput progressively formats a partially typed number.
func FormatLiveInput(partial string) string {
	return Default().FormatLiveInput(partial)
}

// ValidateForUseCase applies per-purpose policy on top of classification.
func ValidateForUseCase(phone string, useCase UseCase) Result {
	return Default().ValidateForUseCase(phone, useCase)
}

// GenerateStats summarizes validation outcomes for a batch of numbers.
func GenerateStats(phones []string) Stats {
	return Default().GenerateStats(phones)
}

// SupportedOperators returns the default registry's mobile operators.
func SupportedOperators() []OperatorInfo {
	return Default().SupportedOperators()
}

// SupportedLandlineAreas returns the default registry's landline areas.
func SupportedLandlineAreas() []AreaInfo {
	return Default().SupportedLandlineAreas()
}

// NewDebounced creates a debounced wrapper around the default Validator.
func NewDebounced(delay time.Duration) *Debounced {
	return Default().NewDebounced(delay)
}
