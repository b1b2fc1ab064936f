package i18n

import "errors"

var (
	// ErrNilAdapter is returned by NewTranslator when no adapter is provided.
	ErrNilAdapter = errors.New("i18n: adapter is nil")

	// ErrEmptyLanguage is returned when a catalog is keyed by an empty language tag.
	ErrEmptyLanguage = errors.New("i18n: empty language tag in catalog")

	// ErrNilCatalog is returned when a language maps to a nil catalog.
	ErrNilCatalog = errors.New("i18n: nil catalog for language")

	// ErrLoadCancelled is returned when catalog loading is interrupted by context cancellation.
	ErrLoadCancelled = errors.New("i18n: catalog loading cancelled")

	// ErrParseCatalog is returned when a catalog file cannot be decoded.
	ErrParseCatalog = errors.New("i18n: failed to parse catalog")
)
