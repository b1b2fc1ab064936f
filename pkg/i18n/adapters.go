package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Adapter loads language-keyed catalogs from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from an in-memory map. Useful for tests and for
// callers that build catalogs programmatically.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the Adapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads one catalog file per language from an fs.FS. The language
// tag is taken from the file name without extension: "locales/en.json" loads
// the "en" catalog. Files with extensions no parser supports are skipped.
type FSAdapter struct {
	fsys    fs.FS
	dir     string
	parsers []Parser
}

// NewFSAdapter creates an adapter over fsys rooted at dir ("." for the root).
// Returns nil if fsys is nil or no parsers are given.
func NewFSAdapter(fsys fs.FS, dir string, parsers ...Parser) *FSAdapter {
	if fsys == nil || len(parsers) == 0 {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir, parsers: parsers}
}

// Load implements the Adapter interface.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: reading catalog dir %q: %w", a.dir, err)
	}

	catalogs := make(map[string]map[string]any, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		name := entry.Name()
		ext := path.Ext(name)
		parser := a.parserFor(ext)
		if parser == nil {
			continue
		}

		lang := strings.TrimSuffix(name, ext)
		if lang == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyLanguage, name)
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, fmt.Errorf("i18n: reading catalog file %q: %w", name, err)
		}

		catalog, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("i18n: catalog file %q: %w", name, err)
		}
		catalogs[lang] = catalog
	}

	return catalogs, nil
}

func (a *FSAdapter) parserFor(ext string) Parser {
	for _, p := range a.parsers {
		if p.SupportsExtension(ext) {
			return p
		}
	}
	return nil
}
