package i18n

import (
	"context"
	"strings"
)

// Parser decodes a single-language catalog document into a nested map.
// Implementations must be stateless and safe for concurrent use.
type Parser interface {
	// Parse decodes content into a nested key/value catalog.
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsExtension reports whether the parser handles files with the
	// given extension. The extension may be passed with or without the dot.
	SupportsExtension(ext string) bool
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
