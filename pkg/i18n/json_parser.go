package i18n

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONParser decodes JSON catalog files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content into a nested catalog map.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	return data, nil
}

// SupportsExtension reports whether the parser handles the given file extension.
func (p *JSONParser) SupportsExtension(ext string) bool {
	return normalizeExt(ext) == "json"
}
