package i18n

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser decodes YAML catalog files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes YAML content into a nested catalog map.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	return data, nil
}

// SupportsExtension reports whether the parser handles the given file extension.
func (p *YAMLParser) SupportsExtension(ext string) bool {
	ext = normalizeExt(ext)
	return ext == "yaml" || ext == "yml"
}
