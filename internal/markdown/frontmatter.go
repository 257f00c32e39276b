package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ParseFrontMatter splits source into its front matter fields and the
// Markdown body that follows the block. YAML, TOML and JSON blocks are
// supported. Sources without a block return an empty field map and the
// full input as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return nil, nil, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}

	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		fields[key] = normalizeValue(value)
	}
	return fields, body, nil
}

// normalizeValue converts the map[any]any trees produced by the YAML
// decoder into map[string]any so fields round-trip through JSON and
// template engines.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
