package markdown

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

type namedExtender struct {
	name     string
	extender goldmark.Extender
}

type pluginFactory func(options map[string]any) ([]namedExtender, error)

var pluginRegistry = map[string]pluginFactory{
	"gfm": func(map[string]any) ([]namedExtender, error) {
		return []namedExtender{
			{name: "table", extender: extension.Table},
			{name: "strikethrough", extender: extension.Strikethrough},
			{name: "linkify", extender: extension.Linkify},
			{name: "tasklist", extender: extension.TaskList},
		}, nil
	},
	"table":         fixed("table", extension.Table),
	"strikethrough": fixed("strikethrough", extension.Strikethrough),
	"linkify":       fixed("linkify", extension.Linkify),
	"tasklist":      fixed("tasklist", extension.TaskList),
	"definition":    fixed("definition", extension.DefinitionList),
	"footnote":      footnotePlugin,
	"typographer":   typographerPlugin,
	"highlighting":  highlightingPlugin,
}

var pluginAliases = map[string]string{
	"tables":          "table",
	"autolink":        "linkify",
	"deflist":         "definition",
	"definition_list": "definition",
	"footnotes":       "footnote",
	"smartypants":     "typographer",
	"chroma":          "highlighting",
}

// PluginNames lists the names accepted in Plugin.Name.
func PluginNames() []string {
	return slices.Sorted(maps.Keys(pluginRegistry))
}

func resolvePlugin(index int, plugin Plugin) ([]namedExtender, error) {
	if plugin.Extender != nil {
		name := normalizeName(plugin.Name)
		if name == "" {
			name = fmt.Sprintf("plugin_%d", index)
		}
		return []namedExtender{{name: name, extender: plugin.Extender}}, nil
	}

	name := normalizeName(plugin.Name)
	if alias, ok := pluginAliases[name]; ok {
		name = alias
	}
	factory, ok := pluginRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, plugin.Name)
	}
	return factory(plugin.Options)
}

func fixed(name string, ext goldmark.Extender) pluginFactory {
	return func(map[string]any) ([]namedExtender, error) {
		return []namedExtender{{name: name, extender: ext}}, nil
	}
}

func footnotePlugin(options map[string]any) ([]namedExtender, error) {
	prefix, err := stringOption(options, "id_prefix")
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return []namedExtender{{name: "footnote", extender: extension.Footnote}}, nil
	}
	return []namedExtender{{
		name:     "footnote",
		extender: extension.NewFootnote(extension.WithFootnoteIDPrefix([]byte(prefix))),
	}}, nil
}

var punctuationNames = map[string]extension.TypographicPunctuation{
	"left_single_quote":  extension.LeftSingleQuote,
	"right_single_quote": extension.RightSingleQuote,
	"left_double_quote":  extension.LeftDoubleQuote,
	"right_double_quote": extension.RightDoubleQuote,
	"en_dash":            extension.EnDash,
	"em_dash":            extension.EmDash,
	"ellipsis":           extension.Ellipsis,
	"left_angle_quote":   extension.LeftAngleQuote,
	"right_angle_quote":  extension.RightAngleQuote,
}

func typographerPlugin(options map[string]any) ([]namedExtender, error) {
	if len(options) == 0 {
		return []namedExtender{{name: "typographer", extender: extension.Typographer}}, nil
	}

	substitutions := map[extension.TypographicPunctuation][]byte{}
	for key := range options {
		punctuation, ok := punctuationNames[normalizeName(key)]
		if !ok {
			return nil, fmt.Errorf("%w: typographer does not know %q", ErrInvalidPluginOptions, key)
		}
		value, err := stringOption(options, key)
		if err != nil {
			return nil, err
		}
		substitutions[punctuation] = []byte(value)
	}
	return []namedExtender{{
		name:     "typographer",
		extender: extension.NewTypographer(extension.WithTypographicSubstitutions(substitutions)),
	}}, nil
}

func highlightingPlugin(options map[string]any) ([]namedExtender, error) {
	style, err := stringOption(options, "style")
	if err != nil {
		return nil, err
	}
	lineNumbers, err := boolOption(options, "line_numbers")
	if err != nil {
		return nil, err
	}

	opts := []highlighting.Option{}
	if style != "" {
		opts = append(opts, highlighting.WithStyle(style))
	}
	if lineNumbers {
		opts = append(opts, highlighting.WithFormatOptions(chromahtml.WithLineNumbers(true)))
	}
	return []namedExtender{{name: "highlighting", extender: highlighting.NewHighlighting(opts...)}}, nil
}

func stringOption(options map[string]any, key string) (string, error) {
	raw, ok := options[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidPluginOptions, key, raw)
	}
	return value, nil
}

func boolOption(options map[string]any, key string) (bool, error) {
	raw, ok := options[key]
	if !ok || raw == nil {
		return false, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidPluginOptions, key, raw)
	}
	return value, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
