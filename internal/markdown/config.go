package markdown

import (
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// Config is the immutable renderer configuration applied by NewRenderer.
type Config struct {
	// HTML passes raw HTML in the Markdown source through to the output.
	HTML bool
	// Linkify turns bare URLs into links.
	Linkify bool
	// Typographer replaces quotes, dashes and ellipses with typographic entities.
	Typographer bool
	// Breaks renders soft line breaks as <br>.
	Breaks bool
	// XHTML emits self-closing void elements.
	XHTML bool
	// HeadingIDs adds generated id attributes to headings.
	HeadingIDs bool
	// Highlight renders fenced code blocks when set.
	Highlight interfaces.HighlightFunc
	// Plugins are applied in order after the built-in options.
	Plugins []Plugin
	// Enable and Disable toggle named parsing rules; Disable is applied last.
	Enable  []string
	Disable []string
}

// Plugin references a goldmark extension either directly through Extender
// or by Name from the plugin registry. Options are only read for named
// plugins.
type Plugin struct {
	Name     string
	Extender goldmark.Extender
	Options  map[string]any
}

// DefaultConfig mirrors the defaults of the blog build: raw HTML, linkify
// and typographer enabled.
func DefaultConfig() Config {
	return Config{
		HTML:        true,
		Linkify:     true,
		Typographer: true,
	}
}

func (c Config) clone() Config {
	out := c
	out.Plugins = append([]Plugin(nil), c.Plugins...)
	out.Enable = append([]string(nil), c.Enable...)
	out.Disable = append([]string(nil), c.Disable...)
	return out
}
