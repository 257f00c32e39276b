package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// GoldmarkRenderer implements interfaces.MarkdownRenderer. The goldmark
// engine is assembled once in NewRenderer and shared by every Render call,
// so a single instance serves a whole collection build.
type GoldmarkRenderer struct {
	cfg        Config
	engine     goldmark.Markdown
	extensions []string
}

var _ interfaces.MarkdownRenderer = (*GoldmarkRenderer)(nil)

// NewRenderer resolves plugins and rule toggles and builds the engine.
// Unknown plugin or rule names fail with a validation category error.
func NewRenderer(cfg Config) (*GoldmarkRenderer, error) {
	cfg = cfg.clone()

	rules, err := resolveRules(cfg.Enable, cfg.Disable)
	if err != nil {
		return nil, configError(err)
	}

	var candidates []namedExtender
	if cfg.Linkify {
		candidates = append(candidates, namedExtender{name: "linkify", extender: extensionRules["linkify"]})
	}
	if cfg.Typographer {
		candidates = append(candidates, namedExtender{name: "typographer", extender: extensionRules["typographer"]})
	}
	for i, plugin := range cfg.Plugins {
		resolved, err := resolvePlugin(i, plugin)
		if err != nil {
			return nil, configError(err)
		}
		candidates = append(candidates, resolved...)
	}
	candidates = append(candidates, rules.enabled...)

	// Later entries replace earlier ones with the same name, keeping the
	// first position. A configured typographer plugin overrides the
	// Typographer option this way.
	extenders := []goldmark.Extender{}
	names := []string{}
	seen := map[string]int{}
	for _, candidate := range candidates {
		if rules.isDisabled(candidate.name) {
			continue
		}
		if idx, ok := seen[candidate.name]; ok {
			extenders[idx] = candidate.extender
			continue
		}
		seen[candidate.name] = len(extenders)
		extenders = append(extenders, candidate.extender)
		names = append(names, candidate.name)
	}

	rendererOptions := []renderer.Option{}
	if cfg.HTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	if cfg.Breaks {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if cfg.XHTML {
		rendererOptions = append(rendererOptions, html.WithXHTML())
	}
	if cfg.Highlight != nil {
		rendererOptions = append(rendererOptions, renderer.WithNodeRenderers(
			util.Prioritized(newHighlightRenderer(cfg.Highlight), highlightPriority),
		))
	}

	engine := goldmark.New(
		goldmark.WithParser(buildParser(rules, cfg.HeadingIDs)),
		goldmark.WithRendererOptions(rendererOptions...),
		goldmark.WithExtensions(extenders...),
	)

	return &GoldmarkRenderer{
		cfg:        cfg,
		engine:     engine,
		extensions: names,
	}, nil
}

// Render converts markdown into HTML.
func (r *GoldmarkRenderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// Extensions reports the names of the registered extensions in
// registration order.
func (r *GoldmarkRenderer) Extensions() []string {
	return append([]string(nil), r.extensions...)
}

// Config returns a copy of the configuration the renderer was built with.
func (r *GoldmarkRenderer) Config() Config {
	return r.cfg.clone()
}
