package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrArticlesGlobRequired = errors.New("mvb config: at least one article glob is required")
var ErrArticlesPermalinkRequired = errors.New("mvb config: article permalink pattern is required")
var ErrArticlesGroupByUnknown = errors.New("mvb config: article grouping is invalid")
var ErrMarkdownPluginNameRequired = errors.New("mvb config: markdown plugin name is required")

// ErrSiteTemplateRequired is returned by SiteConfig.Validate when no article template is set.
var ErrSiteTemplateRequired = errors.New("mvb config: site template is required to build pages")
var ErrSiteOutputDirRequired = errors.New("mvb config: site output directory is required to build pages")
var ErrLoggingProviderRequired = errors.New("mvb config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("mvb config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("mvb config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("mvb config: logging format is invalid")

// Config is the file-backed configuration of the mvb command.
type Config struct {
	Articles ArticlesConfig `yaml:"articles" toml:"articles"`
	Markdown MarkdownConfig `yaml:"markdown" toml:"markdown"`
	Site     SiteConfig     `yaml:"site" toml:"site"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// ArticlesConfig selects the article files and how the collection is shaped.
type ArticlesConfig struct {
	Glob Patterns `yaml:"glob" toml:"glob"`
	// Permalink is a pattern such as /:year/:month/:slug.html.
	Permalink string `yaml:"permalink" toml:"permalink"`
	Reverse   bool   `yaml:"reverse" toml:"reverse"`
	// GroupBy names a bundled grouping: "" for none or "year".
	GroupBy string `yaml:"group_by" toml:"group_by"`
}

// MarkdownConfig mirrors the renderer switches exposed to users.
type MarkdownConfig struct {
	HTML        bool            `yaml:"html" toml:"html"`
	Linkify     bool            `yaml:"linkify" toml:"linkify"`
	Typographer bool            `yaml:"typographer" toml:"typographer"`
	Breaks      bool            `yaml:"breaks" toml:"breaks"`
	XHTML       bool            `yaml:"xhtml" toml:"xhtml"`
	HeadingIDs  bool            `yaml:"heading_ids" toml:"heading_ids"`
	Plugins     []PluginConfig  `yaml:"plugins" toml:"plugins"`
	Enable      []string        `yaml:"enable" toml:"enable"`
	Disable     []string        `yaml:"disable" toml:"disable"`
	Highlight   HighlightConfig `yaml:"highlight" toml:"highlight"`
}

// PluginConfig references a registered renderer plugin by name.
type PluginConfig struct {
	Name    string         `yaml:"name" toml:"name"`
	Options map[string]any `yaml:"options" toml:"options"`
}

// HighlightConfig enables chroma based highlighting of fenced code.
type HighlightConfig struct {
	Enabled     bool   `yaml:"enabled" toml:"enabled"`
	Style       string `yaml:"style" toml:"style"`
	LineNumbers bool   `yaml:"line_numbers" toml:"line_numbers"`
}

// SiteConfig drives the page build.
type SiteConfig struct {
	// Template is the file whose contents replace every article page.
	Template string `yaml:"template" toml:"template"`
	// Pages are extra globs rendered with the article view data.
	Pages Patterns `yaml:"pages" toml:"pages"`
	// Base is the directory output paths are computed relative to.
	Base      string `yaml:"base" toml:"base"`
	OutputDir string `yaml:"output_dir" toml:"output_dir"`
	DataKey   string `yaml:"data_key" toml:"data_key"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider" toml:"provider"`
	Level     string   `yaml:"level" toml:"level"`
	Format    string   `yaml:"format" toml:"format"`
	AddSource bool     `yaml:"add_source" toml:"add_source"`
	Focus     []string `yaml:"focus" toml:"focus"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	return Config{
		Articles: ArticlesConfig{
			Glob:      Patterns{"articles/*.md"},
			Permalink: "/articles/:id.html",
		},
		Markdown: MarkdownConfig{
			HTML:        true,
			Linkify:     true,
			Typographer: true,
			Highlight: HighlightConfig{
				Style: "github",
			},
		},
		Site: SiteConfig{
			Base:      ".",
			OutputDir: "dist",
			DataKey:   "mvb",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Articles.Glob.Compact()) == 0 {
		return ErrArticlesGlobRequired
	}
	if strings.TrimSpace(cfg.Articles.Permalink) == "" {
		return ErrArticlesPermalinkRequired
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Articles.GroupBy)) {
	case "", "none", "year":
	default:
		return fmt.Errorf("%w: %s", ErrArticlesGroupByUnknown, cfg.Articles.GroupBy)
	}
	for i, plugin := range cfg.Markdown.Plugins {
		if strings.TrimSpace(plugin.Name) == "" {
			return fmt.Errorf("%w: plugins[%d]", ErrMarkdownPluginNameRequired, i)
		}
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Validate reports the settings a page build cannot do without.
func (s SiteConfig) Validate() error {
	if strings.TrimSpace(s.Template) == "" {
		return ErrSiteTemplateRequired
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		return ErrSiteOutputDirRequired
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
