package mvb

import (
	"strings"

	"github.com/goliatone/go-mvb/internal/markdown"
	"github.com/goliatone/go-mvb/internal/runtimeconfig"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

var (
	ErrArticlesGlobRequired       = runtimeconfig.ErrArticlesGlobRequired
	ErrArticlesPermalinkRequired  = runtimeconfig.ErrArticlesPermalinkRequired
	ErrArticlesGroupByUnknown     = runtimeconfig.ErrArticlesGroupByUnknown
	ErrMarkdownPluginNameRequired = runtimeconfig.ErrMarkdownPluginNameRequired
	ErrSiteTemplateRequired       = runtimeconfig.ErrSiteTemplateRequired
	ErrSiteOutputDirRequired      = runtimeconfig.ErrSiteOutputDirRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrConfigFormatUnknown        = runtimeconfig.ErrConfigFormatUnknown
)

type (
	Config          = runtimeconfig.Config
	ArticlesConfig  = runtimeconfig.ArticlesConfig
	MarkdownOptions = runtimeconfig.MarkdownConfig
	PluginConfig    = runtimeconfig.PluginConfig
	HighlightConfig = runtimeconfig.HighlightConfig
	SiteConfig      = runtimeconfig.SiteConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
	Patterns        = runtimeconfig.Patterns
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFile reads a YAML or TOML config file over DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}

// MarkdownConfigFrom translates file settings into a renderer configuration.
// Highlighting is added as the last plugin when enabled.
func MarkdownConfigFrom(cfg MarkdownOptions) MarkdownConfig {
	out := markdown.Config{
		HTML:        cfg.HTML,
		Linkify:     cfg.Linkify,
		Typographer: cfg.Typographer,
		Breaks:      cfg.Breaks,
		XHTML:       cfg.XHTML,
		HeadingIDs:  cfg.HeadingIDs,
		Enable:      append([]string(nil), cfg.Enable...),
		Disable:     append([]string(nil), cfg.Disable...),
	}
	for _, plugin := range cfg.Plugins {
		out.Plugins = append(out.Plugins, markdown.Plugin{Name: plugin.Name, Options: plugin.Options})
	}
	if cfg.Highlight.Enabled {
		out.Plugins = append(out.Plugins, markdown.Plugin{
			Name: "highlighting",
			Options: map[string]any{
				"style":        cfg.Highlight.Style,
				"line_numbers": cfg.Highlight.LineNumbers,
			},
		})
	}
	return out
}

// OptionsFromConfig builds load options from a validated config.
func OptionsFromConfig(cfg Config, provider interfaces.LoggerProvider) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}

	permalink, err := PermalinkPattern(cfg.Articles.Permalink)
	if err != nil {
		return Options{}, err
	}

	md := MarkdownConfigFrom(cfg.Markdown)
	opts := Options{
		Glob:           cfg.Articles.Glob.Compact(),
		Permalink:      permalink,
		Reverse:        cfg.Articles.Reverse,
		Markdown:       &md,
		LoggerProvider: provider,
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Articles.GroupBy), "year") {
		opts.Grouping = ByYear
	}
	return opts, nil
}
