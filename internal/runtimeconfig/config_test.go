package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/goliatone/go-mvb/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresGlob(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Articles.Glob = runtimeconfig.Patterns{" "}

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrArticlesGlobRequired) {
		t.Fatalf("expected ErrArticlesGlobRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresPermalink(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Articles.Permalink = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrArticlesPermalinkRequired) {
		t.Fatalf("expected ErrArticlesPermalinkRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownGrouping(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Articles.GroupBy = "month"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrArticlesGroupByUnknown) {
		t.Fatalf("expected ErrArticlesGroupByUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresPluginName(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Plugins = []runtimeconfig.PluginConfig{{Name: ""}}

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMarkdownPluginNameRequired) {
		t.Fatalf("expected ErrMarkdownPluginNameRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestSiteConfigValidate(t *testing.T) {
	site := runtimeconfig.DefaultConfig().Site
	if err := site.Validate(); !errors.Is(err, runtimeconfig.ErrSiteTemplateRequired) {
		t.Fatalf("expected ErrSiteTemplateRequired, got %v", err)
	}

	site.Template = "article.html"
	site.OutputDir = ""
	if err := site.Validate(); !errors.Is(err, runtimeconfig.ErrSiteOutputDirRequired) {
		t.Fatalf("expected ErrSiteOutputDirRequired, got %v", err)
	}
}

func TestLoadFileYAML(t *testing.T) {
	cfg, err := runtimeconfig.LoadFile(filepath.Join("testdata", "mvb.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if !slices.Equal(cfg.Articles.Glob, runtimeconfig.Patterns{"content/articles/*.md"}) {
		t.Fatalf("expected scalar glob decoded as list, got %v", cfg.Articles.Glob)
	}
	if !cfg.Articles.Reverse || cfg.Articles.GroupBy != "year" {
		t.Fatalf("unexpected articles config %+v", cfg.Articles)
	}
	if !cfg.Markdown.HTML || !cfg.Markdown.Typographer || !cfg.Markdown.Breaks {
		t.Fatalf("expected defaults kept and overrides applied, got %+v", cfg.Markdown)
	}
	if len(cfg.Markdown.Plugins) != 1 || cfg.Markdown.Plugins[0].Options["id_prefix"] != "post-" {
		t.Fatalf("unexpected plugins %+v", cfg.Markdown.Plugins)
	}
	if !cfg.Markdown.Highlight.Enabled || cfg.Markdown.Highlight.Style != "monokai" {
		t.Fatalf("unexpected highlight config %+v", cfg.Markdown.Highlight)
	}
	if cfg.Site.OutputDir != "public" || cfg.Site.DataKey != "mvb" {
		t.Fatalf("unexpected site config %+v", cfg.Site)
	}
	if cfg.Logging.Provider != "gologger" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFileTOML(t *testing.T) {
	cfg, err := runtimeconfig.LoadFile(filepath.Join("testdata", "mvb.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if !slices.Equal(cfg.Articles.Glob, runtimeconfig.Patterns{"a/*.md", "b/*.md"}) {
		t.Fatalf("unexpected glob %v", cfg.Articles.Glob)
	}
	if cfg.Markdown.Typographer {
		t.Fatalf("expected typographer disabled")
	}
	if !cfg.Markdown.Linkify {
		t.Fatalf("expected linkify default kept")
	}
	if len(cfg.Markdown.Plugins) != 1 || cfg.Markdown.Plugins[0].Name != "gfm" {
		t.Fatalf("unexpected plugins %+v", cfg.Markdown.Plugins)
	}
	if cfg.Logging.Provider != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFileTOMLScalarGlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvb.toml")
	raw := "[articles]\nglob = \"posts/*.md\"\n\n[site]\npages = \"pages/*.html\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !slices.Equal(cfg.Articles.Glob, runtimeconfig.Patterns{"posts/*.md"}) {
		t.Fatalf("expected scalar glob decoded as list, got %v", cfg.Articles.Glob)
	}
	if !slices.Equal(cfg.Site.Pages, runtimeconfig.Patterns{"pages/*.html"}) {
		t.Fatalf("expected scalar pages decoded as list, got %v", cfg.Site.Pages)
	}

	bad := filepath.Join(t.TempDir(), "mvb.toml")
	if err := os.WriteFile(bad, []byte("[articles]\nglob = [1, 2]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runtimeconfig.LoadFile(bad); err == nil {
		t.Fatal("expected error for non-string glob entries")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := runtimeconfig.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	ini := filepath.Join(dir, "mvb.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := runtimeconfig.LoadFile(ini); !errors.Is(err, runtimeconfig.ErrConfigFormatUnknown) {
		t.Fatalf("expected ErrConfigFormatUnknown, got %v", err)
	}

	invalid := filepath.Join(dir, "mvb.yml")
	if err := os.WriteFile(invalid, []byte("logging:\n  provider: syslog\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := runtimeconfig.LoadFile(invalid); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}
