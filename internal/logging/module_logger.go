package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-mvb/pkg/interfaces"
)

const (
	rootModule     = "mvb"
	articlesModule = "mvb.articles"
	markdownModule = "mvb.markdown"
	siteModule     = "mvb.site"
)

const (
	fieldArticlePath = "article_path"
	fieldArticleFile = "file_name"
	fieldPattern     = "pattern"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered per package.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RootLogger returns the top level logger used by the facade.
func RootLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rootModule)
}

// ArticlesLogger returns the logger namespace reserved for article loading.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// MarkdownLogger returns the logger namespace reserved for renderer setup.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// SiteLogger returns the logger namespace reserved for the site pipeline.
func SiteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, siteModule)
}

// WithArticleContext enriches logger with the source path and file name of
// an article. Empty values are ignored.
func WithArticleContext(logger interfaces.Logger, path, fileName string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldArticlePath] = trimmed
	}
	if trimmed := strings.TrimSpace(fileName); trimmed != "" {
		fields[fieldArticleFile] = trimmed
	}
	return WithFields(logger, fields)
}

// WithPattern tags logger with the glob pattern being expanded.
func WithPattern(logger interfaces.Logger, pattern string) interfaces.Logger {
	if strings.TrimSpace(pattern) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldPattern: pattern})
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
