package articles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/internal/markdown"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

const (
	fieldID          = "id"
	fieldDate        = "date"
	fieldDescription = "description"
)

// LoaderConfig collects the collaborators used to turn files into articles.
type LoaderConfig struct {
	Renderer  interfaces.MarkdownRenderer
	Permalink PermalinkFunc
	// Loaded runs after an article is complete, before it is linked.
	Loaded LoadedFunc
	Logger interfaces.Logger
}

// Validate reports missing required collaborators.
func (c LoaderConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Renderer, validation.By(func(any) error {
			if c.Renderer == nil {
				return ErrRendererRequired
			}
			return nil
		})),
		validation.Field(&c.Permalink, validation.By(func(any) error {
			if c.Permalink == nil {
				return ErrPermalinkRequired
			}
			return nil
		})),
	)
}

// Loader reads Markdown files into articles with a single renderer.
type Loader struct {
	renderer  interfaces.MarkdownRenderer
	permalink PermalinkFunc
	loaded    LoadedFunc
	logger    interfaces.Logger
}

// NewLoader validates cfg and returns a loader bound to it.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, loaderConfigError(err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		renderer:  cfg.Renderer,
		permalink: cfg.Permalink,
		loaded:    cfg.Loaded,
		logger:    logger,
	}, nil
}

// LoadArticle reads one file and returns the enriched article. Permalink,
// renderer and hook errors are returned as produced.
func (l *Loader) LoadArticle(ctx context.Context, path string) (*Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fileName := filepath.Base(path)
	logger := logging.WithArticleContext(l.logger.WithContext(ctx), path, fileName)

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fileAccessError(path, err)
	}

	fields, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return nil, frontMatterError(path, err)
	}

	info, err := ParseFileName(fileName)
	if err != nil {
		return nil, err
	}

	article := &Article{
		FileName: fileName,
		FilePath: path,
		Fields:   fields,
	}

	article.ID = popString(fields, fieldID)
	if article.ID == "" {
		article.ID = info.ID
	}

	rawDate, _ := popField(fields, fieldDate)
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, dateError(path, err)
	}
	if date.IsZero() {
		date = info.Date
	}
	article.Date = date

	description := popString(fields, fieldDescription)

	permalink, err := l.permalink(article)
	if err != nil {
		return nil, err
	}
	article.Permalink = permalink

	rendered, err := l.renderer.Render(body)
	if err != nil {
		return nil, err
	}

	content, teaser, found := splitMore(string(rendered))
	article.Content = content
	article.Description = description
	if found && description == "" {
		text, err := plainText(teaser)
		if err != nil {
			return nil, err
		}
		article.Description = text
	}

	if l.loaded != nil {
		l.loaded(article)
	}

	logger.Debug("article loaded",
		"id", article.ID,
		"permalink", article.Permalink,
		"more", found,
	)
	return article, nil
}

// LoadArticles expands patterns, loads every match in discovery order and
// links neighbours. The first failure aborts the load.
func (l *Loader) LoadArticles(ctx context.Context, patterns []string) ([]*Article, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := FindFiles([]string{pattern})
		if err != nil {
			return nil, err
		}
		logging.WithPattern(l.logger, pattern).Debug("glob expanded", "matches", len(matches))
		files = append(files, matches...)
	}

	out := make([]*Article, 0, len(files))
	var previous *Article
	for _, file := range files {
		article, err := l.LoadArticle(ctx, file)
		if err != nil {
			return nil, err
		}
		if previous != nil {
			previous.Next = article
			article.Previous = previous
		}
		previous = article
		out = append(out, article)
	}

	l.logger.Info("articles loaded",
		"patterns", strings.Join(patterns, ","),
		"count", len(out),
	)
	return out, nil
}

func popField(fields map[string]any, key string) (any, bool) {
	value, ok := fields[key]
	if ok {
		delete(fields, key)
	}
	return value, ok
}

func popString(fields map[string]any, key string) string {
	value, ok := popField(fields, key)
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
