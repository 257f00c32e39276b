// Package mvb loads Markdown articles into an ordered, linked collection
// ready for page rendering.
package mvb

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mvb/internal/articles"
	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/internal/markdown"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// Article exports the loaded article record.
type Article = articles.Article

// PermalinkFunc exports the permalink callback signature.
type PermalinkFunc = articles.PermalinkFunc

// LoadedFunc exports the per-article hook signature.
type LoadedFunc = articles.LoadedFunc

// GroupFunc exports the collection grouping signature.
type GroupFunc = articles.GroupFunc

// YearGroup exports the bucket produced by ByYear.
type YearGroup = articles.YearGroup

// MarkdownConfig exports the renderer configuration.
type MarkdownConfig = markdown.Config

// MarkdownPlugin exports the renderer plugin reference.
type MarkdownPlugin = markdown.Plugin

// HighlightFunc exports the fenced code hook signature.
type HighlightFunc = interfaces.HighlightFunc

// MoreAnchor is the element that replaces the more marker in content.
const MoreAnchor = articles.MoreAnchor

var (
	ErrGlobRequired      = errors.New("mvb: at least one glob pattern is required")
	ErrPermalinkRequired = errors.New("mvb: permalink function is required")
)

const optionsInvalidCode = "MVB_OPTIONS_INVALID"

// Options configures a single collection load.
type Options struct {
	// Glob lists the patterns articles are discovered with, in order.
	Glob []string
	// Permalink computes each article's public path.
	Permalink PermalinkFunc
	Loaded    LoadedFunc
	// Grouping, when set, produces Collection.Grouped from the final order.
	Grouping GroupFunc
	// Reverse flips the final order. Neighbour links keep discovery order.
	Reverse bool
	// Markdown configures the bundled renderer. Nil selects DefaultMarkdownConfig.
	Markdown *MarkdownConfig
	// Renderer replaces the bundled renderer; Markdown is ignored when set.
	Renderer       interfaces.MarkdownRenderer
	LoggerProvider interfaces.LoggerProvider
}

// Validate checks the options shape without touching the filesystem.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Glob, validation.By(func(any) error {
			for _, pattern := range o.Glob {
				if strings.TrimSpace(pattern) != "" {
					return nil
				}
			}
			return ErrGlobRequired
		})),
		validation.Field(&o.Permalink, validation.By(func(any) error {
			if o.Permalink == nil {
				return ErrPermalinkRequired
			}
			return nil
		})),
	)
}

// Collection is the result of one load.
type Collection struct {
	// Articles is the final order, reversed when requested.
	Articles []*Article
	// Grouped is the output of Options.Grouping, or nil.
	Grouped any

	byFileName map[string]*Article
}

// Lookup returns the article loaded from fileName.
func (c *Collection) Lookup(fileName string) (*Article, bool) {
	if c == nil {
		return nil, false
	}
	article, ok := c.byFileName[fileName]
	return article, ok
}

// List returns the articles in final order.
func (c *Collection) List() []*Article {
	if c == nil {
		return nil
	}
	return c.Articles
}

// Groups returns the grouped view, or nil when no grouping was requested.
func (c *Collection) Groups() any {
	if c == nil {
		return nil
	}
	return c.Grouped
}

// Map returns the file name index of the collection.
func (c *Collection) Map() map[string]*Article {
	if c == nil {
		return nil
	}
	return c.byFileName
}

// NewCollection wraps already loaded articles.
func NewCollection(list []*Article, grouped any) *Collection {
	return &Collection{
		Articles:   list,
		Grouped:    grouped,
		byFileName: articles.Lookup(list),
	}
}

// DefaultMarkdownConfig returns the renderer defaults: raw HTML, linkify and
// typographer enabled.
func DefaultMarkdownConfig() MarkdownConfig {
	return markdown.DefaultConfig()
}

// NewRenderer builds a reusable renderer from cfg.
func NewRenderer(cfg MarkdownConfig) (interfaces.MarkdownRenderer, error) {
	renderer, err := markdown.NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return renderer, nil
}

// PermalinkPattern builds a PermalinkFunc from a template using :id, :slug,
// :filename, :year, :month and :day.
func PermalinkPattern(pattern string) (PermalinkFunc, error) {
	return articles.PermalinkPattern(pattern)
}

// ByYear groups the collection into YearGroup buckets.
func ByYear(list []*Article) any {
	return articles.ByYear(list)
}

// Load validates opts, renders every matched article with one renderer and
// returns the collection.
func Load(ctx context.Context, opts Options) (*Collection, error) {
	if err := opts.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "mvb options invalid").
			WithTextCode(optionsInvalidCode)
	}

	logger := logging.RootLogger(opts.LoggerProvider)

	renderer := opts.Renderer
	if renderer == nil {
		cfg := DefaultMarkdownConfig()
		if opts.Markdown != nil {
			cfg = *opts.Markdown
		}
		built, err := markdown.NewRenderer(cfg)
		if err != nil {
			return nil, err
		}
		logging.MarkdownLogger(opts.LoggerProvider).Debug("markdown renderer ready",
			"extensions", strings.Join(built.Extensions(), ","),
		)
		renderer = built
	}

	loader, err := articles.NewLoader(articles.LoaderConfig{
		Renderer:  renderer,
		Permalink: opts.Permalink,
		Loaded:    opts.Loaded,
		Logger:    logging.ArticlesLogger(opts.LoggerProvider),
	})
	if err != nil {
		return nil, err
	}

	list, err := loader.LoadArticles(ctx, opts.Glob)
	if err != nil {
		logger.Error("article load failed", "error", err)
		return nil, err
	}

	if opts.Reverse {
		list = articles.Reverse(list)
	}

	var grouped any
	if opts.Grouping != nil {
		grouped = opts.Grouping(list)
	}

	logger.Info("collection ready", "articles", len(list), "reversed", opts.Reverse)
	return NewCollection(list, grouped), nil
}
