// Package site feeds a loaded article collection into page rendering: it
// attaches view data to files, maps article sources onto their permalinks
// and renders the result with pongo2.
package site

import (
	"errors"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mvb/internal/articles"
	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// DefaultDataKey is the Data entry view data is stored under.
const DefaultDataKey = "mvb"

var (
	ErrCollectionRequired = errors.New("site: article collection is required")
	ErrTemplateRequired   = errors.New("site: article template is required")
)

const pipelineConfigCode = "MVB_PIPELINE_CONFIG_INVALID"

// Collection is the loaded article set a pipeline reads from.
type Collection interface {
	List() []*articles.Article
	Groups() any
	Lookup(fileName string) (*articles.Article, bool)
}

// File is one page source travelling through the pipeline.
type File struct {
	// Path is the source path, rewritten to the permalink for articles.
	Path string
	// Base is the directory output paths are relative to.
	Base     string
	Contents []byte
	Data     map[string]any
}

// ViewData is exposed to templates under the pipeline data key.
type ViewData struct {
	Articles        []*articles.Article
	GroupedArticles any
	// Article is set only on pages generated from an article.
	Article *articles.Article
}

// PipelineOptions configures NewPipeline.
type PipelineOptions struct {
	// Template replaces the contents of every article file.
	Template []byte
	// DataKey defaults to DefaultDataKey.
	DataKey string
	Logger  interfaces.Logger
}

// Pipeline decorates files with collection data.
type Pipeline struct {
	collection Collection
	template   []byte
	dataKey    string
	logger     interfaces.Logger
}

// NewPipeline validates opts and binds them to collection.
func NewPipeline(collection Collection, opts PipelineOptions) (*Pipeline, error) {
	err := validation.Errors{
		"collection": validation.Validate(collection, validation.By(func(any) error {
			if collection == nil {
				return ErrCollectionRequired
			}
			return nil
		})),
		"template": validation.Validate(opts.Template, validation.By(func(any) error {
			if len(opts.Template) == 0 {
				return ErrTemplateRequired
			}
			return nil
		})),
	}.Filter()
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "site pipeline configuration invalid").
			WithTextCode(pipelineConfigCode)
	}

	dataKey := strings.TrimSpace(opts.DataKey)
	if dataKey == "" {
		dataKey = DefaultDataKey
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Pipeline{
		collection: collection,
		template:   append([]byte(nil), opts.Template...),
		dataKey:    dataKey,
		logger:     logger,
	}, nil
}

// Process attaches view data to file. When file is an article source its
// path becomes the permalink file name under Base and its contents become
// the article template. The same file is returned.
func (p *Pipeline) Process(file *File) *File {
	if file == nil {
		return nil
	}
	if file.Data == nil {
		file.Data = map[string]any{}
	}

	view := ViewData{
		Articles:        p.collection.List(),
		GroupedArticles: p.collection.Groups(),
	}

	if article, ok := p.collection.Lookup(filepath.Base(file.Path)); ok {
		view.Article = article
		source := file.Path
		file.Path = filepath.Join(file.Base, filepath.Base(filepath.FromSlash(article.Permalink)))
		file.Contents = append([]byte(nil), p.template...)
		p.logger.Debug("article page mapped", "source", source, "path", file.Path)
	}

	file.Data[p.dataKey] = view
	return file
}

// ProcessAll runs Process over files in order.
func (p *Pipeline) ProcessAll(files []*File) []*File {
	out := make([]*File, 0, len(files))
	for _, file := range files {
		if processed := p.Process(file); processed != nil {
			out = append(out, processed)
		}
	}
	return out
}

// DataKey returns the Data entry view data is stored under.
func (p *Pipeline) DataKey() string {
	return p.dataKey
}
