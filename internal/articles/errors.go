package articles

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrMalformedFilename = errors.New("articles: file name does not match [YYYY-MM-DD-]id.ext")
	ErrInvalidDate       = errors.New("articles: invalid date")
	ErrRendererRequired  = errors.New("articles: markdown renderer is required")
	ErrPermalinkRequired = errors.New("articles: permalink function is required")
	ErrPermalinkPattern  = errors.New("articles: permalink pattern is empty")
	ErrPermalinkNoDate   = errors.New("articles: permalink pattern needs a date but the article is undated")
)

const (
	codeReadFailed         = "MVB_ARTICLE_READ_FAILED"
	codeFilenameInvalid    = "MVB_ARTICLE_FILENAME_INVALID"
	codeFrontMatterInvalid = "MVB_ARTICLE_FRONTMATTER_INVALID"
	codeDateInvalid        = "MVB_ARTICLE_DATE_INVALID"
	codeGlobInvalid        = "MVB_GLOB_INVALID"
	codeLoaderConfig       = "MVB_LOADER_CONFIG_INVALID"
)

func fileAccessError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, fmt.Sprintf("read article %s", path)).
		WithTextCode(codeReadFailed)
}

func malformedFilenameError(name string) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q", ErrMalformedFilename, name), goerrors.CategoryBadInput,
		fmt.Sprintf("malformed article file name %q", name)).
		WithTextCode(codeFilenameInvalid)
}

func frontMatterError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, fmt.Sprintf("invalid front matter in %s", path)).
		WithTextCode(codeFrontMatterInvalid)
}

func dateError(source string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, fmt.Sprintf("invalid date in %s", source)).
		WithTextCode(codeDateInvalid)
}

func globError(pattern string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, fmt.Sprintf("invalid glob pattern %q", pattern)).
		WithTextCode(codeGlobInvalid)
}

func loaderConfigError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "article loader configuration invalid").
		WithTextCode(codeLoaderConfig)
}
