package markdown

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrUnknownPlugin        = errors.New("markdown: unknown plugin")
	ErrUnknownRule          = errors.New("markdown: unknown rule")
	ErrInvalidPluginOptions = errors.New("markdown: invalid plugin options")
)

const rendererConfigCode = "MVB_RENDERER_CONFIG_INVALID"

func configError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "markdown renderer configuration invalid").
		WithTextCode(rendererConfigCode)
}
