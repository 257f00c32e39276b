package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// highlightPriority places the hook ahead of the default HTML renderer
// (1000) and goldmark-highlighting (200).
const highlightPriority = 100

type highlightRenderer struct {
	highlight interfaces.HighlightFunc
}

func newHighlightRenderer(fn interfaces.HighlightFunc) renderer.NodeRenderer {
	return &highlightRenderer{highlight: fn}
}

func (r *highlightRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *highlightRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block := node.(*ast.FencedCodeBlock)

	lang := string(block.Language(source))

	var code bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	highlighted := r.highlight(code.String(), lang)
	if strings.HasPrefix(highlighted, "<pre") {
		_, _ = w.WriteString(highlighted)
		if !strings.HasSuffix(highlighted, "\n") {
			_ = w.WriteByte('\n')
		}
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString("<pre><code")
	if lang != "" {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML([]byte(lang)))
		_, _ = w.WriteString(`"`)
	}
	_ = w.WriteByte('>')
	if highlighted == "" {
		_, _ = w.Write(util.EscapeHTML(code.Bytes()))
	} else {
		_, _ = w.WriteString(highlighted)
	}
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}
