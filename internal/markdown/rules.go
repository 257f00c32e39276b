package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

type ruleParsers struct {
	blocks  []util.PrioritizedValue
	inlines []util.PrioritizedValue
}

// coreRules returns fresh parser instances keyed by rule name. Priorities
// match goldmark's DefaultBlockParsers and DefaultInlineParsers.
func coreRules() map[string]ruleParsers {
	return map[string]ruleParsers{
		"lheading":   {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewSetextHeadingParser(), 100)}},
		"hr":         {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewThematicBreakParser(), 200)}},
		"list":       {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewListParser(), 300), util.Prioritized(parser.NewListItemParser(), 400)}},
		"code":       {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewCodeBlockParser(), 500)}},
		"heading":    {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewATXHeadingParser(), 600)}},
		"fence":      {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewFencedCodeBlockParser(), 700)}},
		"blockquote": {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewBlockquoteParser(), 800)}},
		"html_block": {blocks: []util.PrioritizedValue{util.Prioritized(parser.NewHTMLBlockParser(), 900)}},

		"backticks":   {inlines: []util.PrioritizedValue{util.Prioritized(parser.NewCodeSpanParser(), 100)}},
		"link":        {inlines: []util.PrioritizedValue{util.Prioritized(parser.NewLinkParser(), 200)}},
		"autolink":    {inlines: []util.PrioritizedValue{util.Prioritized(parser.NewAutoLinkParser(), 300)}},
		"html_inline": {inlines: []util.PrioritizedValue{util.Prioritized(parser.NewRawHTMLParser(), 400)}},
		"emphasis":    {inlines: []util.PrioritizedValue{util.Prioritized(parser.NewEmphasisParser(), 500)}},
	}
}

var extensionRules = map[string]goldmark.Extender{
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"typographer":   extension.Typographer,
	"tasklist":      extension.TaskList,
}

// ruleSet is the resolved outcome of Enable and Disable.
type ruleSet struct {
	enabled  []namedExtender
	disabled map[string]struct{}
}

func resolveRules(enable, disable []string) (ruleSet, error) {
	core := coreRules()
	set := ruleSet{disabled: map[string]struct{}{}}

	for _, raw := range enable {
		name := normalizeName(raw)
		if ext, ok := extensionRules[name]; ok {
			set.enabled = append(set.enabled, namedExtender{name: name, extender: ext})
			continue
		}
		if _, ok := core[name]; !ok {
			return ruleSet{}, fmt.Errorf("%w: %q", ErrUnknownRule, raw)
		}
	}

	for _, raw := range disable {
		name := normalizeName(raw)
		_, isCore := core[name]
		_, isExt := extensionRules[name]
		if !isCore && !isExt {
			return ruleSet{}, fmt.Errorf("%w: %q", ErrUnknownRule, raw)
		}
		set.disabled[name] = struct{}{}
	}
	return set, nil
}

func (s ruleSet) isDisabled(name string) bool {
	_, ok := s.disabled[name]
	return ok
}

func buildParser(rules ruleSet, headingIDs bool) parser.Parser {
	blocks := []util.PrioritizedValue{util.Prioritized(parser.NewParagraphParser(), 1000)}
	inlines := []util.PrioritizedValue{}

	for name, parsers := range coreRules() {
		if rules.isDisabled(name) {
			continue
		}
		blocks = append(blocks, parsers.blocks...)
		inlines = append(inlines, parsers.inlines...)
	}

	opts := []parser.Option{
		parser.WithBlockParsers(blocks...),
		parser.WithInlineParsers(inlines...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	}
	if headingIDs {
		opts = append(opts, parser.WithAutoHeadingID())
	}
	return parser.NewParser(opts...)
}
