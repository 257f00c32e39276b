package interfaces

// MarkdownRenderer converts Markdown bytes into HTML. Implementations are
// configured once per collection build and reused for every article, so
// Render must not mutate renderer state between calls.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}

// HighlightFunc renders a fenced code block. lang is the first word of the
// fence info string and may be empty. Returning an empty string asks the
// renderer to fall back to escaped output.
type HighlightFunc func(code, lang string) string
