// Package articles turns Markdown files into display-ready Article records:
// filename metadata inference, front matter promotion, rendering, teaser
// extraction and previous/next linking in discovery order.
package articles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Article is one Markdown file loaded and enriched for page rendering.
type Article struct {
	// ID is the front matter id or the file name stem.
	ID string
	// Date is the front matter date or the file name date prefix. The zero
	// value means the article is undated.
	Date time.Time
	// FileName is the base name of the source file and the lookup key.
	FileName string
	// FilePath is the path the article was read from.
	FilePath  string
	Permalink string
	// Content holds the rendered HTML body.
	Content string
	// Description is the front matter description or the teaser text in
	// front of the more marker. Empty means absent.
	Description string
	// Fields keeps every other front matter key untouched.
	Fields map[string]any

	// Previous and Next link neighbours in discovery order. They are not
	// changed by reversing a collection.
	Previous *Article
	Next     *Article
}

// PermalinkFunc computes the public path of an article. It runs before the
// body is rendered, so Content and Description are still empty.
type PermalinkFunc func(article *Article) (string, error)

// LoadedFunc observes or mutates a fully loaded article.
type LoadedFunc func(article *Article)

// GroupFunc maps an ordered collection onto any grouped view.
type GroupFunc func(articles []*Article) any

func (a *Article) HasDate() bool        { return !a.Date.IsZero() }
func (a *Article) HasDescription() bool { return a.Description != "" }

// Field returns a pass-through front matter value.
func (a *Article) Field(key string) (any, bool) {
	value, ok := a.Fields[key]
	return value, ok
}

// String returns a front matter value formatted as a string, or "" when
// the key is missing.
func (a *Article) String(key string) string {
	value, ok := a.Fields[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func (a *Article) Title() string {
	return a.String("title")
}

type articleJSON struct {
	ID          string         `json:"id"`
	Date        *time.Time     `json:"date,omitempty"`
	FileName    string         `json:"fileName"`
	FilePath    string         `json:"filePath,omitempty"`
	Permalink   string         `json:"permalink"`
	Content     string         `json:"content"`
	Description string         `json:"description,omitempty"`
	Fields      map[string]any `json:"fields,omitempty"`
	Previous    string         `json:"previousArticle,omitempty"`
	Next        string         `json:"nextArticle,omitempty"`
}

// MarshalJSON encodes neighbours by file name so the chain does not recurse.
// HTML in Content is written unescaped.
func (a *Article) MarshalJSON() ([]byte, error) {
	out := articleJSON{
		ID:          a.ID,
		FileName:    a.FileName,
		FilePath:    a.FilePath,
		Permalink:   a.Permalink,
		Content:     a.Content,
		Description: a.Description,
		Fields:      maps.Clone(a.Fields),
	}
	if a.HasDate() {
		date := a.Date
		out.Date = &date
	}
	if a.Previous != nil {
		out.Previous = a.Previous.FileName
	}
	if a.Next != nil {
		out.Next = a.Next.FileName
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
