package articles

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mvb/internal/markdown"
)

func newTestLoader(t *testing.T, loaded LoadedFunc) *Loader {
	t.Helper()

	renderer, err := markdown.NewRenderer(markdown.DefaultConfig())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	loader, err := NewLoader(LoaderConfig{
		Renderer: renderer,
		Permalink: func(article *Article) (string, error) {
			return "/articles/" + article.ID + ".html", nil
		},
		Loaded: loaded,
	})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	return loader
}

func writeArticle(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadArticlesFixtures(t *testing.T) {
	loader := newTestLoader(t, nil)

	articles, err := loader.LoadArticles(context.Background(), []string{filepath.Join("testdata", "fixtures", "*.md")})
	if err != nil {
		t.Fatalf("load articles: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}

	hello := articles[0]
	if hello.Title() != "Hello World" {
		t.Fatalf("unexpected title %q", hello.Title())
	}
	if hello.String("subtitle") != "Starting my new blog" {
		t.Fatalf("unexpected subtitle %q", hello.String("subtitle"))
	}
	if hello.ID != "hello-world" {
		t.Fatalf("expected id inferred from file name, got %q", hello.ID)
	}
	if want := time.Date(2017, 10, 13, 0, 0, 0, 0, time.UTC); !hello.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, hello.Date)
	}
	if hello.Description != "Hello everyone, I’m starting a new blog!" {
		t.Fatalf("unexpected description %q", hello.Description)
	}
	if hello.Permalink != "/articles/hello-world.html" {
		t.Fatalf("unexpected permalink %q", hello.Permalink)
	}
	if strings.Count(hello.Content, MoreAnchor) != 1 {
		t.Fatalf("expected a single more anchor, got %q", hello.Content)
	}
	if strings.Contains(strings.ToLower(hello.Content), "<!-- more -->") {
		t.Fatalf("marker survived rendering: %q", hello.Content)
	}

	second := articles[1]
	if second.Title() != "My second article" {
		t.Fatalf("unexpected title %q", second.Title())
	}
	if want := time.Date(2017, 10, 14, 12, 34, 56, 0, time.UTC); !second.Date.Equal(want) {
		t.Fatalf("expected explicit date %v, got %v", want, second.Date)
	}
	if second.Description != "This is going to be a thing!" {
		t.Fatalf("unexpected description %q", second.Description)
	}
	if strings.Count(second.Content, MoreAnchor) != 1 || strings.Contains(strings.ToLower(second.Content), "<!-- more -->") {
		t.Fatalf("expected every marker removed and one anchor, got %q", second.Content)
	}
	if _, ok := second.Field("date"); ok {
		t.Fatalf("expected date promoted out of fields")
	}
	if _, ok := second.Field("tags"); !ok {
		t.Fatalf("expected tags passed through, got %#v", second.Fields)
	}

	noDate := articles[2]
	if noDate.Title() != "No date" {
		t.Fatalf("unexpected title %q", noDate.Title())
	}
	if noDate.HasDate() {
		t.Fatalf("expected undated article, got %v", noDate.Date)
	}
	if noDate.HasDescription() {
		t.Fatalf("expected no description, got %q", noDate.Description)
	}
	if strings.Contains(noDate.Content, MoreAnchor) {
		t.Fatalf("unexpected anchor in %q", noDate.Content)
	}
}

func TestLoadArticlesLinksNeighbours(t *testing.T) {
	loader := newTestLoader(t, nil)

	articles, err := loader.LoadArticles(context.Background(), []string{"testdata/fixtures/*.md"})
	if err != nil {
		t.Fatalf("load articles: %v", err)
	}

	if articles[0].Previous != nil {
		t.Fatalf("expected first article without previous")
	}
	if articles[len(articles)-1].Next != nil {
		t.Fatalf("expected last article without next")
	}
	for i := 0; i+1 < len(articles); i++ {
		if articles[i].Next != articles[i+1] {
			t.Fatalf("article %d next mismatch", i)
		}
		if articles[i+1].Previous != articles[i] {
			t.Fatalf("article %d previous mismatch", i+1)
		}
	}
}

func TestLoadArticleExplicitValuesWin(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "2017-10-13-hello.md", `---
id: custom
date: 2018-01-02
description: Written by hand
---
Teaser text.

<!-- more -->

Rest.
`)

	article, err := newTestLoader(t, nil).LoadArticle(context.Background(), path)
	if err != nil {
		t.Fatalf("load article: %v", err)
	}
	if article.ID != "custom" {
		t.Fatalf("expected explicit id, got %q", article.ID)
	}
	if want := time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC); !article.Date.Equal(want) {
		t.Fatalf("expected explicit date %v, got %v", want, article.Date)
	}
	if article.Description != "Written by hand" {
		t.Fatalf("expected explicit description, got %q", article.Description)
	}
	if article.Permalink != "/articles/custom.html" {
		t.Fatalf("expected permalink from explicit id, got %q", article.Permalink)
	}
	if len(article.Fields) != 0 {
		t.Fatalf("expected promoted keys removed from fields, got %#v", article.Fields)
	}
}

func TestLoadArticleEmptyExplicitValuesAreInferred(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "2019-05-06-inferred.md", `---
id: ""
date: ""
---
Body.
`)

	article, err := newTestLoader(t, nil).LoadArticle(context.Background(), path)
	if err != nil {
		t.Fatalf("load article: %v", err)
	}
	if article.ID != "inferred" {
		t.Fatalf("expected inferred id, got %q", article.ID)
	}
	if want := time.Date(2019, 5, 6, 0, 0, 0, 0, time.UTC); !article.Date.Equal(want) {
		t.Fatalf("expected inferred date %v, got %v", want, article.Date)
	}
}

// A marker at the very start of the rendered body is treated as absent.
func TestLoadArticleMarkerAtStartIsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "leading.md", "<!-- more -->\n\nBody text.\n")

	article, err := newTestLoader(t, nil).LoadArticle(context.Background(), path)
	if err != nil {
		t.Fatalf("load article: %v", err)
	}
	if article.HasDescription() {
		t.Fatalf("expected no description, got %q", article.Description)
	}
	if strings.Contains(article.Content, MoreAnchor) {
		t.Fatalf("expected marker left untouched, got %q", article.Content)
	}
	if !strings.HasPrefix(article.Content, "<!-- more -->") {
		t.Fatalf("expected raw marker kept at offset 0, got %q", article.Content)
	}
}

func TestLoadArticleDescriptionDecodesEntities(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "fish.md", "Fish &amp; chips.\n\n<!-- more -->\n\nBody.\n")

	article, err := newTestLoader(t, nil).LoadArticle(context.Background(), path)
	if err != nil {
		t.Fatalf("load article: %v", err)
	}
	if !strings.Contains(article.Content, "Fish &amp; chips.") {
		t.Fatalf("expected escaped entity kept in content, got %q", article.Content)
	}
	if article.Description != "Fish & chips." {
		t.Fatalf("expected decoded description, got %q", article.Description)
	}
}

func TestLoadArticleLoadedHook(t *testing.T) {
	var seen []string
	loader := newTestLoader(t, func(article *Article) {
		seen = append(seen, article.FileName)
		article.Fields["visited"] = true
	})

	article, err := loader.LoadArticle(context.Background(), filepath.Join("testdata", "fixtures", "no-date.md"))
	if err != nil {
		t.Fatalf("load article: %v", err)
	}
	if len(seen) != 1 || seen[0] != "no-date.md" {
		t.Fatalf("expected hook called once, got %v", seen)
	}
	if article.Fields["visited"] != true {
		t.Fatalf("expected hook mutation kept, got %#v", article.Fields)
	}
}

func TestLoadArticleErrors(t *testing.T) {
	dir := t.TempDir()
	badDate := writeArticle(t, dir, "bad-date.md", "---\ndate: someday\n---\nBody\n")
	badName := writeArticle(t, dir, "README", "Body\n")
	badFront := writeArticle(t, dir, "broken.md", "---\ntitle: [unterminated\n---\nBody\n")

	loader := newTestLoader(t, nil)
	ctx := context.Background()

	_, err := loader.LoadArticle(ctx, filepath.Join(dir, "missing.md"))
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found category for missing file, got %v", err)
	}

	_, err = loader.LoadArticle(ctx, badDate)
	if !errors.Is(err, ErrInvalidDate) || !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected invalid date error, got %v", err)
	}

	_, err = loader.LoadArticle(ctx, badName)
	if !errors.Is(err, ErrMalformedFilename) {
		t.Fatalf("expected malformed file name error, got %v", err)
	}

	_, err = loader.LoadArticle(ctx, badFront)
	if !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input category for front matter, got %v", err)
	}
}

type failingRenderer struct{ err error }

func (r failingRenderer) Render([]byte) ([]byte, error) { return nil, r.err }

func TestLoadArticlePropagatesCallbackErrors(t *testing.T) {
	path := filepath.Join("testdata", "fixtures", "no-date.md")
	boom := errors.New("boom")

	loader, err := NewLoader(LoaderConfig{
		Renderer:  failingRenderer{err: boom},
		Permalink: func(*Article) (string, error) { return "/x", nil },
	})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, err := loader.LoadArticle(context.Background(), path); err != boom {
		t.Fatalf("expected renderer error returned as is, got %v", err)
	}

	loader, err = NewLoader(LoaderConfig{
		Renderer:  failingRenderer{},
		Permalink: func(*Article) (string, error) { return "", boom },
	})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, err := loader.LoadArticle(context.Background(), path); err != boom {
		t.Fatalf("expected permalink error returned as is, got %v", err)
	}
}

func TestNewLoaderValidation(t *testing.T) {
	_, err := NewLoader(LoaderConfig{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestLoadArticlesDuplicatePatterns(t *testing.T) {
	loader := newTestLoader(t, nil)
	pattern := "testdata/fixtures/no-date.md"

	articles, err := loader.LoadArticles(context.Background(), []string{pattern, pattern})
	if err != nil {
		t.Fatalf("load articles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected duplicates kept, got %d articles", len(articles))
	}
	if articles[0] == articles[1] {
		t.Fatalf("expected distinct records per match")
	}
	if articles[0].Next != articles[1] || articles[1].Previous != articles[0] {
		t.Fatalf("expected duplicates linked in order")
	}
}

func TestLoadArticlesContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLoader(t, nil).LoadArticles(ctx, []string{"testdata/fixtures/*.md"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
