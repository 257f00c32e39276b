package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-mvb/internal/articles"
	"github.com/goliatone/go-mvb/internal/logging"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

var (
	ErrOutputDirRequired = errors.New("site: output directory is required")
	ErrOutsideBase       = errors.New("site: file path escapes its base directory")
)

// Writer persists rendered pages.
type Writer interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, path string, data []byte) error
}

// DirWriter writes pages to the local filesystem.
type DirWriter struct{}

func (DirWriter) EnsureDir(_ context.Context, dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (DirWriter) WriteFile(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// BuilderConfig configures NewBuilder.
type BuilderConfig struct {
	OutputDir string
	// Writer defaults to DirWriter.
	Writer Writer
	Logger interfaces.Logger
}

// Builder renders processed files as pongo2 templates.
type Builder struct {
	outputDir string
	writer    Writer
	logger    interfaces.Logger
}

// BuildResult reports what a build wrote.
type BuildResult struct {
	Written  []string
	Duration time.Duration
}

func NewBuilder(cfg BuilderConfig) (*Builder, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}
	writer := cfg.Writer
	if writer == nil {
		writer = DirWriter{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Builder{
		outputDir: filepath.Clean(cfg.OutputDir),
		writer:    writer,
		logger:    logger,
	}, nil
}

// Render executes the file contents as a template with the file data as
// context.
func (b *Builder) Render(file *File) ([]byte, error) {
	tpl, err := pongo2.FromBytes(file.Contents)
	if err != nil {
		return nil, fmt.Errorf("site: parse template %s: %w", file.Path, err)
	}
	out, err := tpl.ExecuteBytes(pongo2.Context(file.Data))
	if err != nil {
		return nil, fmt.Errorf("site: render %s: %w", file.Path, err)
	}
	return out, nil
}

// OutputPath maps file to its destination under the output directory.
func (b *Builder) OutputPath(file *File) (string, error) {
	base := file.Base
	if strings.TrimSpace(base) == "" {
		base = "."
	}
	rel, err := filepath.Rel(base, file.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideBase, file.Path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBase, file.Path)
	}
	return filepath.Join(b.outputDir, rel), nil
}

// Build renders and writes every file. The first failure stops the build.
func (b *Builder) Build(ctx context.Context, files []*File) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}
	dirs := map[string]struct{}{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		target, err := b.OutputPath(file)
		if err != nil {
			return result, err
		}
		html, err := b.Render(file)
		if err != nil {
			return result, err
		}

		dir := filepath.Dir(target)
		if _, ok := dirs[dir]; !ok {
			if err := b.writer.EnsureDir(ctx, dir); err != nil {
				return result, fmt.Errorf("site: create %s: %w", dir, err)
			}
			dirs[dir] = struct{}{}
		}
		if err := b.writer.WriteFile(ctx, target, html); err != nil {
			return result, fmt.Errorf("site: write %s: %w", target, err)
		}

		b.logger.Debug("page written", "source", file.Path, "target", target)
		result.Written = append(result.Written, target)
	}

	result.Duration = time.Since(start)
	b.logger.Info("site built", "pages", len(result.Written), "output_dir", b.outputDir, "duration", result.Duration)
	return result, nil
}

// ReadFiles expands patterns into pipeline files rooted at base.
func ReadFiles(patterns []string, base string) ([]*File, error) {
	paths, err := articles.FindFiles(patterns)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("site: read %s: %w", path, err)
		}
		files = append(files, &File{
			Path:     path,
			Base:     base,
			Contents: contents,
		})
	}
	return files, nil
}
