package articles

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

const globMeta = `*?[{\`

// FindFiles expands every pattern into the regular files it matches and
// concatenates the results in pattern order. Matches of one pattern are
// sorted lexically; files matched by several patterns appear once per
// pattern. A pattern without meta characters names a single file.
func FindFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := expandPattern(pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

func expandPattern(pattern string) ([]string, error) {
	base, rest := splitPattern(filepath.ToSlash(pattern))
	root := filepath.FromSlash(base)

	if rest == "" {
		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fileAccessError(root, err)
		}
		if !info.Mode().IsRegular() {
			return nil, nil
		}
		return []string{root}, nil
	}

	var matchers []glob.Glob
	for _, variant := range globstarVariants(rest) {
		matcher, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, globError(pattern, err)
		}
		matchers = append(matchers, matcher)
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fileAccessError(root, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	maxDepth := -1
	if !strings.Contains(rest, "**") {
		maxDepth = strings.Count(rest, "/") + 1
	}
	allowHidden := strings.HasPrefix(rest, ".") || strings.Contains(rest, "/.")

	var matches []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if !allowHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if maxDepth > 0 && strings.Count(rel, "/")+1 >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !matchAny(matchers, rel) || !isRegular(path, d) {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if walkErr != nil {
		return nil, fileAccessError(root, walkErr)
	}

	sort.Strings(matches)
	return matches, nil
}

// splitPattern separates the leading directory segments without meta
// characters from the remainder of the pattern.
func splitPattern(pattern string) (string, string) {
	segments := strings.Split(pattern, "/")
	for i, segment := range segments {
		if strings.ContainsAny(segment, globMeta) {
			base := strings.Join(segments[:i], "/")
			switch {
			case base == "" && i > 0:
				base = "/"
			case base == "":
				base = "."
			}
			return base, strings.Join(segments[i:], "/")
		}
	}
	return pattern, ""
}

// globstarVariants lets every "**/" segment also match zero directories.
func globstarVariants(pattern string) []string {
	idx := strings.Index(pattern, "**/")
	if idx < 0 || (idx > 0 && pattern[idx-1] != '/') {
		return []string{pattern}
	}
	head, tail := pattern[:idx], pattern[idx+len("**/"):]
	var out []string
	for _, rest := range globstarVariants(tail) {
		out = append(out, head+"**/"+rest, head+rest)
	}
	return out
}

func matchAny(matchers []glob.Glob, name string) bool {
	for _, matcher := range matchers {
		if matcher.Match(name) {
			return true
		}
	}
	return false
}

func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
