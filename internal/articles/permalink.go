package articles

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
)

var datePlaceholders = []string{":year", ":month", ":day"}

// PermalinkPattern builds a PermalinkFunc from a path template. Supported
// placeholders are :id, :slug, :filename, :year, :month and :day. Date
// placeholders fail with ErrPermalinkNoDate for undated articles.
func PermalinkPattern(pattern string) (PermalinkFunc, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, loaderConfigError(ErrPermalinkPattern)
	}

	needsDate := false
	for _, placeholder := range datePlaceholders {
		if strings.Contains(pattern, placeholder) {
			needsDate = true
			break
		}
	}

	return func(article *Article) (string, error) {
		if needsDate && !article.HasDate() {
			return "", fmt.Errorf("%w: %s", ErrPermalinkNoDate, article.FileName)
		}

		slugged, err := slug.Normalize(article.ID)
		if err != nil {
			return "", fmt.Errorf("articles: slug %q: %w", article.ID, err)
		}

		pairs := []string{
			":filename", strings.TrimSuffix(article.FileName, extension(article.FileName)),
			":slug", slugged,
			":id", article.ID,
		}
		if article.HasDate() {
			date := article.Date
			pairs = append(pairs,
				":year", fmt.Sprintf("%04d", date.Year()),
				":month", fmt.Sprintf("%02d", int(date.Month())),
				":day", fmt.Sprintf("%02d", date.Day()),
			)
		}
		return strings.NewReplacer(pairs...).Replace(pattern), nil
	}, nil
}

func extension(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		return name[idx:]
	}
	return ""
}
