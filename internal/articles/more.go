package articles

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MoreAnchor replaces the first more marker in rendered content.
const MoreAnchor = `<div id="more"></div>`

var moreMarker = regexp.MustCompile(`(?i)<!-- more -->`)

// splitMore locates the more marker in rendered HTML. The first marker is
// replaced with MoreAnchor and any later ones are dropped. A marker at
// offset 0 is reported as not found and the content is returned untouched.
func splitMore(content string) (string, string, bool) {
	loc := moreMarker.FindStringIndex(content)
	if loc == nil || loc[0] == 0 {
		return content, "", false
	}

	teaser := content[:loc[0]]
	rest := moreMarker.ReplaceAllString(content[loc[1]:], "")

	var b strings.Builder
	b.Grow(len(content))
	b.WriteString(teaser)
	b.WriteString(MoreAnchor)
	b.WriteString(rest)
	return b.String(), teaser, true
}

// plainText strips tags from an HTML fragment, decodes entities and trims
// surrounding whitespace.
func plainText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}
