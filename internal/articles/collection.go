package articles

import "slices"

// Reverse returns a reversed copy of articles. Previous and Next keep
// pointing at discovery-order neighbours.
func Reverse(articles []*Article) []*Article {
	out := slices.Clone(articles)
	slices.Reverse(out)
	return out
}

// Lookup indexes articles by file name. When two entries share a file name
// the later one wins.
func Lookup(articles []*Article) map[string]*Article {
	out := make(map[string]*Article, len(articles))
	for _, article := range articles {
		if article == nil {
			continue
		}
		out[article.FileName] = article
	}
	return out
}

// YearGroup holds the articles published in one year. Year is 0 for the
// group of undated articles.
type YearGroup struct {
	Year     int
	Articles []*Article
}

// GroupByYear buckets articles by publication year in order of first
// appearance, keeping the input order inside each bucket. Undated articles
// are collected in a trailing group.
func GroupByYear(articles []*Article) []YearGroup {
	var (
		groups  []YearGroup
		index   = map[int]int{}
		undated []*Article
	)
	for _, article := range articles {
		if article == nil {
			continue
		}
		if !article.HasDate() {
			undated = append(undated, article)
			continue
		}
		year := article.Date.Year()
		pos, ok := index[year]
		if !ok {
			pos = len(groups)
			index[year] = pos
			groups = append(groups, YearGroup{Year: year})
		}
		groups[pos].Articles = append(groups[pos].Articles, article)
	}
	if len(undated) > 0 {
		groups = append(groups, YearGroup{Articles: undated})
	}
	return groups
}

// ByYear adapts GroupByYear to a GroupFunc.
func ByYear(articles []*Article) any {
	return GroupByYear(articles)
}

var _ GroupFunc = ByYear
