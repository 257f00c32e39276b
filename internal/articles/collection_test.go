package articles

import (
	"testing"
	"time"
)

func chain(articles ...*Article) []*Article {
	for i := 1; i < len(articles); i++ {
		articles[i-1].Next = articles[i]
		articles[i].Previous = articles[i-1]
	}
	return articles
}

func dated(name string, year int) *Article {
	return &Article{
		ID:       name,
		FileName: name + ".md",
		Date:     time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReverseKeepsLinks(t *testing.T) {
	a, b, c := dated("a", 2017), dated("b", 2018), dated("c", 2019)
	original := chain(a, b, c)

	reversed := Reverse(original)
	if reversed[0] != c || reversed[1] != b || reversed[2] != a {
		t.Fatalf("unexpected order %v", []string{reversed[0].ID, reversed[1].ID, reversed[2].ID})
	}
	if original[0] != a {
		t.Fatalf("expected input left untouched")
	}
	if c.Previous != b || c.Next != nil || a.Next != b {
		t.Fatalf("expected discovery-order links preserved")
	}
}

func TestLookup(t *testing.T) {
	a, b := dated("a", 2017), dated("b", 2018)
	duplicate := &Article{ID: "a2", FileName: "a.md"}

	index := Lookup([]*Article{a, b, duplicate})
	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if index["b.md"] != b {
		t.Fatalf("expected lookup by file name")
	}
	if index["a.md"] != duplicate {
		t.Fatalf("expected later duplicate to win")
	}
}

func TestGroupByYear(t *testing.T) {
	undated := &Article{ID: "u", FileName: "u.md"}
	articles := []*Article{dated("a", 2019), undated, dated("b", 2018), dated("c", 2019)}

	groups := GroupByYear(articles)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Year != 2019 || len(groups[0].Articles) != 2 || groups[0].Articles[1].ID != "c" {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[1].Year != 2018 || len(groups[1].Articles) != 1 {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
	if groups[2].Year != 0 || groups[2].Articles[0] != undated {
		t.Fatalf("expected trailing undated group, got %+v", groups[2])
	}

	if _, ok := ByYear(articles).([]YearGroup); !ok {
		t.Fatalf("expected ByYear to return []YearGroup")
	}
}
