package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name     string
	category string
	body     string
	created  time.Time
}

func itemSource() Source[item] {
	return Source[item]{
		Category:  func(v item) string { return v.category },
		Fields:    func(v item) []string { return []string{v.name, v.body} },
		CreatedAt: func(v item) time.Time { return v.created },
	}
}

func makeItems(n int, category string) []item {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, item{
			name:     string(rune('a' + i%26)),
			category: category,
			created:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	return items
}

func TestParseParamsDefaults(t *testing.T) {
	p := ParseParams("", "", "", "", 10)
	assert.Equal(t, Params{Page: 1, Limit: 10}, p)
}

func TestParseParamsLenient(t *testing.T) {
	p := ParseParams("all", "  ", "abc", "-5", 10)
	assert.Equal(t, "", p.Category, "literal all means no category filter")
	assert.Equal(t, "", p.Search)
	assert.Equal(t, 1, p.Page, "non-numeric page falls back to default")
	assert.Equal(t, 10, p.Limit, "negative limit falls back to default")

	p = ParseParams("party", "netflix", "3", "25", 10)
	assert.Equal(t, Params{Category: "party", Search: "netflix", Page: 3, Limit: 25}, p)

	p = ParseParams("", "", "1", "500", 10)
	assert.Equal(t, 10, p.Limit, "limit above the cap falls back to default")
}

func TestRunSortsNewestFirst(t *testing.T) {
	items := makeItems(5, "free")
	page, meta := Run(items, Params{Page: 1, Limit: 10}, itemSource())

	require.Len(t, page, 5)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].created.After(page[i-1].created))
	}
}

func TestRunStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []item{
		{name: "first", created: ts},
		{name: "second", created: ts},
		{name: "third", created: ts},
	}
	page, _ := Run(items, Params{Page: 1, Limit: 10}, itemSource())

	require.Len(t, page, 3)
	assert.Equal(t, "first", page[0].name)
	assert.Equal(t, "second", page[1].name)
	assert.Equal(t, "third", page[2].name)
}

func TestRunFilterAndSearchCompose(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []item{
		{name: "Netflix party", category: "party", created: base},
		{name: "Watcha review", category: "review", created: base.Add(time.Minute)},
		{name: "netflix deal", category: "party", body: "cheap", created: base.Add(2 * time.Minute)},
	}

	page, meta := Run(items, Params{Category: "party", Search: "NETFLIX", Page: 1, Limit: 10}, itemSource())
	require.Len(t, page, 2)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, "netflix deal", page[0].name)

	// search matches if any field contains the term
	page, _ = Run(items, Params{Search: "cheap", Page: 1, Limit: 10}, itemSource())
	require.Len(t, page, 1)
	assert.Equal(t, "netflix deal", page[0].name)
}

func TestRunPaginationWindow(t *testing.T) {
	items := makeItems(25, "free")

	page, meta := Run(items, Params{Page: 2, Limit: 10}, itemSource())
	assert.Len(t, page, 10)
	assert.Equal(t, Pagination{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, meta)

	// last partial page
	page, meta = Run(items, Params{Page: 3, Limit: 10}, itemSource())
	assert.Len(t, page, 5)
	assert.Equal(t, 3, meta.TotalPages)

	// out of range yields empty slice, not an error
	page, meta = Run(items, Params{Page: 9, Limit: 10}, itemSource())
	assert.Empty(t, page)
	assert.Equal(t, 25, meta.Total)
}

func TestRunIdempotent(t *testing.T) {
	items := makeItems(12, "free")
	p := Params{Page: 1, Limit: 5, Search: ""}

	first, firstMeta := Run(items, p, itemSource())
	second, secondMeta := Run(items, p, itemSource())
	assert.Equal(t, first, second)
	assert.Equal(t, firstMeta, secondMeta)
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("flix", "Netflix", ""))
	assert.True(t, MatchesSearch("NET", "netflix"))
	assert.False(t, MatchesSearch("disney", "Netflix", "movies"))
}
