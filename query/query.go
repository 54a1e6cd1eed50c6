// Package query implements the shared list pipeline: exact filter, then
// case-insensitive substring search, then a stable newest-first sort, then
// pagination. Enrichment (joined fields) is done by callers on the returned
// page only.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const maxLimit = 100

// Params are the parsed list query parameters.
type Params struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Pagination is the metadata reported alongside every list response. Totals
// are computed from the filtered set before pagination.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Source describes how the pipeline reads an entity. Nil accessors disable
// the corresponding stage.
type Source[T any] struct {
	Category  func(T) string
	Fields    func(T) []string
	CreatedAt func(T) time.Time
}

// ParseParams parses raw query values leniently: non-numeric page/limit fall
// back to defaults, an empty search means no filtering and the literal
// category "all" is treated as absent.
func ParseParams(category, search, pageStr, limitStr string, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit, Search: strings.TrimSpace(search)}
	if c := strings.TrimSpace(category); c != "" && c != "all" {
		p.Category = c
	}
	if n, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && n > 0 && n <= maxLimit {
		p.Limit = n
	}
	return p
}

// Filter returns the items for which keep is true, without mutating items.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// MatchesSearch reports whether any field contains term, case-insensitively.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Run applies the full pipeline and returns the page slice plus pagination
// metadata. Out-of-range pages yield an empty slice, never an error. Sorting
// is stable so insertion order survives equal timestamps.
func Run[T any](items []T, p Params, src Source[T]) ([]T, Pagination) {
	out := items
	if p.Category != "" && src.Category != nil {
		out = Filter(out, func(v T) bool { return src.Category(v) == p.Category })
	}
	if p.Search != "" && src.Fields != nil {
		out = Filter(out, func(v T) bool { return MatchesSearch(p.Search, src.Fields(v)...) })
	}
	if src.CreatedAt != nil {
		sorted := make([]T, len(out))
		copy(sorted, out)
		sort.SliceStable(sorted, func(i, j int) bool {
			return src.CreatedAt(sorted[i]).After(src.CreatedAt(sorted[j]))
		})
		out = sorted
	}

	total := len(out)
	if p.Limit <= 0 {
		// Unpaginated callers get everything as one page.
		p.Limit = total
		if p.Limit == 0 {
			p.Limit = 1
		}
	}
	meta := Pagination{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: (total + p.Limit - 1) / p.Limit,
	}
	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []T{}, meta
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return out[start:end], meta
}
