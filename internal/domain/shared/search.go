package shared

import "strings"

// Searchable exposes the text fields a list search matches against
type Searchable interface {
	SearchKeys() []string
}

// MatchesQuery reports whether the lower-cased query is a substring of at
// least one lower-cased value. An empty query matches everything.
func MatchesQuery(query string, values ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// FilterBySearch keeps the items whose search keys match query, preserving order
func FilterBySearch[T Searchable](items []T, query string) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesQuery(query, item.SearchKeys()...) {
			out = append(out, item)
		}
	}
	return out
}
