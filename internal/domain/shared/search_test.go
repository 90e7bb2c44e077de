package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type contactRow struct {
	name, phone, email string
}

func (r contactRow) SearchKeys() []string {
	return []string{r.name, r.phone, r.email}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		values []string
		want   bool
	}{
		{"empty query matches", "", []string{"anything"}, true},
		{"empty query matches no values", "", nil, true},
		{"case insensitive", "DAVID", []string{"david@example.com"}, true},
		{"substring of second key", "555", []string{"Ruth", "053-5557777"}, true},
		{"no match", "zzz", []string{"Ruth", "053-5557777"}, false},
		{"no values", "a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(tt.query, tt.values...))
		})
	}
}

func TestFilterBySearch(t *testing.T) {
	rows := []contactRow{
		{"Israel Israeli", "050-1234567", "israel@example.com"},
		{"Michal Levi", "052-7654321", "michal@example.com"},
		{"David Cohen", "054-9876543", "david@example.com"},
	}

	t.Run("empty query returns all rows", func(t *testing.T) {
		assert.Equal(t, rows, FilterBySearch(rows, ""))
	})

	t.Run("matches any key", func(t *testing.T) {
		got := FilterBySearch(rows, "LEVI")
		assert.Len(t, got, 1)
		assert.Equal(t, "Michal Levi", got[0].name)

		got = FilterBySearch(rows, "-98")
		assert.Len(t, got, 1)
		assert.Equal(t, "David Cohen", got[0].name)
	})

	t.Run("result is exactly the matching subset", func(t *testing.T) {
		got := FilterBySearch(rows, "example.com")
		assert.Equal(t, rows, got)

		for _, q := range []string{"a", "05", "el", "x"} {
			got := FilterBySearch(rows, q)
			var want []contactRow
			for _, r := range rows {
				if MatchesQuery(q, r.name, r.phone, r.email) {
					want = append(want, r)
				}
			}
			assert.ElementsMatch(t, want, got, "query %q", q)
		}
	})
}
