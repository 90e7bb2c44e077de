package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberGenerator produces order numbers of the form ORD-<year>-<NNN>
type NumberGenerator struct {
	now    func() time.Time
	suffix func() int
}

// NewNumberGenerator returns a generator backed by the wall clock and math/rand
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{
		now:    time.Now,
		suffix: func() int { return rand.IntN(1000) },
	}
}

// NewNumberGeneratorWith returns a generator with injected clock and suffix source
func NewNumberGeneratorWith(now func() time.Time, suffix func() int) *NumberGenerator {
	return &NumberGenerator{now: now, suffix: suffix}
}

// Next returns a new order number. Numbers are not guaranteed unique.
func (g *NumberGenerator) Next() string {
	return FormatNumber(g.now().Year(), g.suffix())
}

// FormatNumber renders ORD-<year>-<suffix padded to 3 digits>
func FormatNumber(year, suffix int) string {
	return fmt.Sprintf("ORD-%d-%03d", year, suffix)
}
