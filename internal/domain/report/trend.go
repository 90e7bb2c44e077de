package report

import (
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// TrendDirection is the sign of net income
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

// Trend is the direction and relative size of net income
type Trend struct {
	Direction  TrendDirection
	Percentage decimal.Decimal
}

// Label renders the percentage with one decimal, e.g. "60.0%"
func (t Trend) Label() string {
	return t.Percentage.StringFixed(1) + "%"
}

// ComputeTrend returns up when net >= 0, and |net| / income × 100 as the magnitude.
// A zero income is replaced by 1 as the denominator.
func ComputeTrend(totals finance.Totals) Trend {
	direction := TrendUp
	if totals.Net.IsNegative() {
		direction = TrendDown
	}

	denominator := totals.Income
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}

	return Trend{
		Direction:  direction,
		Percentage: totals.Net.Abs().Div(denominator).Mul(decimal.NewFromInt(100)),
	}
}
