package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFormatter_Format(t *testing.T) {
	usd, err := NewMoneyFormatter("USD", "en-US")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"positive with grouping", "1234.5", "$ 1,234.50"},
		{"zero", "0", "$ 0.00"},
		{"negative puts the sign before the symbol", "-600", "-$ 600.00"},
		{"negative with grouping", "-5200.456", "-$ 5,200.46"},
		{"rounds to zero without a sign", "-0.001", "$ 0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usd.Format(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestMoneyFormatter_ShekelNegative(t *testing.T) {
	ils, err := NewMoneyFormatter("ILS", "he-IL")
	require.NoError(t, err)

	got := ils.Format(decimal.NewFromInt(-600))
	assert.True(t, strings.HasPrefix(got, "-₪ "), got)
	assert.NotContains(t, got, " -")
	assert.Contains(t, got, "600.00")
}
