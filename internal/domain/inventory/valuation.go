package inventory

import "github.com/shopspring/decimal"

// UnspecifiedCategory is the bucket for items without a category
const UnspecifiedCategory = "unspecified"

// CategoryValue is the stock value of one category
type CategoryValue struct {
	Category string
	Value    decimal.Decimal
}

// Valuation is the stock value of a set of items
type Valuation struct {
	TotalValue    decimal.Decimal
	ItemCount     int64
	LowStockCount int
	ByCategory    []CategoryValue
}

// Valuate computes total value, Σ quantity and the per-category breakdown.
// The category buckets always sum to TotalValue.
func Valuate(items []Item) Valuation {
	v := Valuation{TotalValue: decimal.Zero, ByCategory: []CategoryValue{}}
	buckets := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range items {
		value := items[i].Value()
		v.TotalValue = v.TotalValue.Add(value)
		v.ItemCount += items[i].Quantity
		if items[i].IsLowStock() {
			v.LowStockCount++
		}

		category := items[i].Category
		if category == "" {
			category = UnspecifiedCategory
		}
		if _, ok := buckets[category]; !ok {
			order = append(order, category)
			buckets[category] = decimal.Zero
		}
		buckets[category] = buckets[category].Add(value)
	}

	// buckets keep first-seen order
	for _, c := range order {
		v.ByCategory = append(v.ByCategory, CategoryValue{Category: c, Value: buckets[c]})
	}
	return v
}
