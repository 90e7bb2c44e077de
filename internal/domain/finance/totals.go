package finance

import "github.com/shopspring/decimal"

// Totals summarises a set of ledger entries
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ComputeTotals sums income and expense and derives net = income - expense
func ComputeTotals(txs []Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for i := range txs {
		if txs[i].IsIncome() {
			income = income.Add(txs[i].Amount)
		} else {
			expense = expense.Add(txs[i].Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
