package report

import (
	"github.com/bizdash/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// ValuePoint is one bar or slice of a money chart
type ValuePoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CountPoint is one bar of a count chart
type CountPoint struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ClientStats is the clients card
type ClientStats struct {
	Active int `json:"active"`
	Total  int `json:"total"`
}

// FinanceStats is the finances card and chart
type FinanceStats struct {
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Net              decimal.Decimal `json:"net"`
	NetFormatted     string          `json:"net_formatted"`
	IncomeFormatted  string          `json:"income_formatted"`
	ExpenseFormatted string          `json:"expense_formatted"`
	Trend            string          `json:"trend"`
	TrendPercentage  decimal.Decimal `json:"trend_percentage"`
	TrendLabel       string          `json:"trend_label"`
	Series           []ValuePoint    `json:"series"`
}

// InventoryStats is the inventory card and category chart
type InventoryStats struct {
	TotalValue          decimal.Decimal `json:"total_value"`
	TotalValueFormatted string          `json:"total_value_formatted"`
	ItemCount           int64           `json:"item_count"`
	LowStockCount       int             `json:"low_stock_count"`
	ByCategory          []ValuePoint    `json:"by_category"`
}

// TaskStats is the tasks card
type TaskStats struct {
	Open  int `json:"open"`
	Total int `json:"total"`
}

// OrderStats is the orders card and status chart
type OrderStats struct {
	Pending    int          `json:"pending"`
	Processing int          `json:"processing"`
	Completed  int          `json:"completed"`
	Total      int          `json:"total"`
	Series     []CountPoint `json:"series"`
}

// EmployeeStats is the employees card
type EmployeeStats struct {
	Count                       int             `json:"count"`
	TotalMonthlySalary          decimal.Decimal `json:"total_monthly_salary"`
	TotalMonthlySalaryFormatted string          `json:"total_monthly_salary_formatted"`
}

// ProjectionStats is the projected monthly income
type ProjectionStats struct {
	MonthlyIncome          decimal.Decimal `json:"monthly_income"`
	MonthlyIncomeFormatted string          `json:"monthly_income_formatted"`
}

// SummaryResponse is the dashboard payload. Collections that failed to
// load are reported empty and listed in Degraded.
type SummaryResponse struct {
	Clients    ClientStats     `json:"clients"`
	Finance    FinanceStats    `json:"finance"`
	Inventory  InventoryStats  `json:"inventory"`
	Tasks      TaskStats       `json:"tasks"`
	Orders     OrderStats      `json:"orders"`
	Projection ProjectionStats `json:"projection"`
	Employees  EmployeeStats   `json:"employees"`
	Currency   string          `json:"currency"`
	Degraded   []string        `json:"degraded"`
}

func toSummaryResponse(s report.Summary, money *MoneyFormatter) SummaryResponse {
	resp := SummaryResponse{
		Clients: ClientStats{Active: s.Clients.Active, Total: s.Clients.Total},
		Finance: FinanceStats{
			Income:           s.Finance.Income,
			Expense:          s.Finance.Expense,
			Net:              s.Finance.Net,
			IncomeFormatted:  money.Format(s.Finance.Income),
			ExpenseFormatted: money.Format(s.Finance.Expense),
			NetFormatted:     money.Format(s.Finance.Net),
			Trend:            string(s.Finance.Trend.Direction),
			TrendPercentage:  s.Finance.Trend.Percentage.Round(1),
			TrendLabel:       s.Finance.Trend.Label(),
			Series:           make([]ValuePoint, len(s.Finance.Series)),
		},
		Inventory: InventoryStats{
			TotalValue:          s.Inventory.TotalValue,
			TotalValueFormatted: money.Format(s.Inventory.TotalValue),
			ItemCount:           s.Inventory.ItemCount,
			LowStockCount:       s.Inventory.LowStockCount,
			ByCategory:          make([]ValuePoint, len(s.Inventory.ByCategory)),
		},
		Tasks: TaskStats{Open: s.Tasks.Open, Total: s.Tasks.Total},
		Orders: OrderStats{
			Pending:    s.Orders.Pending,
			Processing: s.Orders.Processing,
			Completed:  s.Orders.Completed,
			Total:      s.Orders.Total,
			Series:     make([]CountPoint, len(s.Orders.Series)),
		},
		Projection: ProjectionStats{
			MonthlyIncome:          s.MonthlyIncomeProjection,
			MonthlyIncomeFormatted: money.Format(s.MonthlyIncomeProjection),
		},
		Employees: EmployeeStats{
			Count:                       s.Employees.Count,
			TotalMonthlySalary:          s.Employees.TotalMonthlySalary,
			TotalMonthlySalaryFormatted: money.Format(s.Employees.TotalMonthlySalary),
		},
		Degraded: []string{},
	}
	for i, p := range s.Finance.Series {
		resp.Finance.Series[i] = ValuePoint{Name: p.Name, Value: p.Value}
	}
	for i, p := range s.Inventory.ByCategory {
		resp.Inventory.ByCategory[i] = ValuePoint{Name: p.Name, Value: p.Value}
	}
	for i, p := range s.Orders.Series {
		resp.Orders.Series[i] = CountPoint{Name: p.Name, Count: p.Count}
	}
	return resp
}
