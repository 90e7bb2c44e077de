package report

import (
	"github.com/bizdash/backend/internal/domain/client"
	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/domain/finance"
	"github.com/bizdash/backend/internal/domain/inventory"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/shopspring/decimal"
)

// ProjectionMonths is the divisor of the monthly income projection
const ProjectionMonths = 3

// Snapshot is the full set of owner records a summary is computed from
type Snapshot struct {
	Clients      []client.Client
	Transactions []finance.Transaction
	Items        []inventory.Item
	Tasks        []task.Task
	Orders       []order.Order
	Employees    []employee.Employee
}

// ValuePoint is one slice of a money chart
type ValuePoint struct {
	Name  string
	Value decimal.Decimal
}

// CountPoint is one bar of a count chart
type CountPoint struct {
	Name  string
	Count int
}

// ClientStats counts clients
type ClientStats struct {
	Active int
	Total  int
}

// FinanceStats summarises the ledger
type FinanceStats struct {
	finance.Totals
	Trend  Trend
	Series []ValuePoint
}

// InventoryStats summarises stock value
type InventoryStats struct {
	TotalValue    decimal.Decimal
	ItemCount     int64
	LowStockCount int
	ByCategory    []ValuePoint
}

// TaskStats counts tasks
type TaskStats struct {
	Open  int
	Total int
}

// OrderStats counts orders by status
type OrderStats struct {
	order.StatusCounts
	Total  int
	Series []CountPoint
}

// EmployeeStats summarises payroll
type EmployeeStats struct {
	Count              int
	TotalMonthlySalary decimal.Decimal
}

// Summary is the reporting page read model
type Summary struct {
	Clients                 ClientStats
	Finance                 FinanceStats
	Inventory               InventoryStats
	Tasks                   TaskStats
	Orders                  OrderStats
	MonthlyIncomeProjection decimal.Decimal
	Employees               EmployeeStats
}

// Summarize derives every reporting metric from a snapshot
func Summarize(s Snapshot) Summary {
	var out Summary

	out.Clients.Total = len(s.Clients)
	for i := range s.Clients {
		if s.Clients[i].IsActive {
			out.Clients.Active++
		}
	}

	totals := finance.ComputeTotals(s.Transactions)
	out.Finance = FinanceStats{
		Totals: totals,
		Trend:  ComputeTrend(totals),
		Series: []ValuePoint{
			{Name: "Income", Value: totals.Income},
			{Name: "Expense", Value: totals.Expense},
		},
	}

	valuation := inventory.Valuate(s.Items)
	out.Inventory = InventoryStats{
		TotalValue:    valuation.TotalValue,
		ItemCount:     valuation.ItemCount,
		LowStockCount: valuation.LowStockCount,
		ByCategory:    make([]ValuePoint, 0, len(valuation.ByCategory)),
	}
	for _, c := range valuation.ByCategory {
		out.Inventory.ByCategory = append(out.Inventory.ByCategory, ValuePoint{Name: c.Category, Value: c.Value})
	}

	out.Tasks.Total = len(s.Tasks)
	for i := range s.Tasks {
		if s.Tasks[i].IsOpen() {
			out.Tasks.Open++
		}
	}

	counts := order.CountByStatus(s.Orders)
	out.Orders = OrderStats{
		StatusCounts: counts,
		Total:        len(s.Orders),
		Series: []CountPoint{
			{Name: string(order.StatusPending), Count: counts.Pending},
			{Name: string(order.StatusProcessing), Count: counts.Processing},
			{Name: string(order.StatusCompleted), Count: counts.Completed},
		},
	}

	out.MonthlyIncomeProjection = MonthlyProjection(totals.Income)

	out.Employees = EmployeeStats{
		Count:              len(s.Employees),
		TotalMonthlySalary: employee.TotalMonthlySalary(s.Employees),
	}

	return out
}

// MonthlyProjection is income averaged over a trailing quarter
func MonthlyProjection(income decimal.Decimal) decimal.Decimal {
	return income.Div(decimal.NewFromInt(ProjectionMonths))
}
