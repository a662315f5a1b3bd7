package ledger

import "github.com/shopspring/decimal"

// TaxProjection is derived from the transaction collection and never
// stored; see pkg/tax for the O.E. formula.
type TaxProjection struct {
	Year           int             `json:"year"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TaxableIncome  decimal.Decimal `json:"taxableIncome"`
	CurrentYearTax decimal.Decimal `json:"currentYearTax"`
	AdvancePayment decimal.Decimal `json:"advancePayment"`
	EstimatedTax   decimal.Decimal `json:"estimatedTax"`
	IncomeCount    int             `json:"incomeCount"`
	ExpenseCount   int             `json:"expenseCount"`
}

// MonthlyTotals is one of twelve calendar-month buckets. Bucketing ignores
// the year: multi-year collections collapse into the same twelve buckets.
type MonthlyTotals struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
