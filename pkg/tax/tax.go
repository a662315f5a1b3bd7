// Package tax models the Greek O.E. (general partnership) projection:
// 20% tax on taxable income, an 80% advance on next year, and the flat
// annual business fee.
package tax

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarag/oebooks/pkg/ledger"
)

var (
	taxRate     = decimal.NewFromFloat(0.20)
	advanceRate = decimal.NewFromFloat(0.80)
	businessFee = decimal.NewFromInt(800)
)

// Project derives the projection from the full transaction collection.
// Gross amounts are authoritative; net and VAT never participate.
func Project(transactions []*ledger.Transaction, year int) *ledger.TaxProjection {
	projection := &ledger.TaxProjection{
		Year:          year,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case ledger.TypeIncome:
			projection.TotalIncome = projection.TotalIncome.Add(tx.GrossAmount)
			projection.IncomeCount++
		case ledger.TypeExpense:
			projection.TotalExpenses = projection.TotalExpenses.Add(tx.GrossAmount)
			projection.ExpenseCount++
		}
	}

	taxable := projection.TotalIncome.Sub(projection.TotalExpenses)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	projection.TaxableIncome = taxable
	projection.CurrentYearTax = taxable.Mul(taxRate)
	projection.AdvancePayment = projection.CurrentYearTax.Mul(advanceRate)
	projection.EstimatedTax = projection.CurrentYearTax.
		Add(projection.AdvancePayment).
		Add(businessFee)

	return projection
}

// MonthlyBreakdown buckets every transaction into one of twelve calendar
// months by the month component of its date, ignoring the year. Records
// with unparseable dates are skipped, not fatal.
func MonthlyBreakdown(
	ctx context.Context,
	transactions []*ledger.Transaction,
) []ledger.MonthlyTotals {
	buckets := make([]ledger.MonthlyTotals, 12)
	for i := range buckets {
		buckets[i] = ledger.MonthlyTotals{
			Month:    time.Month(i + 1).String()[:3],
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	for _, tx := range transactions {
		date, err := time.Parse(time.DateOnly, tx.Date)
		if err != nil {
			zerolog.Ctx(ctx).Warn().
				Str("date", tx.Date).
				Str("id", tx.ID).
				Msg("skipping transaction with unparseable date")

			continue
		}

		bucket := &buckets[int(date.Month())-1]

		switch tx.Type {
		case ledger.TypeIncome:
			bucket.Income = bucket.Income.Add(tx.GrossAmount)
		case ledger.TypeExpense:
			bucket.Expenses = bucket.Expenses.Add(tx.GrossAmount)
		}
	}

	return buckets
}
