// Package printer renders plain-text dashboard summaries: the tax
// projection, the monthly table and the latest arrivals.
package printer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vkarag/oebooks/pkg/ledger"
)

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Dashboard(
	projection *ledger.TaxProjection,
	monthly []ledger.MonthlyTotals,
	newTxs []*ledger.Transaction,
) string {
	var sb strings.Builder

	sb.WriteString(p.Projection(projection))
	sb.WriteString("\n")
	sb.WriteString(p.Monthly(monthly))

	if len(newTxs) > 0 {
		sb.WriteString("\n")
		sb.WriteString(p.NewTransactions(newTxs))
	}

	return sb.String()
}

func (p *Printer) Projection(projection *ledger.TaxProjection) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("O.E. tax projection %d\n", projection.Year))
	sb.WriteString(fmt.Sprintf("Income:    %s EUR (%d records)\n",
		projection.TotalIncome.StringFixed(2), projection.IncomeCount))
	sb.WriteString(fmt.Sprintf("Expenses:  %s EUR (%d records)\n",
		projection.TotalExpenses.StringFixed(2), projection.ExpenseCount))
	sb.WriteString(fmt.Sprintf("Taxable:   %s EUR\n", projection.TaxableIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Tax (20%%): %s EUR\n", projection.CurrentYearTax.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Advance:   %s EUR\n", projection.AdvancePayment.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Estimated: %s EUR\n", projection.EstimatedTax.StringFixed(2)))

	return sb.String()
}

func (p *Printer) Monthly(monthly []ledger.MonthlyTotals) string {
	var sb strings.Builder

	sb.WriteString("Monthly breakdown\n")

	for _, bucket := range monthly {
		if bucket.Income.Equal(decimal.Zero) && bucket.Expenses.Equal(decimal.Zero) {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s  +%s / -%s\n",
			bucket.Month, bucket.Income.StringFixed(2), bucket.Expenses.StringFixed(2)))
	}

	return sb.String()
}

func (p *Printer) NewTransactions(txs []*ledger.Transaction) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d new transaction(s)\n", len(txs)))

	for _, tx := range txs {
		sb.WriteString(fmt.Sprintf("%s %s %s EUR %s\n",
			tx.Date, tx.Type, tx.GrossAmount.StringFixed(2), tx.ClientName))
		sb.WriteString("====================\n")
	}

	return sb.String()
}
