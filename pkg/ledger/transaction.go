package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  = TransactionType("INCOME")
	TypeExpense = TransactionType("EXPENSE")
)

type TransactionStatus string

const (
	// StatusOfficial marks a record confirmed against the tax-authority
	// registry. Official records are read-only on the presentation side.
	StatusOfficial     = TransactionStatus("OFFICIAL")
	StatusManualReview = TransactionStatus("MANUAL_REVIEW")
)

// Transaction is the canonical bookkeeping record. The upstream id is not
// stable across fetches; ContentKey is the only identity usable for
// cross-fetch comparison.
type Transaction struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // canonical YYYY-MM-DD
	ClientName  string            `json:"clientName"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	VatAmount   decimal.Decimal   `json:"vatAmount"`
	GrossAmount decimal.Decimal   `json:"grossAmount"`
	AFM         string            `json:"afm,omitempty"`
	Mark        string            `json:"mark,omitempty"`
	InvoiceLink string            `json:"invoiceLink,omitempty"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`

	// IsNew is session-scoped, set by the diff step for records whose
	// content key was absent from the last-seen baseline.
	IsNew bool `json:"-"`
}

// ContentKey derives the stable identity used for deduplication. Upstream
// ids are regenerated per fetch, so they never participate here.
func (t *Transaction) ContentKey() string {
	return fmt.Sprintf("%s|%s|%s|%s", t.Date, t.ClientName, t.GrossAmount.String(), t.Type)
}

func (t *Transaction) Editable() bool {
	return t.Status == StatusManualReview
}
