package syncer

import (
	"context"
	"time"

	"github.com/vkarag/oebooks/pkg/ledger"
	"github.com/vkarag/oebooks/pkg/reconcile"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package syncer_test -source=interfaces.go

type Fetcher interface {
	FetchTransactions(ctx context.Context, userID string) ([]any, error)
	UpdateTransaction(ctx context.Context, userID string, tx *ledger.Transaction) error
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
	CreateTransaction(ctx context.Context, userID string, data map[string]any) (*ledger.Transaction, error)
}

type Normalizer interface {
	Normalize(ctx context.Context, item any) *ledger.Transaction
	NormalizeBatch(ctx context.Context, items []any) []*ledger.Transaction
}

type Reconciler interface {
	Diff(batch []*ledger.Transaction, baseline map[string]struct{}) reconcile.Result
	KeySet(batch []*ledger.Transaction) map[string]struct{}
	HashKey(bv string) string
}

type TransactionStore interface {
	Replace(all []*ledger.Transaction)
	All() []*ledger.Transaction
	Get(id string) (*ledger.Transaction, bool)
	Add(tx *ledger.Transaction)
	Update(tx *ledger.Transaction) bool
	Remove(id string) bool
	Baseline() map[string]struct{}
	SetBaseline(keys map[string]struct{})
	Snapshot(ctx context.Context) error
	Restore(ctx context.Context) error
	CachedAt() time.Time
}

type NotificationLog interface {
	Append(ctx context.Context, notification *ledger.Notification) error
	Load(ctx context.Context) error
}
