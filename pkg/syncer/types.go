package syncer

import (
	"github.com/vkarag/oebooks/pkg/ledger"
)

// State is the refresh cycle position. Transitions: Idle -> Fetching ->
// Reconciling -> Idle. A refresh observed outside Idle is dropped.
type State int32

const (
	StateIdle        = State(0)
	StateFetching    = State(1)
	StateReconciling = State(2)
)

type Config struct {
	// Fetcher is nil when no endpoint is configured; the syncer then
	// serves the restored cache instead of fetching.
	Fetcher       Fetcher
	Normalizer    Normalizer
	Reconciler    Reconciler
	Store         TransactionStore
	Notifications NotificationLog
	UserID        string
}

type RefreshResult struct {
	Transactions []*ledger.Transaction
	New          []*ledger.Transaction
	NewCount     int
	FromCache    bool
}
