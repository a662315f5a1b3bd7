package reconcile

import (
	"crypto/sha512"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/vkarag/oebooks/pkg/ledger"
)

// Reconciler compares a freshly fetched batch against the last-seen key
// set. Only content keys participate: upstream ids are regenerated per
// fetch and must never anchor cross-fetch identity.
type Reconciler struct {
}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

type Result struct {
	// All is the full batch sorted by date descending, stable w.r.t.
	// input order for equal dates.
	All []*ledger.Transaction

	New      []*ledger.Transaction
	NewCount int
}

// Diff partitions the batch into known and new entries. Duplicate content
// keys inside a single batch are deliberately not collapsed: if the key is
// absent from the baseline, every occurrence is flagged new.
func (r *Reconciler) Diff(
	batch []*ledger.Transaction,
	baseline map[string]struct{},
) Result {
	all := make([]*ledger.Transaction, len(batch))
	copy(all, batch)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date > all[j].Date
	})

	for _, tx := range all {
		_, seen := baseline[r.HashKey(tx.ContentKey())]
		tx.IsNew = !seen
	}

	newTxs := lo.Filter(all, func(tx *ledger.Transaction, _ int) bool {
		return tx.IsNew
	})

	return Result{
		All:      all,
		New:      newTxs,
		NewCount: len(newTxs),
	}
}

// KeySet derives the baseline for the next diff. Keys are stored hashed;
// the plaintext content key never reaches the durable store.
func (r *Reconciler) KeySet(batch []*ledger.Transaction) map[string]struct{} {
	keys := make(map[string]struct{}, len(batch))

	for _, tx := range batch {
		keys[r.HashKey(tx.ContentKey())] = struct{}{}
	}

	return keys
}

func (r *Reconciler) HashKey(bv string) string {
	shaImpl := sha512.New()
	shaImpl.Write([]byte(bv))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}
