// Package store holds the authoritative transaction collection for the
// session and mirrors it, together with the last-seen key baseline, into
// the durable kv port.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/vkarag/oebooks/pkg/kv"
	"github.com/vkarag/oebooks/pkg/ledger"
)

type Store struct {
	mu       sync.RWMutex
	txs      []*ledger.Transaction
	baseline map[string]struct{}
	cachedAt time.Time

	kv     kv.Store
	userID string
}

func NewStore(
	kvStore kv.Store,
	userID string,
) *Store {
	return &Store{
		kv:       kvStore,
		userID:   userID,
		baseline: map[string]struct{}{},
	}
}

// Replace atomically swaps the whole collection; used after a refresh.
func (s *Store) Replace(all []*ledger.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = make([]*ledger.Transaction, len(all))
	copy(s.txs, all)
	s.cachedAt = time.Now().UTC()
}

func (s *Store) All() []*ledger.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ledger.Transaction, len(s.txs))
	copy(out, s.txs)

	return out
}

func (s *Store) Get(id string) (*ledger.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.txs, func(tx *ledger.Transaction) bool {
		return tx.ID == id
	})
}

func (s *Store) Add(tx *ledger.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = append([]*ledger.Transaction{tx}, s.txs...)
}

// Update replaces the entry with a matching id, keeping its position.
// A missing id is a no-op, not an error.
func (s *Store) Update(tx *ledger.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.txs {
		if existing.ID == tx.ID {
			s.txs[i] = tx
			return true
		}
	}

	return false
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.txs)
	s.txs = lo.Reject(s.txs, func(tx *ledger.Transaction, _ int) bool {
		return tx.ID == id
	})

	return len(s.txs) != before
}

// Baseline returns a copy of the last-seen content key set. The baseline
// only advances via SetBaseline after a successful refresh, never per
// render.
func (s *Store) Baseline() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.baseline))
	for key := range s.baseline {
		out[key] = struct{}{}
	}

	return out
}

func (s *Store) SetBaseline(keys map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseline = make(map[string]struct{}, len(keys))
	for key := range keys {
		s.baseline[key] = struct{}{}
	}
}

func (s *Store) CachedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cachedAt
}

type cacheBlob struct {
	Transactions []*ledger.Transaction `json:"transactions"`
	CachedAt     time.Time             `json:"cachedAt"`
}

func (s *Store) cacheKey() string {
	return fmt.Sprintf("cache:%s", s.userID)
}

func (s *Store) seenKey() string {
	return fmt.Sprintf("seen:%s", s.userID)
}

// Snapshot persists the collection and the baseline in one write batch.
func (s *Store) Snapshot(ctx context.Context) error {
	s.mu.RLock()

	blob := cacheBlob{
		Transactions: s.txs,
		CachedAt:     s.cachedAt,
	}
	seen := lo.Keys(s.baseline)

	s.mu.RUnlock()

	cacheBytes, err := json.Marshal(blob)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache snapshot")
	}

	seenBytes, err := json.Marshal(seen)
	if err != nil {
		return errors.Wrap(err, "failed to marshal seen keys")
	}

	return s.kv.SetMany(ctx, map[string][]byte{
		s.cacheKey(): cacheBytes,
		s.seenKey():  seenBytes,
	})
}

// Restore rebuilds the in-memory state from the durable store. A missing
// snapshot leaves the store empty and is not an error.
func (s *Store) Restore(ctx context.Context) error {
	cacheBytes, err := s.kv.Get(ctx, s.cacheKey())
	if err != nil {
		return errors.Wrap(err, "failed to read cache snapshot")
	}

	seenBytes, err := s.kv.Get(ctx, s.seenKey())
	if err != nil {
		return errors.Wrap(err, "failed to read seen keys")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cacheBytes != nil {
		var blob cacheBlob
		if err = json.Unmarshal(cacheBytes, &blob); err != nil {
			return errors.Wrap(err, "failed to unmarshal cache snapshot")
		}

		s.txs = blob.Transactions
		s.cachedAt = blob.CachedAt
	}

	s.baseline = map[string]struct{}{}

	if seenBytes != nil {
		var seen []string
		if err = json.Unmarshal(seenBytes, &seen); err != nil {
			return errors.Wrap(err, "failed to unmarshal seen keys")
		}

		for _, key := range seen {
			s.baseline[key] = struct{}{}
		}
	}

	return nil
}
