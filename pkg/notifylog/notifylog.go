// Package notifylog keeps the capped, persisted log of events derived
// from newly detected transactions.
package notifylog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/vkarag/oebooks/pkg/kv"
	"github.com/vkarag/oebooks/pkg/ledger"
)

// MaxEntries caps the log; the oldest entries are evicted first.
const MaxEntries = 50

type Log struct {
	mu      sync.RWMutex
	entries []*ledger.Notification

	kv     kv.Store
	userID string
}

func NewLog(
	kvStore kv.Store,
	userID string,
) *Log {
	return &Log{
		kv:     kvStore,
		userID: userID,
	}
}

func (l *Log) key() string {
	return fmt.Sprintf("notifications:%s", l.userID)
}

// Append prepends the notification and persists the log. An entry whose
// id is already present is a no-op, making the insert idempotent.
func (l *Log) Append(ctx context.Context, notification *ledger.Notification) error {
	l.mu.Lock()

	_, exists := lo.Find(l.entries, func(n *ledger.Notification) bool {
		return n.ID == notification.ID
	})
	if exists {
		l.mu.Unlock()
		return nil
	}

	l.entries = append([]*ledger.Notification{notification}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}

	l.mu.Unlock()

	return l.persist(ctx)
}

func (l *Log) All() []*ledger.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*ledger.Notification, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *Log) UnreadCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.CountBy(l.entries, func(n *ledger.Notification) bool {
		return !n.Read
	})
}

func (l *Log) MarkAllRead(ctx context.Context) error {
	l.mu.Lock()
	for _, n := range l.entries {
		n.Read = true
	}
	l.mu.Unlock()

	return l.persist(ctx)
}

func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()

	return l.persist(ctx)
}

func (l *Log) persist(ctx context.Context) error {
	l.mu.RLock()
	b, err := json.Marshal(l.entries)
	l.mu.RUnlock()

	if err != nil {
		return errors.Wrap(err, "failed to marshal notifications")
	}

	return l.kv.Set(ctx, l.key(), b)
}

// Load restores the log from the durable store; a missing entry leaves
// the log empty.
func (l *Log) Load(ctx context.Context) error {
	b, err := l.kv.Get(ctx, l.key())
	if err != nil {
		return errors.Wrap(err, "failed to read notifications")
	}

	if b == nil {
		return nil
	}

	var entries []*ledger.Notification
	if err = json.Unmarshal(b, &entries); err != nil {
		return errors.Wrap(err, "failed to unmarshal notifications")
	}

	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()

	return nil
}
