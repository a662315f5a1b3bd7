package syncer

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vkarag/oebooks/pkg/common"
	"github.com/vkarag/oebooks/pkg/ledger"
)

// Syncer coordinates fetch -> normalize -> diff -> store -> notify and
// owns the at-most-one-in-flight refresh guard.
type Syncer struct {
	cfg   *Config
	state atomic.Int32
}

func NewSyncer(cfg *Config) *Syncer {
	return &Syncer{
		cfg: cfg,
	}
}

func (s *Syncer) State() State {
	return State(s.state.Load())
}

// Bootstrap restores the cached collection, the diff baseline and the
// notification log from the durable store.
func (s *Syncer) Bootstrap(ctx context.Context) error {
	if err := s.cfg.Store.Restore(ctx); err != nil {
		return err
	}

	return s.cfg.Notifications.Load(ctx)
}

// Refresh runs one full cycle. A call while another refresh is in flight
// returns common.ErrRefreshInFlight; requests are dropped, never queued.
// On any failure the store and the baseline stay untouched.
func (s *Syncer) Refresh(ctx context.Context) (*RefreshResult, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateFetching)) {
		return nil, common.ErrRefreshInFlight
	}
	defer s.state.Store(int32(StateIdle))

	if s.cfg.Fetcher == nil {
		return s.refreshFromCache(ctx)
	}

	raw, err := s.cfg.Fetcher.FetchTransactions(ctx, s.cfg.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch failed")
	}

	s.state.Store(int32(StateReconciling))

	batch := s.cfg.Normalizer.NormalizeBatch(ctx, raw)
	diff := s.cfg.Reconciler.Diff(batch, s.cfg.Store.Baseline())

	s.cfg.Store.Replace(diff.All)

	for _, tx := range diff.New {
		if err = s.cfg.Notifications.Append(ctx, s.notificationFor(tx)); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("transaction", tx.ID).
				Msg("failed to append notification")
		}
	}

	s.cfg.Store.SetBaseline(s.cfg.Reconciler.KeySet(batch))

	if err = s.cfg.Store.Snapshot(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to persist snapshot")
	}

	return &RefreshResult{
		Transactions: diff.All,
		New:          diff.New,
		NewCount:     diff.NewCount,
	}, nil
}

// refreshFromCache is the offline mode: no endpoint configured, so the
// restored snapshot is the whole truth and nothing can be new.
func (s *Syncer) refreshFromCache(_ context.Context) (*RefreshResult, error) {
	return &RefreshResult{
		Transactions: s.cfg.Store.All(),
		FromCache:    true,
	}, nil
}

// notificationFor derives a stable notification id from the transaction's
// content key, so a record re-detected as new cannot produce a second log
// entry.
func (s *Syncer) notificationFor(tx *ledger.Transaction) *ledger.Notification {
	hash := s.cfg.Reconciler.HashKey(tx.ContentKey())

	return &ledger.Notification{
		ID:          fmt.Sprintf("ntf-%s", hash[:16]),
		Message:     fmt.Sprintf("New %s: %s — %s EUR", strings.ToLower(string(tx.Type)), tx.ClientName, tx.GrossAmount.String()),
		Type:        ledger.NotificationNewTransaction,
		Transaction: tx,
		Timestamp:   time.Now().UTC(),
	}
}

// Update is pessimistic: the backend save is awaited before the local
// collection reflects the change, and a failure leaves the store as it
// was.
func (s *Syncer) Update(ctx context.Context, tx *ledger.Transaction) error {
	if s.cfg.Fetcher != nil {
		if err := s.cfg.Fetcher.UpdateTransaction(ctx, s.cfg.UserID, tx); err != nil {
			return errors.Wrap(err, "update failed")
		}
	}

	s.cfg.Store.Update(tx)

	return errors.Wrap(s.cfg.Store.Snapshot(ctx), "failed to persist snapshot")
}

// Delete is optimistic: the local removal is done and persisted before
// the backend confirmation. A failed confirmation is logged and the
// removal stands; only a failure of the local path itself is critical.
func (s *Syncer) Delete(ctx context.Context, id string) error {
	s.cfg.Store.Remove(id)

	if err := s.cfg.Store.Snapshot(ctx); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to persist removal"), common.ErrDeleteCritical)
	}

	if s.cfg.Fetcher != nil {
		if err := s.cfg.Fetcher.DeleteTransaction(ctx, s.cfg.UserID, id); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("transaction", id).
				Msg("delete confirmation failed, keeping local removal")
		}
	}

	return nil
}

func (s *Syncer) Create(ctx context.Context, data map[string]any) (*ledger.Transaction, error) {
	var tx *ledger.Transaction

	if s.cfg.Fetcher != nil {
		created, err := s.cfg.Fetcher.CreateTransaction(ctx, s.cfg.UserID, data)
		if err != nil {
			return nil, errors.Wrap(err, "create failed")
		}

		tx = created
	} else {
		tx = s.cfg.Normalizer.Normalize(ctx, any(data))
		tx.ID = uuid.NewString()
		tx.Status = ledger.StatusManualReview
	}

	s.cfg.Store.Add(tx)

	if err := s.cfg.Store.Snapshot(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to persist snapshot")
	}

	return tx, nil
}

// Run refreshes on a fixed period until the context ends. Periodic and
// user-initiated refreshes share the same in-flight guard.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, common.ErrRefreshInFlight) {
				zerolog.Ctx(ctx).Error().Err(err).Msg("scheduled refresh failed")
			}
		}
	}
}
