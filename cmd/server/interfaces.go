package main

import (
	"context"

	"github.com/vkarag/oebooks/pkg/ledger"
	"github.com/vkarag/oebooks/pkg/syncer"
)

type Orchestrator interface {
	Refresh(ctx context.Context) (*syncer.RefreshResult, error)
	Update(ctx context.Context, tx *ledger.Transaction) error
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, data map[string]any) (*ledger.Transaction, error)
}
