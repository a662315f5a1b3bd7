// Command import loads an XLSX bookkeeping export into the dashboard
// cache through the same normalize -> diff -> store pipeline the live
// refresh uses. The first sheet row is the header; every following row
// becomes one upstream record.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"

	"github.com/vkarag/oebooks/pkg/kv"
	"github.com/vkarag/oebooks/pkg/ledger"
	"github.com/vkarag/oebooks/pkg/normalize"
	"github.com/vkarag/oebooks/pkg/notifylog"
	"github.com/vkarag/oebooks/pkg/printer"
	"github.com/vkarag/oebooks/pkg/reconcile"
	"github.com/vkarag/oebooks/pkg/store"
	"github.com/vkarag/oebooks/pkg/syncer"
	"github.com/vkarag/oebooks/pkg/tax"
)

type Config struct {
	UserID                   string `env:"DASHBOARD_USER_ID" envDefault:"default"`
	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING"`
	CosmosConnectionString   string `env:"COSMO_DB_CONNECTION_STRING"`
	CosmosDbName             string `env:"COSMO_DB_NAME" envDefault:"oebooks"`
}

// fileFetcher adapts an XLSX workbook to the syncer's fetch port, so the
// import shares the refresh pipeline instead of duplicating it.
type fileFetcher struct {
	path string
}

func (f *fileFetcher) FetchTransactions(_ context.Context, _ string) ([]any, error) {
	workbook, err := xlsx.OpenFile(f.path)
	if err != nil {
		return nil, err
	}

	var items []any

	for _, sheet := range workbook.Sheets {
		if len(sheet.Rows) < 2 {
			continue
		}

		var headers []string
		for _, cell := range sheet.Rows[0].Cells {
			headers = append(headers, cell.String())
		}

		for _, row := range sheet.Rows[1:] {
			record := map[string]any{}

			for i, cell := range row.Cells {
				if i >= len(headers) || headers[i] == "" {
					continue
				}

				record[headers[i]] = cell.String()
			}

			if len(record) == 0 {
				continue
			}

			items = append(items, record)
		}
	}

	return items, nil
}

func (f *fileFetcher) UpdateTransaction(context.Context, string, *ledger.Transaction) error {
	return nil
}

func (f *fileFetcher) DeleteTransaction(context.Context, string, string) error {
	return nil
}

func (f *fileFetcher) CreateTransaction(context.Context, string, map[string]any) (*ledger.Transaction, error) {
	return nil, nil
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: import <file.xlsx>")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	kvStore, err := buildKv(&cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build kv store")
	}

	txStore := store.NewStore(kvStore, cfg.UserID)
	notifications := notifylog.NewLog(kvStore, cfg.UserID)

	syncerSvc := syncer.NewSyncer(&syncer.Config{
		Fetcher:       &fileFetcher{path: os.Args[1]},
		Normalizer:    normalize.NewNormalizer(),
		Reconciler:    reconcile.NewReconciler(),
		Store:         txStore,
		Notifications: notifications,
		UserID:        cfg.UserID,
	})

	ctx := log.Logger.WithContext(context.Background())

	if err = syncerSvc.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to restore cached state")
	}

	result, err := syncerSvc.Refresh(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	printerSvc := printer.NewPrinter()

	fmt.Println(printerSvc.Dashboard(
		tax.Project(result.Transactions, currentYear()),
		tax.MonthlyBreakdown(ctx, result.Transactions),
		result.New,
	))
}

func currentYear() int {
	return time.Now().Year()
}

func buildKv(cfg *Config) (kv.Store, error) {
	if cfg.CosmosConnectionString != "" {
		return kv.NewCosmos(cfg.CosmosConnectionString, cfg.CosmosDbName)
	}

	if cfg.PostgresConnectionString != "" {
		return kv.NewGorm(cfg.PostgresConnectionString)
	}

	return kv.NewMemory(), nil
}
