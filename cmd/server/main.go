package main

import (
	"context"
	"net/http"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"

	"github.com/vkarag/oebooks/pkg/backend"
	"github.com/vkarag/oebooks/pkg/kv"
	"github.com/vkarag/oebooks/pkg/normalize"
	"github.com/vkarag/oebooks/pkg/notifylog"
	"github.com/vkarag/oebooks/pkg/printer"
	"github.com/vkarag/oebooks/pkg/reconcile"
	"github.com/vkarag/oebooks/pkg/store"
	"github.com/vkarag/oebooks/pkg/syncer"
)

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	kvStore, err := buildKv(&cfg)
	if err != nil {
		panic(err)
	}

	txStore := store.NewStore(kvStore, cfg.UserID)
	notifications := notifylog.NewLog(kvStore, cfg.UserID)

	var fetcher syncer.Fetcher
	if cfg.BackendEndpoint != "" {
		fetcher = backendClient(cfg.BackendEndpoint)
	} else {
		log.Warn().Msg("no backend endpoint configured, running on cached data")
	}

	syncerSvc := syncer.NewSyncer(&syncer.Config{
		Fetcher:       fetcher,
		Normalizer:    normalize.NewNormalizer(),
		Reconciler:    reconcile.NewReconciler(),
		Store:         txStore,
		Notifications: notifications,
		UserID:        cfg.UserID,
	})

	ctx := log.Logger.WithContext(context.Background())

	if err = syncerSvc.Bootstrap(ctx); err != nil {
		panic(err)
	}

	go syncerSvc.Run(ctx, cfg.RefreshInterval)

	r := mux.NewRouter()

	handler := NewHandler(&cfg, syncerSvc, txStore, notifications, printer.NewPrinter(), kvStore)
	handler.Register(r)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")

	panic(srv.ListenAndServe())
}

func backendClient(endpoint string) syncer.Fetcher {
	return backend.NewClient(endpoint, req.DefaultClient())
}

func buildKv(cfg *Config) (kv.Store, error) {
	if cfg.CosmosConnectionString != "" {
		return kv.NewCosmos(cfg.CosmosConnectionString, cfg.CosmosDbName)
	}

	if cfg.PostgresConnectionString != "" {
		return kv.NewGorm(cfg.PostgresConnectionString)
	}

	log.Warn().Msg("no durable store configured, state is in-memory only")

	return kv.NewMemory(), nil
}
