package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/vkarag/oebooks/pkg/common"
	"github.com/vkarag/oebooks/pkg/kv"
	"github.com/vkarag/oebooks/pkg/ledger"
	"github.com/vkarag/oebooks/pkg/notifylog"
	"github.com/vkarag/oebooks/pkg/printer"
	"github.com/vkarag/oebooks/pkg/store"
	"github.com/vkarag/oebooks/pkg/tax"
)

type Handler struct {
	cfg           *Config
	orchestrator  Orchestrator
	store         *store.Store
	notifications *notifylog.Log
	printer       *printer.Printer
	kv            kv.Store
}

func NewHandler(
	cfg *Config,
	orchestrator Orchestrator,
	txStore *store.Store,
	notifications *notifylog.Log,
	printerSvc *printer.Printer,
	kvStore kv.Store,
) *Handler {
	return &Handler{
		cfg:           cfg,
		orchestrator:  orchestrator,
		store:         txStore,
		notifications: notifications,
		printer:       printerSvc,
		kv:            kvStore,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/login", h.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.requireSession)

	api.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", h.CreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", h.UpdateTransaction).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods(http.MethodDelete)
	api.HandleFunc("/refresh", h.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read", h.MarkNotificationsRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications", h.ClearNotifications).Methods(http.MethodDelete)
	api.HandleFunc("/projection", h.Projection).Methods(http.MethodGet)
	api.HandleFunc("/monthly", h.Monthly).Methods(http.MethodGet)
	api.HandleFunc("/summary", h.Summary).Methods(http.MethodGet)
}

func (h *Handler) sessionKey() string {
	return fmt.Sprintf("session:%s", h.cfg.UserID)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if body.Username != h.cfg.AuthUsername || body.Password != h.cfg.AuthPassword {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	token := uuid.NewString()
	if err := h.kv.Set(r.Context(), h.sessionKey(), []byte(token)); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.kv.Get(r.Context(), h.sessionKey())
		if err != nil || token == nil ||
			r.Header.Get("Authorization") != "Bearer "+string(token) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.orchestrator.Refresh(r.Context())
	if errors.Is(err, common.ErrRefreshInFlight) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		NewCount:  result.NewCount,
		Total:     len(result.Transactions),
		FromCache: result.FromCache,
	})
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, ok := h.store.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrNotFound.Error()})
		return
	}

	// Official records are immutable on this surface; only manual-review
	// entries take edits.
	if !existing.Editable() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "official transactions are read-only"})
		return
	}

	var tx ledger.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	tx.ID = id

	if err := h.orchestrator.Update(r.Context(), &tx); err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, &tx)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.orchestrator.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrDeleteCritical) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:  err.Error(),
				Resync: true,
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tx, err := h.orchestrator.Create(r.Context(), data)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: h.notifications.All(),
		UnreadCount:   h.notifications.UnreadCount(),
	})
}

func (h *Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkAllRead(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Clear(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) year(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}

	return time.Now().Year()
}

func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tax.Project(h.store.All(), h.year(r)))
}

func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tax.MonthlyBreakdown(r.Context(), h.store.All()))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	all := h.store.All()

	summary := h.printer.Dashboard(
		tax.Project(all, h.year(r)),
		tax.MonthlyBreakdown(r.Context(), all),
		nil,
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(summary)); err != nil {
		log.Error().Err(err).Msg("failed to write summary")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
