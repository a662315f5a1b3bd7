package backend

import "github.com/vkarag/oebooks/pkg/ledger"

type request struct {
	Action        string              `json:"action"`
	UserID        string              `json:"userId"`
	Transaction   *ledger.Transaction `json:"transaction,omitempty"`
	TransactionID string              `json:"transactionId,omitempty"`
}

type createRequest struct {
	Action      string         `json:"action"`
	UserID      string         `json:"userId"`
	Transaction map[string]any `json:"transaction"`
}

type createResponse struct {
	Success     bool                `json:"success"`
	Transaction *ledger.Transaction `json:"transaction"`
}
