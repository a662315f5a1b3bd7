// Package backend talks to the external automation backend that owns the
// real bookkeeping rows. The backend is an opaque collaborator with a
// loose wire contract; this client only pins down what the normalizer
// must tolerate.
package backend

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/vkarag/oebooks/pkg/ledger"
)

const (
	actionGet    = "getTransactions"
	actionUpdate = "updateTransaction"
	actionDelete = "deleteTransaction"
	actionCreate = "createTransaction"
)

// The configured endpoint addresses the getTransactions hook; sibling
// hooks are derived by slug substitution in the URL.
var siblingSlugs = map[string]string{
	actionUpdate: "update-transaction",
	actionDelete: "delete-transaction",
	actionCreate: "create-transaction",
}

type Client struct {
	cl       *req.Client
	endpoint string
}

func NewClient(
	endpoint string,
	cl *req.Client,
) *Client {
	return &Client{
		cl:       cl,
		endpoint: endpoint,
	}
}

func (c *Client) sibling(action string) string {
	if strings.Contains(c.endpoint, "get-transactions") {
		return strings.Replace(c.endpoint, "get-transactions", siblingSlugs[action], 1)
	}

	// No recognizable slug; the action field in the body disambiguates.
	return c.endpoint
}

func (c *Client) FetchTransactions(
	ctx context.Context,
	userID string,
) ([]any, error) {
	resp, err := c.cl.R().
		SetContext(ctx).
		SetBody(request{
			Action: actionGet,
			UserID: userID,
		}).
		Post(c.endpoint)
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	return DecodeBatch(resp.Bytes()), nil
}

// DecodeBatch tolerates the backend's ad hoc response shapes: a top-level
// array, {transactions: [...]}, {data: [...]}, or a single object wrapped
// into a one-element batch. Anything else yields an empty batch.
func DecodeBatch(body []byte) []any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}

	switch v := decoded.(type) {
	case []any:
		return v
	case map[string]any:
		if items, ok := v["transactions"].([]any); ok {
			return items
		}
		if items, ok := v["data"].([]any); ok {
			return items
		}
		if len(v) > 0 {
			return []any{v}
		}
	}

	return nil
}

func (c *Client) UpdateTransaction(
	ctx context.Context,
	userID string,
	tx *ledger.Transaction,
) error {
	resp, err := c.cl.R().
		SetContext(ctx).
		SetBody(request{
			Action:      actionUpdate,
			UserID:      userID,
			Transaction: tx,
		}).
		Post(c.sibling(actionUpdate))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	var body map[string]any
	if err = json.Unmarshal(resp.Bytes(), &body); err != nil {
		return errors.Wrap(err, "update response is not JSON")
	}

	return nil
}

func (c *Client) DeleteTransaction(
	ctx context.Context,
	userID string,
	transactionID string,
) error {
	resp, err := c.cl.R().
		SetContext(ctx).
		SetBody(request{
			Action:        actionDelete,
			UserID:        userID,
			TransactionID: transactionID,
		}).
		Post(c.sibling(actionDelete))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	var body map[string]any
	if err = json.Unmarshal(resp.Bytes(), &body); err != nil {
		return errors.Wrap(err, "delete response is not JSON")
	}

	return nil
}

func (c *Client) CreateTransaction(
	ctx context.Context,
	userID string,
	data map[string]any,
) (*ledger.Transaction, error) {
	var result createResponse

	resp, err := c.cl.R().
		SetContext(ctx).
		SetBody(createRequest{
			Action:      actionCreate,
			UserID:      userID,
			Transaction: data,
		}).
		SetSuccessResult(&result).
		Post(c.sibling(actionCreate))
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
	}

	if !result.Success || result.Transaction == nil {
		return nil, errors.Newf("backend rejected the create: %s", resp.String())
	}

	return result.Transaction, nil
}
