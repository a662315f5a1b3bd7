package kv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
)

const stateContainer = "state"

type cosmosItem struct {
	ID        string `json:"id"`
	StateKey  string `json:"stateKey"`
	Value     []byte `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}

// Cosmos keeps the state blob in an Azure Cosmos DB container, one item
// per key, partitioned by the key itself.
type Cosmos struct {
	cl          *azcosmos.DatabaseClient
	setupCalled bool
}

func NewCosmos(connectionString, dbName string) (*Cosmos, error) {
	client, err := azcosmos.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, err
	}

	_, err = client.CreateDatabase(context.Background(), azcosmos.DatabaseProperties{
		ID: dbName,
	}, &azcosmos.CreateDatabaseOptions{})

	c := &Cosmos{}

	if realErr := c.ignoreConflictErr(err); realErr != nil {
		return nil, realErr
	}

	db, err := client.NewDatabase(dbName)
	if err != nil {
		return nil, err
	}
	c.cl = db

	if err = c.setupContainers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cosmos) setupContainers() error {
	if c.setupCalled {
		return nil
	}

	_, err := c.cl.CreateContainer(context.Background(), azcosmos.ContainerProperties{
		ID: stateContainer,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{"/stateKey"},
		},
	}, &azcosmos.CreateContainerOptions{})
	if c.ignoreConflictErr(err) != nil {
		return err
	}

	c.setupCalled = true

	return nil
}

func (c *Cosmos) ignoreConflictErr(err error) error {
	if err == nil {
		return nil
	}
	var azureErr *azcore.ResponseError
	if errors.As(err, &azureErr) && azureErr.StatusCode == 409 {
		return nil
	}

	return err
}

func (c *Cosmos) container() (*azcosmos.ContainerClient, error) {
	if err := c.setupContainers(); err != nil {
		return nil, err
	}

	return c.cl.NewContainer(stateContainer)
}

func (c *Cosmos) Get(ctx context.Context, key string) ([]byte, error) {
	container, err := c.container()
	if err != nil {
		return nil, err
	}

	resp, err := container.ReadItem(ctx, azcosmos.NewPartitionKeyString(key), key, nil)
	if err != nil {
		var azureErr *azcore.ResponseError
		if errors.As(err, &azureErr) && azureErr.StatusCode == 404 {
			return nil, nil
		}

		return nil, err
	}

	var item cosmosItem
	if err = json.Unmarshal(resp.Value, &item); err != nil {
		return nil, err
	}

	return item.Value, nil
}

func (c *Cosmos) Set(ctx context.Context, key string, value []byte) error {
	container, err := c.container()
	if err != nil {
		return err
	}

	b, err := json.Marshal(cosmosItem{
		ID:        key,
		StateKey:  key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = container.UpsertItem(ctx, azcosmos.NewPartitionKeyString(key), b, nil)

	return err
}

func (c *Cosmos) SetMany(ctx context.Context, values map[string][]byte) error {
	pool := workerpool.New(defaultPoolSize)

	var finalErr error

	for key1, value1 := range values {
		key, value := key1, value1

		pool.Submit(func() {
			if err := c.Set(ctx, key, value); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		})
	}

	pool.StopWait()

	return finalErr
}

func (c *Cosmos) Delete(ctx context.Context, key string) error {
	container, err := c.container()
	if err != nil {
		return err
	}

	_, err = container.DeleteItem(ctx, azcosmos.NewPartitionKeyString(key), key, nil)
	if err != nil {
		var azureErr *azcore.ResponseError
		if errors.As(err, &azureErr) && azureErr.StatusCode == 404 {
			return nil
		}
	}

	return err
}
