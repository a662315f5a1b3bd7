package kv

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultPoolSize = 10

type stateRecord struct {
	Key       string `gorm:"primaryKey;size:512"`
	Value     []byte
	UpdatedAt time.Time
}

func (stateRecord) TableName() string {
	return "dashboard_state"
}

// Gorm persists state rows in Postgres.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(connectionString string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}

	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	if err = m.Migrate(); err != nil {
		return nil, errors.Wrap(err, "failed to migrate")
	}

	return &Gorm{
		db: db,
	}, nil
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_02_11_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists dashboard_state
(
    key        varchar(512) not null
        constraint dashboard_state_pk
            primary key,
    value      bytea,
    updated_at timestamp
);
`).Error
			},
		},
	}
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var record stateRecord

	err := g.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch record")
	}

	return record.Value, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	record := stateRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(&record).Error
}

func (g *Gorm) SetMany(ctx context.Context, values map[string][]byte) error {
	pool := workerpool.New(defaultPoolSize)

	var finalErr error

	for key1, value1 := range values {
		key, value := key1, value1

		pool.Submit(func() {
			if err := g.Set(ctx, key, value); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		})
	}

	pool.StopWait()

	return finalErr
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Delete(&stateRecord{}, "key = ?", key).Error
}
