// Package database opens the bbolt file that keeps the run history.
package database

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/shopping/internal/logging"
)

type Config struct {
	FileName string        `envconfig:"SHOP_REPORT_DB" toml:"report_db"`
	Timeout  time.Duration `envconfig:"SHOP_REPORT_DB_TIMEOUT" default:"1s" toml:"-"`
}

// Enabled reports whether a history file is configured.
func (c Config) Enabled() bool {
	return c.FileName != ""
}

type DB struct {
	DB *bolt.DB
}

func NewFromEnv(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("opening report database %s", config.FileName)

	if !config.Enabled() {
		return nil, fmt.Errorf("report database file name is empty")
	}
	db, err := bolt.Open(config.FileName, 0600, &bolt.Options{Timeout: config.Timeout})
	if err != nil {
		return nil, fmt.Errorf("creating connection Db: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	logger.Infof("closing DB connection")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error close Db connection: %w", err)
	}

	return nil
}
