// Package mysql implements an inventory subsystem storage backend using MySQL.
package mysql

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
)

// Schema contains the MySQL schema for the inventory storage.
//
//go:embed schema.sql
var Schema string

// MySQLStorage implements an inventory storage.Storage using MySQL.
type MySQLStorage struct {
	db *sql.DB
}

type config struct {
	driver string
	dsn    string
	db     *sql.DB
}

// Option allows configuring a MySQLStorage.
type Option func(*config)

// WithDSN sets the storage MySQL data source name.
func WithDSN(dsn string) Option {
	return func(c *config) {
		c.dsn = dsn
	}
}

// WithDriver sets a custom MySQL driver for the storage.
//
// Default driver is "mysql".
// Value is ignored if WithDB is used.
func WithDriver(driver string) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// WithDB sets a custom MySQL *sql.DB to the storage.
//
// If set, driver passed via WithDriver is ignored.
func WithDB(db *sql.DB) Option {
	return func(c *config) {
		c.db = db
	}
}

// New creates and returns a new MySQLStorage.
func New(opts ...Option) (*MySQLStorage, error) {
	cfg := &config{driver: "mysql"}
	for _, opt := range opts {
		opt(cfg)
	}
	var err error
	if cfg.db == nil {
		cfg.db, err = sql.Open(cfg.driver, cfg.dsn)
		if err != nil {
			return nil, err
		}
	}
	if err = cfg.db.Ping(); err != nil {
		return nil, err
	}
	return &MySQLStorage{db: cfg.db}, nil
}

// RetrieveInventory queries and returns the inventory values mapped by enrollment ID.
func (s *MySQLStorage) RetrieveInventory(ctx context.Context, opt *storage.SearchOptions) (map[string]storage.Values, error) {
	if opt == nil || len(opt.IDs) < 1 {
		return nil, storage.ErrNoIDs
	}
	args := make([]interface{}, len(opt.IDs))
	for i, id := range opt.IDs {
		args[i] = id
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, inventory_values FROM inventory WHERE id IN (?`+strings.Repeat(", ?", len(args)-1)+`);`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()
	ret := make(map[string]storage.Values)
	for rows.Next() {
		var id string
		var raw []byte
		if err = rows.Scan(&id, &raw); err != nil {
			return ret, fmt.Errorf("scan inventory: %w", err)
		}
		var values storage.Values
		if err = json.Unmarshal(raw, &values); err != nil {
			return ret, fmt.Errorf("unmarshal values for %s: %w", id, err)
		}
		ret[id] = values
	}
	return ret, rows.Err()
}

// StoreInventoryValues merges values into the stored inventory for id.
// The read and write happen in one transaction holding a row lock.
func (s *MySQLStorage) StoreInventoryValues(ctx context.Context, id string, values storage.Values) error {
	if id == "" {
		return storage.ErrNoIDs
	}
	if len(values) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw []byte
	merged := make(storage.Values)
	err = tx.QueryRowContext(
		ctx,
		`SELECT inventory_values FROM inventory WHERE id = ? FOR UPDATE;`,
		id,
	).Scan(&raw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("select values: %w", err)
	} else if err == nil {
		if err = json.Unmarshal(raw, &merged); err != nil {
			return fmt.Errorf("unmarshal values: %w", err)
		}
	}
	for k := range values {
		merged[k] = values[k]
	}
	if raw, err = json.Marshal(merged); err != nil {
		return fmt.Errorf("marshal values: %w", err)
	}
	_, err = tx.ExecContext(
		ctx,
		`
INSERT INTO inventory
    (id, inventory_values)
VALUES
    (?, ?)
ON DUPLICATE KEY
UPDATE
    inventory_values = VALUES(inventory_values);`,
		id,
		raw,
	)
	if err != nil {
		return fmt.Errorf("upsert values: %w", err)
	}
	return tx.Commit()
}

// DeleteInventory deletes all inventory data for an enrollment ID.
func (s *MySQLStorage) DeleteInventory(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrNoIDs
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?;`, id)
	return err
}
