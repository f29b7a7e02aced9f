// Package storage defines types and interfaces to support the inventory subsystem.
package storage

import (
	"context"
	"errors"
)

// ErrNoIDs is returned when a query or store names no enrollment IDs.
var ErrNoIDs = errors.New("no IDs provided")

// SearchOptions is a basic query for inventory of enrollment IDs.
type SearchOptions struct {
	IDs []string // slice of enrollment IDs to query against
}

// Values maps inventory storage keys to values.
type Values map[string]interface{}

// String returns the string value stored at key k, if any.
func (v Values) String(k string) (string, bool) {
	s, ok := v[k].(string)
	return s, ok
}

// Bool returns the bool value stored at key k, if any.
func (v Values) Bool(k string) (bool, bool) {
	b, ok := v[k].(bool)
	return b, ok
}

type ReadStorage interface {
	// RetrieveInventory queries and returns the inventory values mapped by enrollment ID.
	// IDs without inventory are omitted from the result.
	RetrieveInventory(ctx context.Context, opt *SearchOptions) (map[string]Values, error)
}

type Storage interface {
	ReadStorage

	// StoreInventoryValues merges values into the inventory of id.
	StoreInventoryValues(ctx context.Context, id string, values Values) error

	// DeleteInventory deletes all inventory data for id.
	DeleteInventory(ctx context.Context, id string) error
}
