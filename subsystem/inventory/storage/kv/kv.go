// Package kv implements an inventory subsystem storage backend using a key-value store.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"

	"github.com/micromdm/nanolib/storage/kv"
)

// KV is an inventory subsystem storage backend using a key-value store.
// Values for an enrollment ID are stored as a single JSON object.
type KV struct {
	b kv.KeysPrefixTraversingBucket
}

// New creates a new inventory subsystem backend.
func New(b kv.KeysPrefixTraversingBucket) *KV {
	return &KV{b: b}
}

func (s *KV) get(ctx context.Context, id string) (storage.Values, error) {
	found, err := s.b.Has(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("checking values for %s: %w", id, err)
	} else if !found {
		return nil, nil
	}
	jsonValues, err := s.b.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting values for %s: %w", id, err)
	}
	var values storage.Values
	if len(jsonValues) > 0 {
		if err = json.Unmarshal(jsonValues, &values); err != nil {
			return nil, fmt.Errorf("unmarshal values for %s: %w", id, err)
		}
	}
	return values, nil
}

// RetrieveInventory queries and returns the inventory values by mapped
// by enrollment ID from the key-value store. Must provide opt and IDs.
func (s *KV) RetrieveInventory(ctx context.Context, opt *storage.SearchOptions) (map[string]storage.Values, error) {
	if opt == nil || len(opt.IDs) < 1 {
		return nil, storage.ErrNoIDs
	}

	r := make(map[string]storage.Values)
	for _, id := range opt.IDs {
		values, err := s.get(ctx, id)
		if err != nil {
			return r, err
		}
		if values != nil {
			r[id] = values
		}
	}
	return r, nil
}

// StoreInventoryValues merges newValues into the stored values for id.
// This is a read-modify-write and is not atomic across callers.
func (s *KV) StoreInventoryValues(ctx context.Context, id string, newValues storage.Values) error {
	if id == "" {
		return storage.ErrNoIDs
	}
	if len(newValues) == 0 {
		return nil
	}

	values, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if values == nil {
		values = make(storage.Values, len(newValues))
	}
	for k := range newValues {
		values[k] = newValues[k]
	}

	jsonValues, err := json.Marshal(&values)
	if err != nil {
		return fmt.Errorf("marshal values: %w", err)
	}

	if err = s.b.Set(ctx, id, jsonValues); err != nil {
		return fmt.Errorf("set values: %w", err)
	}

	return nil
}

// DeleteInventory deletes all inventory data for an enrollment ID.
// Deleting an ID without inventory is not an error.
func (s *KV) DeleteInventory(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrNoIDs
	}
	found, err := s.b.Has(ctx, id)
	if err != nil {
		return fmt.Errorf("checking values for %s: %w", id, err)
	} else if !found {
		return nil
	}
	return s.b.Delete(ctx, id)
}
