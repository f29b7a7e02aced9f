// Package test provides a conformance test for inventory storage backends.
package test

import (
	"context"
	"errors"
	"testing"

	"github.com/micromdm/nanodevice/subsystem/inventory/storage"
)

// TestStorage runs the inventory storage conformance tests against
// a fresh backend from newStorage.
func TestStorage(t *testing.T, newStorage func() storage.Storage) {
	s := newStorage()
	ctx := context.Background()

	id := "AA11BB22"

	updValues := storage.Values{
		storage.KeyProductName: "iPhone14,2",
		storage.KeyModel:       "iPhone 13 Pro",
		storage.KeySimulator:   false,
	}

	err := s.StoreInventoryValues(ctx, id, updValues)
	if err != nil {
		t.Fatal(err)
	}

	q := &storage.SearchOptions{IDs: []string{id, "missing"}}
	idVals, err := s.RetrieveInventory(ctx, q)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := idVals["missing"]; ok {
		t.Error("expected missing id to be absent from id values map")
	}

	vals, ok := idVals[id]
	if !ok {
		t.Fatal("expected id in id values map")
	}

	if have, _ := vals.String(storage.KeyModel); have != "iPhone 13 Pro" {
		t.Errorf("have: %v, want: %v", have, "iPhone 13 Pro")
	}
	if sim, ok := vals.Bool(storage.KeySimulator); !ok || sim {
		t.Errorf("simulator: have: %v (%v), want: false", sim, ok)
	}

	// merge a second set of values
	err = s.StoreInventoryValues(ctx, id, storage.Values{
		storage.KeyModel:      "iPad Air (4th generation)",
		storage.KeyDeviceName: "Test iPad",
	})
	if err != nil {
		t.Fatal(err)
	}

	idVals, err = s.RetrieveInventory(ctx, q)
	if err != nil {
		t.Fatal(err)
	}
	vals = idVals[id]
	for k, want := range map[string]string{
		storage.KeyProductName: "iPhone14,2",
		storage.KeyModel:       "iPad Air (4th generation)",
		storage.KeyDeviceName:  "Test iPad",
	} {
		if have, _ := vals.String(k); have != want {
			t.Errorf("%s: have: %v, want: %v", k, have, want)
		}
	}

	// empty values are a no-op
	if err = s.StoreInventoryValues(ctx, id, nil); err != nil {
		t.Error(err)
	}

	if err = s.StoreInventoryValues(ctx, "", updValues); !errors.Is(err, storage.ErrNoIDs) {
		t.Errorf("store: have: %v, want: %v", err, storage.ErrNoIDs)
	}

	if _, err = s.RetrieveInventory(ctx, &storage.SearchOptions{}); !errors.Is(err, storage.ErrNoIDs) {
		t.Errorf("retrieve: have: %v, want: %v", err, storage.ErrNoIDs)
	}

	err = s.DeleteInventory(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	idVals, err = s.RetrieveInventory(ctx, q)
	if err != nil {
		t.Error(err)
	}

	_, ok = idVals[id]
	if ok {
		t.Error("expected id to be missing in id values map")
	}
}
